package quadshift

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadTagCode reports a metadata rune outside the five known codes. An
// unknown code cannot be treated as passthrough: the whole point of the
// sidecar is to pin the branch, so an unrecognized code is corruption.
var ErrBadTagCode = errors.New("quadshift: unknown tag code in metadata")

// Tags is the sidecar emitted by EncodeWithTags, one entry per input rune.
type Tags []Tag

// Code returns the single-rune serialized form of the tag.
func (t Tag) Code() rune {
	switch t {
	case LowerFirst:
		return 'l'
	case LowerSecond:
		return 'L'
	case UpperFirst:
		return 'u'
	case UpperSecond:
		return 'U'
	default:
		return '0'
	}
}

// String serializes the tag sequence to its interchange form: one code rune
// per tag ('l', 'L', 'u', 'U', '0'), same order as the ciphertext.
func (ts Tags) String() string {
	var b strings.Builder
	b.Grow(len(ts))
	for _, t := range ts {
		b.WriteRune(t.Code())
	}
	return b.String()
}

// ParseTags parses a serialized code string back into a tag sequence. Any rune
// outside the five codes fails with ErrBadTagCode.
func ParseTags(metadata string) (Tags, error) {
	ts := make(Tags, 0, len(metadata))
	for _, r := range metadata {
		switch r {
		case 'l':
			ts = append(ts, LowerFirst)
		case 'L':
			ts = append(ts, LowerSecond)
		case 'u':
			ts = append(ts, UpperFirst)
		case 'U':
			ts = append(ts, UpperSecond)
		case '0':
			ts = append(ts, Passthrough)
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadTagCode, r)
		}
	}
	return ts, nil
}
