package quadshift

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrLengthMismatch reports that a ciphertext and its sidecar disagree on rune
// count. Decoding produces no partial output in that case.
var ErrLengthMismatch = errors.New("quadshift: ciphertext and metadata lengths do not match")

// DecodeWithTags inverts EncodeWithTags. It dispatches on the recorded tag
// alone, never on any property of the ciphertext rune, and is exact for every
// input string and every integer key pair.
func DecodeWithTags(ciphertext string, tags Tags, shift1, shift2 int) (string, error) {
	if utf8.RuneCountInString(ciphertext) != len(tags) {
		return "", fmt.Errorf("%w: %d ciphertext runes, %d tags",
			ErrLengthMismatch, utf8.RuneCountInString(ciphertext), len(tags))
	}
	var b strings.Builder
	b.Grow(len(ciphertext))
	i := 0
	for _, r := range ciphertext {
		t := tags[i]
		b.WriteRune(shiftRune(r, -forwardShift(t, shift1, shift2), t.alphabetBase()))
		i++
	}
	return b.String(), nil
}

// DecodeWithMetadata is DecodeWithTags over the serialized sidecar form. It
// fails with ErrBadTagCode for unknown code runes and ErrLengthMismatch when
// the two strings disagree on rune count.
func DecodeWithMetadata(ciphertext, metadata string, shift1, shift2 int) (string, error) {
	tags, err := ParseTags(metadata)
	if err != nil {
		return "", err
	}
	return DecodeWithTags(ciphertext, tags, shift1, shift2)
}

// DecodeHeuristic recovers text from ciphertext alone, without the sidecar.
// For a letter it first inverts the first-half rule; if that candidate lands
// in the first half it is accepted, otherwise the second-half inverse is
// applied unconditionally. The tie-break is deliberate and matches prior
// output: it is not guaranteed correct. For key pairs where both inverse
// candidates land in the same half the recovered text silently diverges from
// the original; that is a documented limitation of the metadata-free mode,
// not a defect to repair.
func DecodeHeuristic(ciphertext string, shift1, shift2 int) string {
	var b strings.Builder
	b.Grow(len(ciphertext))
	for _, r := range ciphertext {
		switch {
		case r >= 'a' && r <= 'z':
			cand := shiftRune(r, -forwardShift(LowerFirst, shift1, shift2), 'a')
			if cand <= 'm' {
				b.WriteRune(cand)
			} else {
				b.WriteRune(shiftRune(r, -forwardShift(LowerSecond, shift1, shift2), 'a'))
			}
		case r >= 'A' && r <= 'Z':
			cand := shiftRune(r, -forwardShift(UpperFirst, shift1, shift2), 'A')
			if cand <= 'M' {
				b.WriteRune(cand)
			} else {
				b.WriteRune(shiftRune(r, -forwardShift(UpperSecond, shift1, shift2), 'A'))
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
