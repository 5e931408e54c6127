package envelope

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/crypto/blake2b"

	"github.com/quadshift/quadshift/quadshift"
)

const (
	// MaxTextSize limits the plaintext a single envelope may carry.
	MaxTextSize = 1 << 24 // 16 MiB

	magic   = "QSE1"
	version = 1

	// fixed header: magic, version, two int64 keys, digest, rune count
	headerSize = 4 + 1 + 8 + 8 + 32 + 4
)

var (
	ErrTextTooLarge    = errors.New("envelope: plaintext exceeds maximum size")
	ErrBadMagic        = errors.New("envelope: bad magic")
	ErrBadVersion      = errors.New("envelope: unsupported version")
	ErrTruncated       = errors.New("envelope: truncated or corrupt blob")
	ErrKeyMismatch     = errors.New("envelope: shift keys do not match envelope")
	ErrDigestMismatch  = errors.New("envelope: plaintext digest mismatch after decode")
	errSectionTooLarge = errors.New("envelope: section length exceeds maximum")
)

// compressorPool reuses LZ4 writers to reduce allocations.
var compressorPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewWriter(nil)
	},
}

// decompressorPool reuses LZ4 readers.
var decompressorPool = sync.Pool{
	New: func() interface{} {
		return lz4.NewReader(nil)
	},
}

// Seal encodes plaintext with the key pair and serializes the ciphertext and
// its tag sidecar into a single blob. Persisting the blob is the caller's
// business; the envelope itself never touches storage.
func Seal(plaintext string, shift1, shift2 int) ([]byte, error) {
	if len(plaintext) > MaxTextSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTextTooLarge, len(plaintext))
	}

	ciphertext, tags := quadshift.EncodeWithTags(plaintext, shift1, shift2)
	digest := blake2b.Sum256([]byte(plaintext))
	codes, compressed := packCodes([]byte(tags.String()))

	var buf bytes.Buffer
	buf.Grow(headerSize + 4 + len(ciphertext) + 1 + 4 + len(codes))

	buf.WriteString(magic)
	buf.WriteByte(version)
	writeInt64(&buf, int64(shift1))
	writeInt64(&buf, int64(shift2))
	buf.Write(digest[:])

	var runeCount [4]byte
	binary.BigEndian.PutUint32(runeCount[:], uint32(utf8.RuneCountInString(plaintext)))
	buf.Write(runeCount[:])

	writeSection(&buf, []byte(ciphertext))
	if compressed {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	writeSection(&buf, codes)

	return buf.Bytes(), nil
}

// Open parses a blob, decodes it via the tag sidecar, and verifies the
// plaintext digest. The caller's keys must agree with the sealed keys modulo
// the alphabet size; any corruption of ciphertext or sidecar surfaces as
// ErrDigestMismatch (or a decode error) rather than silently wrong text.
func Open(blob []byte, shift1, shift2 int) (string, error) {
	env, err := parse(blob)
	if err != nil {
		return "", err
	}
	if !sameKey(env.shift1, int64(shift1)) || !sameKey(env.shift2, int64(shift2)) {
		return "", ErrKeyMismatch
	}

	codes := env.codes
	if env.compressed {
		codes, err = decompress(codes)
		if err != nil {
			return "", err
		}
	}

	plaintext, err := quadshift.DecodeWithMetadata(string(env.ciphertext), string(codes), shift1, shift2)
	if err != nil {
		return "", err
	}
	if utf8.RuneCountInString(plaintext) != int(env.runes) {
		return "", fmt.Errorf("%w: rune count", ErrTruncated)
	}
	if blake2b.Sum256([]byte(plaintext)) != env.digest {
		return "", ErrDigestMismatch
	}
	return plaintext, nil
}

// Info describes an envelope without decoding it.
type Info struct {
	Shift1 int64
	Shift2 int64
	Runes  int
	Digest [32]byte
}

// Inspect parses a blob's header and section lengths without decoding.
func Inspect(blob []byte) (Info, error) {
	env, err := parse(blob)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Shift1: env.shift1,
		Shift2: env.shift2,
		Runes:  int(env.runes),
		Digest: env.digest,
	}, nil
}

type parsed struct {
	shift1, shift2 int64
	digest         [32]byte
	runes          uint32
	ciphertext     []byte
	compressed     bool
	codes          []byte
}

func parse(blob []byte) (parsed, error) {
	var env parsed
	if len(blob) < headerSize {
		return env, ErrTruncated
	}
	if string(blob[:4]) != magic {
		return env, ErrBadMagic
	}
	if blob[4] != version {
		return env, fmt.Errorf("%w: %d", ErrBadVersion, blob[4])
	}
	env.shift1 = int64(binary.BigEndian.Uint64(blob[5:13]))
	env.shift2 = int64(binary.BigEndian.Uint64(blob[13:21]))
	copy(env.digest[:], blob[21:53])
	env.runes = binary.BigEndian.Uint32(blob[53:57])

	rest := blob[headerSize:]
	var err error
	env.ciphertext, rest, err = readSection(rest)
	if err != nil {
		return env, err
	}
	if len(rest) < 1 {
		return env, ErrTruncated
	}
	env.compressed = rest[0] == 1
	env.codes, rest, err = readSection(rest[1:])
	if err != nil {
		return env, err
	}
	if len(rest) != 0 {
		return env, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, len(rest))
	}
	return env, nil
}

// sameKey compares the effective keys: pairs congruent mod 26 drive the
// transform identically, so they open each other's envelopes.
func sameKey(a, b int64) bool {
	return ((a%26)+26)%26 == ((b%26)+26)%26
}

func writeInt64(buf *bytes.Buffer, v int64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
}

func writeSection(buf *bytes.Buffer, data []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	buf.Write(lenBuf[:])
	buf.Write(data)
}

func readSection(b []byte) (data, rest []byte, err error) {
	if len(b) < 4 {
		return nil, nil, ErrTruncated
	}
	n := binary.BigEndian.Uint32(b[:4])
	if n > MaxTextSize {
		return nil, nil, fmt.Errorf("%w: %d", errSectionTooLarge, n)
	}
	if uint32(len(b)-4) < n {
		return nil, nil, ErrTruncated
	}
	return b[4 : 4+n], b[4+n:], nil
}

// packCodes LZ4-compresses the tag code stream, keeping the raw form when
// compression does not help (short inputs mostly).
func packCodes(codes []byte) ([]byte, bool) {
	var buf bytes.Buffer
	w := compressorPool.Get().(*lz4.Writer)
	defer compressorPool.Put(w)

	w.Reset(&buf)
	_ = w.Apply(lz4.CompressionLevelOption(lz4.Fast))
	if _, err := w.Write(codes); err != nil {
		return codes, false
	}
	if err := w.Close(); err != nil {
		return codes, false
	}
	if buf.Len() >= len(codes) {
		return codes, false
	}
	return buf.Bytes(), true
}

func decompress(data []byte) ([]byte, error) {
	r := decompressorPool.Get().(*lz4.Reader)
	defer decompressorPool.Put(r)

	r.Reset(bytes.NewReader(data))

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("%w: tag stream", ErrTruncated)
	}
	return buf.Bytes(), nil
}
