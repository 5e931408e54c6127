package envelope

import (
	"errors"
	"strings"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"Hello, World!",
		"naïve café — ÄÖÜ 東京 12:30",
		strings.Repeat("The quick brown Fox JUMPS over 13 lazy dogs. ", 50),
	}
	for _, text := range texts {
		blob, err := Seal(text, 3, 2)
		if err != nil {
			t.Fatalf("Seal: %v", err)
		}
		got, err := Open(blob, 3, 2)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		if got != text {
			t.Fatalf("round trip mismatch for %.20q", text)
		}
	}
}

func TestOpenEquivalentKeys(t *testing.T) {
	blob, err := Seal("Equivalent keys open the same envelope", 5, -9)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	// 31 ≡ 5 and 17 ≡ -9 (mod 26)
	if _, err := Open(blob, 31, 17); err != nil {
		t.Fatalf("Open with congruent keys: %v", err)
	}
}

func TestOpenKeyMismatch(t *testing.T) {
	blob, err := Seal("secret-ish", 3, 2)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if _, err := Open(blob, 4, 2); !errors.Is(err, ErrKeyMismatch) {
		t.Fatalf("expected ErrKeyMismatch, got %v", err)
	}
}

func TestOpenDetectsCorruption(t *testing.T) {
	blob, err := Seal("Hello, World!", 3, 2)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	// Flip a digest byte (fixed offset in the header).
	blob[21] ^= 0xff
	if _, err := Open(blob, 3, 2); !errors.Is(err, ErrDigestMismatch) {
		t.Fatalf("expected ErrDigestMismatch, got %v", err)
	}
}

func TestOpenTruncated(t *testing.T) {
	blob, err := Seal("Hello, World!", 3, 2)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	for _, n := range []int{0, 3, headerSize - 1, headerSize + 2, len(blob) - 1} {
		if _, err := Open(blob[:n], 3, 2); !errors.Is(err, ErrTruncated) {
			t.Errorf("Open(blob[:%d]): expected ErrTruncated, got %v", n, err)
		}
	}
}

func TestOpenBadMagicAndVersion(t *testing.T) {
	blob, err := Seal("Hello", 3, 2)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	bad := append([]byte(nil), blob...)
	copy(bad, "NOPE")
	if _, err := Open(bad, 3, 2); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}

	bad = append([]byte(nil), blob...)
	bad[4] = 99
	if _, err := Open(bad, 3, 2); !errors.Is(err, ErrBadVersion) {
		t.Fatalf("expected ErrBadVersion, got %v", err)
	}
}

func TestSealTooLarge(t *testing.T) {
	if _, err := Seal(strings.Repeat("a", MaxTextSize+1), 1, 1); !errors.Is(err, ErrTextTooLarge) {
		t.Fatalf("expected ErrTextTooLarge, got %v", err)
	}
}

func TestInspect(t *testing.T) {
	text := "Inspect me — 東京"
	blob, err := Seal(text, -7, 40)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	info, err := Inspect(blob)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.Shift1 != -7 || info.Shift2 != 40 {
		t.Fatalf("keys = (%d,%d), want (-7,40)", info.Shift1, info.Shift2)
	}
	if info.Runes != 15 {
		t.Fatalf("rune count = %d, want 15", info.Runes)
	}
}

func TestTagStreamCompresses(t *testing.T) {
	// 20k of mostly-lowercase text produces a 20k tag stream; LZ4 should
	// shrink the sealed form well below ciphertext+raw sidecar.
	text := strings.Repeat("compressible lowercase text ", 800)
	blob, err := Seal(text, 3, 2)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if len(blob) >= 2*len(text) {
		t.Fatalf("blob %d bytes for %d-byte text; tag stream not compressed", len(blob), len(text))
	}
}
