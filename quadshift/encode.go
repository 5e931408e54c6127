package quadshift

import "strings"

// Encode applies the forward transform and returns only the ciphertext.
// The output has the same rune count as the input. Without the sidecar from
// EncodeWithTags the result may not be exactly invertible; see DecodeHeuristic.
func Encode(text string, shift1, shift2 int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		t := Classify(r)
		b.WriteRune(shiftRune(r, forwardShift(t, shift1, shift2), t.alphabetBase()))
	}
	return b.String()
}

// EncodeWithTags applies the forward transform and additionally records, per
// rune, which rule produced the output rune. Ciphertext and tags have one
// entry per input rune, in input order. This is the only fully lossless mode:
// DecodeWithTags inverts it exactly for every input and every key pair.
func EncodeWithTags(text string, shift1, shift2 int) (string, Tags) {
	var b strings.Builder
	b.Grow(len(text))
	tags := make(Tags, 0, len(text))
	for _, r := range text {
		t := Classify(r)
		b.WriteRune(shiftRune(r, forwardShift(t, shift1, shift2), t.alphabetBase()))
		tags = append(tags, t)
	}
	return b.String(), tags
}

// EncodeWithMetadata is EncodeWithTags with the sidecar already serialized to
// its interchange code string.
func EncodeWithMetadata(text string, shift1, shift2 int) (ciphertext, metadata string) {
	ciphertext, tags := EncodeWithTags(text, shift1, shift2)
	return ciphertext, tags.String()
}
