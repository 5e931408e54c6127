// Package quadshift implements a reversible character-substitution transform
// parameterized by two integer shift keys.
//
// Each ASCII letter falls into one of four classes (lowercase/uppercase ×
// first/second half of the alphabet) and each class is shifted by a different
// amount derived from the key pair. Everything else passes through unchanged.
// Because the per-class shifts can collide, the forward transform alone is not
// invertible: EncodeWithTags additionally emits one Tag per rune recording the
// rule applied, and DecodeWithTags uses that sidecar to invert exactly.
// DecodeHeuristic recovers text without the sidecar on a best-effort basis and
// can silently return wrong text for some key/content combinations.
//
// The scheme is an educational substitution cipher, not secure encryption.
package quadshift
