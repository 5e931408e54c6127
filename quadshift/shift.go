package quadshift

// mod26 reduces n to the Euclidean residue in [0, 26). Go's % truncates toward
// zero for negative operands, which would misindex the alphabet.
func mod26(n int) int {
	return ((n % 26) + 26) % 26
}

// shiftRune moves r by shift positions, wrapping within the 26-letter alphabet
// that starts at base. Runes outside that alphabet pass through unchanged; in
// practice the classifier guarantees membership before this is called.
func shiftRune(r rune, shift int, base rune) rune {
	if r < base || r > base+25 {
		return r
	}
	return base + rune(mod26(int(r-base)+shift))
}

// forwardShift returns the signed shift the forward transform applies for a
// tag. Keys are reduced mod 26 before the product/sum so arbitrarily large
// caller values cannot overflow; the result is congruent mod 26 either way.
func forwardShift(t Tag, shift1, shift2 int) int {
	s1, s2 := mod26(shift1), mod26(shift2)
	switch t {
	case LowerFirst:
		return s1 * s2
	case LowerSecond:
		return -(s1 + s2)
	case UpperFirst:
		return -s1
	case UpperSecond:
		return s2 * s2
	default:
		return 0
	}
}
