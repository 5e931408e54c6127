package quadshift

// Tag identifies which substitution rule applies to a rune. It is the only
// information, together with the key pair, needed to invert that rune.
type Tag uint8

const (
	// Passthrough marks runes outside the ASCII letter ranges; they are
	// never shifted.
	Passthrough Tag = iota
	// LowerFirst marks lowercase letters in a-m.
	LowerFirst
	// LowerSecond marks lowercase letters in n-z.
	LowerSecond
	// UpperFirst marks uppercase letters in A-M.
	UpperFirst
	// UpperSecond marks uppercase letters in N-Z.
	UpperSecond
)

// Classify reports the substitution rule for r. It is a pure function of the
// rune identity alone; the shift keys play no part in classification.
func Classify(r rune) Tag {
	switch {
	case r >= 'a' && r <= 'm':
		return LowerFirst
	case r >= 'n' && r <= 'z':
		return LowerSecond
	case r >= 'A' && r <= 'M':
		return UpperFirst
	case r >= 'N' && r <= 'Z':
		return UpperSecond
	default:
		return Passthrough
	}
}

// alphabetBase returns the first rune of the 26-letter alphabet the tag's rule
// operates on, or 0 for Passthrough.
func (t Tag) alphabetBase() rune {
	switch t {
	case LowerFirst, LowerSecond:
		return 'a'
	case UpperFirst, UpperSecond:
		return 'A'
	default:
		return 0
	}
}

func (t Tag) String() string {
	switch t {
	case LowerFirst:
		return "lower_first"
	case LowerSecond:
		return "lower_second"
	case UpperFirst:
		return "upper_first"
	case UpperSecond:
		return "upper_second"
	case Passthrough:
		return "passthrough"
	default:
		return "invalid"
	}
}
