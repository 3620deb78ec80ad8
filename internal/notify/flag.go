package notify

// regionalIndicatorA is the code point of REGIONAL INDICATOR SYMBOL LETTER A.
const regionalIndicatorA = 0x1F1E6

// Flag returns the emoji flag for a two-letter ISO 3166 country code, or ""
// when code is not exactly two ASCII letters.
func Flag(code string) string {
	if len(code) != 2 {
		return ""
	}

	var flag [2]rune
	for i := range 2 {
		c := code[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return ""
		}
		flag[i] = regionalIndicatorA + rune(c-'A')
	}

	return string(flag[:])
}
