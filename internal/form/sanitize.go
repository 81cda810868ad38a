package form

import "strings"

// SanitizeVIN uppercases the input and strips the letters I, O, and Q, which
// never appear in a VIN. It runs on every keystroke, so it must be idempotent
// and must never flag anything; flagging is Validate's job.
func SanitizeVIN(s string) string {
	upper := strings.ToUpper(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case 'I', 'O', 'Q':
			return -1
		}
		return r
	}, upper)
}

// SanitizeMileage keeps only digits.
func SanitizeMileage(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}

// SanitizePrice keeps digits and the first decimal point.
func SanitizePrice(s string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
