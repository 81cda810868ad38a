package ui

import (
	"strconv"
	"strings"
)

// formatPrice renders a price as whole dollars with thousands separators.
func formatPrice(price float64) string {
	return "$" + groupDigits(strconv.FormatFloat(price, 'f', 0, 64))
}

// formatMileage renders a mileage with thousands separators and a unit.
func formatMileage(mileage int) string {
	return groupDigits(strconv.Itoa(mileage)) + " mi"
}

// groupDigits inserts commas every three digits, preserving a leading sign.
func groupDigits(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return sign + s
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// initials derives a two-letter avatar from a username. For an email-style
// name the domain is dropped; a two-word name contributes one letter each.
func initials(name string) string {
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "US"
	}
	if len(parts) == 1 {
		runes := []rune(parts[0])
		if len(runes) == 1 {
			return strings.ToUpper(string(runes[0]))
		}
		return strings.ToUpper(string(runes[0]) + string(runes[1]))
	}
	first := []rune(parts[0])
	second := []rune(parts[1])
	return strings.ToUpper(string(first[0]) + string(second[0]))
}

// truncate cuts a string to at most max runes, adding an ellipsis when
// anything was dropped.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// pad right-pads a string with spaces to exactly width runes, truncating
// when too long.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// padLeft left-pads a string with spaces to exactly width runes.
func padLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return truncate(s, width)
	}
	return strings.Repeat(" ", width-len(runes)) + s
}
