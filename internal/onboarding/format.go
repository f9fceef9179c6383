package onboarding

import "strings"

// SanitizeAmount keeps only the digits of a typed amount, so "12,500.75"
// becomes "1250075" the same way the amount inputs strip everything else.
func SanitizeAmount(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatAmount inserts thousands separators into a run of digits, ignoring
// separators already present. Values that are not plain digits are returned
// without separators added.
func FormatAmount(s string) string {
	digits := strings.ReplaceAll(s, ",", "")
	if digits == "" {
		return ""
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return digits
		}
	}

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
