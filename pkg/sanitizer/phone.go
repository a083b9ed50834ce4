package sanitizer

import "strings"

// MaxPhoneDigits is the length of a Russian number with its country code.
const MaxPhoneDigits = 11

// NormalizePhone keeps ASCII digits only and truncates to MaxPhoneDigits.
// "+7 (999) 123-45-67" becomes "79991234567".
func NormalizePhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) > MaxPhoneDigits {
		digits = digits[:MaxPhoneDigits]
	}
	return digits
}

// FormatPhone renders normalized digits as "+7 (XXX) XXX-XX-XX". It is meant
// to run on every keystroke, so partial input yields a partial mask:
// "7999" becomes "+7 (999) " and "7999123" becomes "+7 (999) 123-".
// The first digit is the trunk prefix and is always shown as "+7";
// digits past the eleventh are dropped.
func FormatPhone(digits string) string {
	if digits == "" {
		return ""
	}

	r := []rune(digits)
	var b strings.Builder
	b.WriteString("+7")
	if len(r) > 1 {
		b.WriteString(" (")
		b.WriteString(span(r, 1, 4))
	}
	if len(r) >= 4 {
		b.WriteString(") ")
		b.WriteString(span(r, 4, 7))
	}
	if len(r) >= 7 {
		b.WriteString("-")
		b.WriteString(span(r, 7, 9))
	}
	if len(r) >= 9 {
		b.WriteString("-")
		b.WriteString(span(r, 9, 11))
	}
	return b.String()
}

// MaskPhone hides all but the last four digits.
func MaskPhone(phone string) string {
	digits := nonDigitRegex.ReplaceAllString(phone, "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// span is r[from:to] clamped to the bounds of r.
func span(r []rune, from, to int) string {
	if from >= len(r) {
		return ""
	}
	return string(r[from:min(to, len(r))])
}
