package postal

import "github.com/pageit/pageit-forms/pkg/jptext"

// CodeLength is the number of digits in a Japanese postal code.
const CodeLength = 7

// Normalize reduces free-form zip input to at most seven ASCII digits,
// folding full-width digits and discarding hyphen glyphs and other noise.
func Normalize(s string) string {
	digits := jptext.DigitsOnly(s)
	if len(digits) > CodeLength {
		digits = digits[:CodeLength]
	}
	return digits
}

// Format renders a digit string in display form: "1234567" becomes
// "123-4567". Partial input up to three digits is returned as-is; longer
// partial input gets the hyphen after the third digit.
func Format(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	return digits[:3] + "-" + digits[3:]
}

// Complete reports whether s normalizes to a full seven-digit code.
func Complete(s string) bool {
	return len(Normalize(s)) == CodeLength
}
