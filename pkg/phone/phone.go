// Package phone formats phone number input for display and normalizes the
// final value to international dialing form before submission.
//
// Formatting is best-effort by contract: a value that cannot be parsed for
// the configured region is passed through unchanged, and nothing in this
// package ever blocks a submission. Required-field validation checks only for
// emptiness, never for format.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/pageit/pageit-forms/pkg/jptext"
)

// DefaultRegion is the dialing region applied to national-form input.
const DefaultRegion = "JP"

// Formatter formats and normalizes phone numbers for one region.
type Formatter struct {
	region string
}

// NewFormatter creates a Formatter for region. An empty region falls back to
// DefaultRegion.
func NewFormatter(region string) *Formatter {
	if region == "" {
		region = DefaultRegion
	}
	return &Formatter{region: region}
}

// Display re-renders raw input in national display format. Full-width input
// is width-folded first so "０９０..." and "＋８１..." format the same as
// their ASCII forms. Input that does not parse as a number for the region is
// returned unchanged (modulo the fold); this runs on every keystroke, so
// partial input is the common case rather than an error.
func (f *Formatter) Display(raw string) string {
	folded := jptext.Fold(raw)
	num, err := phonenumbers.Parse(folded, f.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return folded
	}
	return phonenumbers.Format(num, phonenumbers.NATIONAL)
}

// E164 normalizes the displayed value into canonical international form
// (+81...). When parsing fails the displayed string is transmitted unchanged,
// matching the submit-time fallback contract.
func (f *Formatter) E164(display string) string {
	folded := jptext.Fold(display)
	num, err := phonenumbers.Parse(folded, f.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return display
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// IsBlank reports whether the input holds no digits at all.
func IsBlank(raw string) bool {
	return strings.TrimSpace(jptext.DigitsOnly(raw)) == ""
}
