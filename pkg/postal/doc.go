// Package postal resolves Japanese 7-digit postal codes to addresses through
// the ZipCloud lookup API and provides the zip input normalization used by
// the referral intake form.
//
// Input normalization accepts full-width digits and any common hyphen glyph;
// display formatting produces the hyphenated NNN-NNNN form while lookups
// operate on the bare seven digits:
//
//	digits := postal.Normalize("１２３−４５６７") // "1234567"
//	postal.Format(digits)                        // "123-4567"
//
// The Debouncer defers a lookup until typing has paused, cancelling the
// pending timer on every new trigger so a superseded lookup never fires.
package postal
