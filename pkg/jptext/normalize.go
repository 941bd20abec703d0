package jptext

import (
	"strings"

	"golang.org/x/text/width"
)

// hyphenGlyphs lists the hyphen-like runes seen in Japanese postal code and
// phone number input: ASCII hyphen, hyphen variants, en/em dashes, the
// minus sign, the katakana prolonged sound mark and the full-width
// hyphen-minus.
const hyphenGlyphs = "‐-‒–—−ー－"

// ToHalfWidthDigits folds full-width digits (０-９) into their ASCII
// counterparts. Other runes pass through unchanged.
func ToHalfWidthDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '０' && r <= '９' {
			return r - '０' + '0'
		}
		return r
	}, s)
}

// StripHyphens removes every hyphen-like glyph from s.
func StripHyphens(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(hyphenGlyphs, r) {
			return -1
		}
		return r
	}, s)
}

// KeepDigits keeps only ASCII digits, dropping everything else.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// DigitsOnly folds full-width digits to half-width and strips every
// non-digit rune, hyphen glyphs included. It is the canonical normalization
// applied to postal code and account number input.
func DigitsOnly(s string) string {
	return KeepDigits(ToHalfWidthDigits(s))
}

// Fold converts full-width ASCII variants (digits, letters, punctuation) to
// their half-width forms using Unicode width folding.
func Fold(s string) string {
	return width.Fold.String(s)
}

// IsDigits reports whether s is non-empty and consists of ASCII digits only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
