package jptext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pageit/pageit-forms/pkg/jptext"
)

func TestToHalfWidthDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full width digits", input: "１２３４５６７", want: "1234567"},
		{name: "mixed width", input: "１2３4", want: "1234"},
		{name: "already half width", input: "0123456789", want: "0123456789"},
		{name: "non digits untouched", input: "東京都１−２−３", want: "東京都1−2−3"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, jptext.ToHalfWidthDigits(tt.input))
		})
	}
}

func TestStripHyphens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii hyphen", input: "123-4567", want: "1234567"},
		{name: "full width hyphen", input: "１２３－４５６７", want: "１２３４５６７"},
		{name: "minus sign", input: "123−4567", want: "1234567"},
		{name: "prolonged sound mark", input: "123ー4567", want: "1234567"},
		{name: "em dash", input: "123—4567", want: "1234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, jptext.StripHyphens(tt.input))
		})
	}
}

func TestDigitsOnly(t *testing.T) {
	t.Parallel()

	// Mirrors the canonical zip normalization case: full-width digits with a
	// minus-sign separator collapse to the bare seven digits.
	assert.Equal(t, "1234567", jptext.DigitsOnly("１２３−４５６７"))
	assert.Equal(t, "1234567", jptext.DigitsOnly("123-4567"))
	assert.Equal(t, "09012345678", jptext.DigitsOnly("090 1234 5678"))
	assert.Equal(t, "", jptext.DigitsOnly("東京都"))
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "full width digits", input: "０９０", want: "090"},
		{name: "full width plus", input: "＋８１", want: "+81"},
		{name: "full width letters", input: "ＡＢＣ", want: "ABC"},
		{name: "ascii untouched", input: "090-1234-5678", want: "090-1234-5678"},
		{name: "kanji untouched", input: "東京都", want: "東京都"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, jptext.Fold(tt.input))
		})
	}
}

func TestIsDigits(t *testing.T) {
	t.Parallel()

	assert.True(t, jptext.IsDigits("1234567"))
	assert.False(t, jptext.IsDigits(""))
	assert.False(t, jptext.IsDigits("123-4567"))
	assert.False(t, jptext.IsDigits("１２３"))
}
