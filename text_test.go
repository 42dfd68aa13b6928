package sifter_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/sifter"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("trims lines and drops blank ones", func(t *testing.T) {
		t.Parallel()

		got := sifter.NormalizeText("  first line \n\n\n   \t\n second line  ")

		assert.Equal(t, "first line\nsecond line", got)
	})

	t.Run("splits run-together headlines on double spaces", func(t *testing.T) {
		t.Parallel()

		got := sifter.NormalizeText("Headline One  Headline Two   Headline Three")

		assert.Equal(t, "Headline One\nHeadline Two\nHeadline Three", got)
	})

	t.Run("keeps single spaces inside a phrase", func(t *testing.T) {
		t.Parallel()

		got := sifter.NormalizeText("Hello World")

		assert.Equal(t, "Hello World", got)
	})

	t.Run("treats carriage returns and unicode separators as line breaks", func(t *testing.T) {
		t.Parallel()

		got := sifter.NormalizeText("a\r\nb\rc\u2028d\u2029e\u0085f")

		assert.Equal(t, "a\nb\nc\nd\ne\nf", got)
	})

	t.Run("returns empty string for whitespace only input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, sifter.NormalizeText(" \n \t \n"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := sifter.NormalizeText("  Title  Subtitle \n\n body text\n")

		assert.Equal(t, once, sifter.NormalizeText(once))
		for _, line := range strings.Split(once, "\n") {
			assert.NotEmpty(t, line)
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns short strings unchanged", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "short", sifter.Truncate("short", 10))
	})

	t.Run("cuts to max characters", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", sifter.Truncate("abcdef", 3))
	})

	t.Run("counts multi-byte characters as one", func(t *testing.T) {
		t.Parallel()

		got := sifter.Truncate("héllo wörld", 7)

		assert.Equal(t, "héllo w", got)
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("never splits a character", func(t *testing.T) {
		t.Parallel()

		got := sifter.Truncate(strings.Repeat("日本", 10), 5)

		assert.Equal(t, 5, utf8.RuneCountInString(got))
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("zero max disables truncation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abcdef", sifter.Truncate("abcdef", 0))
	})
}
