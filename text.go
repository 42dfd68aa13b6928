package sifter

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// headlineBreak matches the space runs that separate run-together headlines.
var headlineBreak = regexp.MustCompile(` {2,}`)

// NormalizeText trims every line, breaks lines apart at runs of two or more
// spaces, and drops empty pieces. The survivors are joined with newlines.
func NormalizeText(s string) string {
	var chunks []string
	for _, line := range strings.FieldsFunc(s, isLineBreak) {
		for _, phrase := range headlineBreak.Split(strings.TrimSpace(line), -1) {
			if phrase = strings.TrimSpace(phrase); phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	return strings.Join(chunks, "\n")
}

// isLineBreak reports whether r ends a line. The set matches the universal
// newline boundaries rather than just '\n'.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// Truncate returns the first max characters of s. Characters are counted as
// runes so multi-byte text is never cut mid-character. A max of zero or less
// returns s unchanged.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
