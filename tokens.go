package main

import (
	"strings"
	"unicode"
)

// splitTokens splits text into whitespace-delimited tokens. Runs of
// separators collapse and leading or trailing separators produce no empty
// tokens.
func splitTokens(text string) []string {
	return strings.FieldsFunc(text, isSeparator)
}

// isSeparator reports whether r splits tokens. The ASCII information
// separators (file, group, record, unit) count as whitespace alongside
// everything unicode.IsSpace accepts.
func isSeparator(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}
