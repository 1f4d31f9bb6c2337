// Package render provides text rendering helpers for the terminal views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Sanitize removes control characters and invalid UTF-8 from a string so
// bad metadata cannot corrupt the terminal layout.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		// Non-breaking space renders inconsistently across terminals
		if r == ' ' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' {
			return true
		}
		if b >= 0x80 && b <= 0x9f {
			return true
		}
		if b == 0xc2 { // lead byte of U+00A0 (NBSP) and the C1 range
			return true
		}
	}
	return false
}

// Truncate shortens a string to fit maxWidth display columns, adding an
// ellipsis when shortened. Wide characters (CJK) count as two columns.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// PadRight pads a string with spaces to exactly width display columns,
// truncating first if it is too wide.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}
