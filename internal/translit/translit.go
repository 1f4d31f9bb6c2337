// Package translit renders CJK text as latin phonetic strings so that
// search queries typed on a latin keyboard can match Chinese titles.
package translit

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
)

var args = func() pinyin.Args {
	a := pinyin.NewArgs()
	// Unmapped runes (latin text, punctuation, other scripts) pass
	// through unchanged so mixed-script titles still match literally.
	a.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return a
}()

// Phonetic returns a lowercase latin rendering of s. Han characters are
// replaced by their most common pinyin reading, concatenated without
// separators; everything else is lowercased as-is.
func Phonetic(s string) string {
	if !containsHan(s) {
		return strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, readings := range pinyin.Pinyin(s, args) {
		if len(readings) > 0 {
			b.WriteString(readings[0])
		}
	}
	return strings.ToLower(b.String())
}

// ContainsHan reports whether s contains at least one Han character,
// i.e. whether Phonetic(s) differs from a plain lowercasing.
func ContainsHan(s string) bool {
	return containsHan(s)
}

func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
