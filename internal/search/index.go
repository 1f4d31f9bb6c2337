// Package search provides an in-memory incremental search index over a
// loaded record set. Field forms (lowercased, plus a pinyin rendering for
// CJK text) are computed once when the index is built; each keystroke only
// re-runs the filter/rank step, so querying stays fast on large libraries.
package search

import (
	"strings"

	"github.com/lmercaux/folio/internal/translit"
)

// Field is one searchable attribute of a record.
type Field struct {
	Text  string
	Title bool // title/display-name class field; matches here rank first
}

// Fielder is implemented by records that can be indexed.
type Fielder interface {
	SearchFields() []Field
}

// form is a precomputed matchable rendering of one field.
type form struct {
	text     string // normalized (lowercased) field text
	phonetic string // pinyin rendering, empty when identical to text
	title    bool
}

// Index holds the records and their precomputed field forms.
// Records are immutable for the lifetime of the index; opening a
// different library builds a fresh index.
type Index[T Fielder] struct {
	records []T
	forms   [][]form
}

// Build creates an index over records, computing normalized and
// transliterated forms for every searchable field.
func Build[T Fielder](records []T) *Index[T] {
	ix := &Index[T]{
		records: records,
		forms:   make([][]form, len(records)),
	}

	for i, rec := range records {
		fields := rec.SearchFields()
		forms := make([]form, 0, len(fields))
		for _, f := range fields {
			text := strings.ToLower(f.Text)
			phonetic := ""
			if translit.ContainsHan(f.Text) {
				phonetic = translit.Phonetic(f.Text)
			}
			forms = append(forms, form{text: text, phonetic: phonetic, title: f.Title})
		}
		ix.forms[i] = forms
	}

	return ix
}

// Len returns the number of indexed records.
func (ix *Index[T]) Len() int {
	return len(ix.records)
}

// Record resolves a record index returned by Query back to its record.
func (ix *Index[T]) Record(i int) T {
	return ix.records[i]
}

// Records returns all indexed records in load order.
func (ix *Index[T]) Records() []T {
	return ix.records
}

// Query filters and ranks the indexed records against a raw query string
// and returns matching record indices, best match first.
//
// The query is split into whitespace-delimited terms. A record matches
// when every term is a substring of at least one of its field forms
// (normalized or phonetic). An empty query matches everything in load
// order. Matches with a term hitting a title field rank before matches
// found only in other fields; within each group load order is preserved,
// so results stay stable while the user refines the query.
func (ix *Index[T]) Query(raw string) []int {
	terms := strings.Fields(strings.ToLower(raw))
	if len(terms) == 0 {
		all := make([]int, len(ix.records))
		for i := range all {
			all[i] = i
		}
		return all
	}

	var titleHits, otherHits []int

	for i, forms := range ix.forms {
		matched, inTitle := matchRecord(forms, terms)
		if !matched {
			continue
		}
		if inTitle {
			titleHits = append(titleHits, i)
		} else {
			otherHits = append(otherHits, i)
		}
	}

	return append(titleHits, otherHits...)
}

// matchRecord checks every term against the record's field forms.
// All terms must match (AND); each term may match any field (OR).
// inTitle reports whether at least one term matched a title field.
func matchRecord(forms []form, terms []string) (matched, inTitle bool) {
	for _, term := range terms {
		found := false
		for _, f := range forms {
			if !strings.Contains(f.text, term) &&
				(f.phonetic == "" || !strings.Contains(f.phonetic, term)) {
				continue
			}
			found = true
			if f.title {
				inTitle = true
				break
			}
			// Keep scanning: a later title field may also hold the term.
		}
		if !found {
			return false, false
		}
	}
	return true, inTitle
}
