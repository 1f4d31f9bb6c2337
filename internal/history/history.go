// Package history keeps a durable record of previously opened libraries
// with usage statistics. It merges freshly discovered candidates with the
// persisted entries and exposes a single ranked, deduplicated list.
//
// The store is persisted as a JSON document under the user's XDG data
// directory. Persistence failures are never fatal: a missing file means
// an empty history, and an unwritable file degrades the session to
// in-memory history only.
package history

import (
	"cmp"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/adrg/xdg"

	"github.com/lmercaux/folio/internal/locator"
)

const historyFile = "folio/libraries.json"

// Record is one known library. Path is the sole identity: two records
// with the same canonical path are the same library.
type Record struct {
	Path        string     `json:"path"`
	DisplayName string     `json:"display_name"`
	LastOpened  *time.Time `json:"last_opened"`
	OpenCount   int        `json:"open_count"`
	BookCount   *int       `json:"book_count,omitempty"`
}

// Opened reports whether the library has ever been opened.
func (r Record) Opened() bool {
	return r.LastOpened != nil
}

// Store holds the known libraries keyed by canonical path.
type Store struct {
	path    string
	records map[string]*Record
	dirty   bool
	now     func() time.Time
}

// Open loads the history from its per-user location. The returned store
// is always usable; the error only reports why persisted entries could
// not be read (corrupt file, permission problem) so the caller can
// surface a warning.
func Open() (*Store, error) {
	path, err := xdg.DataFile(historyFile)
	if err != nil {
		// No resolvable data dir: run with in-memory history.
		return newStore(""), err
	}
	return OpenPath(path)
}

// OpenPath loads the history from an explicit file path. A missing file
// is an empty history, not an error.
func OpenPath(path string) (*Store, error) {
	s := newStore(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	var doc struct {
		Libraries []Record `json:"libraries"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return s, err
	}

	for _, rec := range doc.Libraries {
		if rec.Path == "" || rec.OpenCount < 0 {
			continue
		}
		s.absorb(rec)
	}
	return s, nil
}

func newStore(path string) *Store {
	return &Store{
		path:    path,
		records: make(map[string]*Record),
		now:     time.Now,
	}
}

// absorb merges rec into the store under its canonical path, keeping the
// maximum open count and the latest open time of both sides.
func (s *Store) absorb(rec Record) {
	canon := locator.Canonical(rec.Path)
	existing, ok := s.records[canon]
	if !ok {
		rec.Path = canon
		s.records[canon] = &rec
		return
	}

	existing.OpenCount = max(existing.OpenCount, rec.OpenCount)
	if laterThan(rec.LastOpened, existing.LastOpened) {
		existing.LastOpened = rec.LastOpened
	}
	if existing.DisplayName == "" {
		existing.DisplayName = rec.DisplayName
	}
	if existing.BookCount == nil {
		existing.BookCount = rec.BookCount
	}
}

// Merge unions the persisted records with freshly discovered candidate
// paths and returns the ranked list. Candidates not yet known get a
// zero-usage record named after their directory. Known records absent
// from the scan are kept: a library on unplugged removable media must
// remain in history.
func (s *Store) Merge(candidates []string) []Record {
	for _, path := range candidates {
		canon := locator.Canonical(path)
		if _, ok := s.records[canon]; ok {
			continue
		}
		s.records[canon] = &Record{
			Path:        canon,
			DisplayName: filepath.Base(canon),
		}
	}
	return s.Records()
}

// Records returns all known libraries, ranked for presentation: most
// recently opened first (never-opened after any opened record), then by
// open count, then by display name for a deterministic total order.
func (s *Store) Records() []Record {
	out := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, *rec)
	}

	slices.SortFunc(out, func(a, b Record) int {
		if c := compareLastOpened(a.LastOpened, b.LastOpened); c != 0 {
			return c
		}
		if c := cmp.Compare(b.OpenCount, a.OpenCount); c != 0 {
			return c
		}
		if c := cmp.Compare(a.DisplayName, b.DisplayName); c != 0 {
			return c
		}
		return cmp.Compare(a.Path, b.Path)
	})
	return out
}

// RecordOpen marks the library at path as opened now: its open count
// goes up by one and its timestamp is refreshed. The record is created
// if absent. The store becomes dirty and eligible for persistence.
func (s *Store) RecordOpen(path string) {
	canon := locator.Canonical(path)
	rec, ok := s.records[canon]
	if !ok {
		rec = &Record{Path: canon, DisplayName: filepath.Base(canon)}
		s.records[canon] = rec
	}
	now := s.now()
	rec.OpenCount++
	rec.LastOpened = &now
	s.dirty = true
}

// SetDetails refreshes the display name and book count hint for path,
// creating the record if absent. Empty name and negative count leave the
// existing values untouched.
func (s *Store) SetDetails(path, displayName string, bookCount int) {
	canon := locator.Canonical(path)
	rec, ok := s.records[canon]
	if !ok {
		rec = &Record{Path: canon, DisplayName: filepath.Base(canon)}
		s.records[canon] = rec
	}
	if displayName != "" {
		rec.DisplayName = displayName
	}
	if bookCount >= 0 {
		count := bookCount
		rec.BookCount = &count
	}
	s.dirty = true
}

// Get returns the record for path, if known.
func (s *Store) Get(path string) (Record, bool) {
	rec, ok := s.records[locator.Canonical(path)]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Dirty reports whether the store has unsaved changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// Save writes the history back to disk. It is a no-op when nothing
// changed or when the store runs in-memory only. Failures leave the
// store dirty so a later save can retry.
func (s *Store) Save() error {
	if !s.dirty || s.path == "" {
		return nil
	}

	doc := struct {
		Libraries []Record `json:"libraries"`
	}{Libraries: s.Records()}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// laterThan reports whether a is a more recent timestamp than b,
// treating nil as the oldest possible value.
func laterThan(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}

// compareLastOpened orders timestamps descending with nil last.
func compareLastOpened(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.After(*b):
		return -1
	case b.After(*a):
		return 1
	}
	return 0
}
