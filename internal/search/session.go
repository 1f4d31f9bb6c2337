package search

// Session owns the mutable query string and current result ordering as
// the user types. The presentation layer only ever observes a consistent
// (query, matches, cursor) triple: every mutation goes through SetQuery,
// MoveCursor or Clear.
type Session[T Fielder] struct {
	index   *Index[T]
	query   string
	matches []int
	cursor  int
}

// NewSession creates a session over an index, starting in the unfiltered
// state (all records, load order).
func NewSession[T Fielder](index *Index[T]) *Session[T] {
	s := &Session[T]{index: index}
	s.matches = index.Query("")
	return s
}

// SetQuery replaces the query string, recomputes matches against the
// index and resets the cursor to the first result.
func (s *Session[T]) SetQuery(query string) {
	s.query = query
	s.matches = s.index.Query(query)
	s.cursor = 0
}

// Clear resets to the unfiltered state.
func (s *Session[T]) Clear() {
	s.SetQuery("")
}

// Query returns the current raw query string.
func (s *Session[T]) Query() string {
	return s.query
}

// Matches returns the current result ordering as record indices into the
// underlying index, best match first.
func (s *Session[T]) Matches() []int {
	return s.matches
}

// Len returns the number of current matches.
func (s *Session[T]) Len() int {
	return len(s.matches)
}

// Cursor returns the selected position within the matches.
func (s *Session[T]) Cursor() int {
	return s.cursor
}

// MoveCursor moves the selection by delta, clamped to the match bounds.
func (s *Session[T]) MoveCursor(delta int) {
	if len(s.matches) == 0 {
		s.cursor = 0
		return
	}
	s.cursor += delta
	if s.cursor < 0 {
		s.cursor = 0
	}
	if s.cursor > len(s.matches)-1 {
		s.cursor = len(s.matches) - 1
	}
}

// SetCursor jumps the selection to pos, clamped to the match bounds.
func (s *Session[T]) SetCursor(pos int) {
	s.cursor = 0
	s.MoveCursor(pos)
}

// Selected returns the record under the cursor, or false when there are
// no matches.
func (s *Session[T]) Selected() (T, bool) {
	if len(s.matches) == 0 {
		var zero T
		return zero, false
	}
	return s.index.Record(s.matches[s.cursor]), true
}

// Index returns the underlying index, for resolving match positions back
// to full records.
func (s *Session[T]) Index() *Index[T] {
	return s.index
}
