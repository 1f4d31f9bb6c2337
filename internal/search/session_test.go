package search

import (
	"reflect"
	"testing"
)

func TestSessionStartsUnfiltered(t *testing.T) {
	s := NewSession(testIndex())

	if s.Query() != "" {
		t.Errorf("initial query = %q, want empty", s.Query())
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(s.Matches(), want) {
		t.Errorf("initial matches = %v, want %v", s.Matches(), want)
	}
	if s.Cursor() != 0 {
		t.Errorf("initial cursor = %d, want 0", s.Cursor())
	}
}

func TestSessionSetQueryResetsCursor(t *testing.T) {
	s := NewSession(testIndex())
	s.MoveCursor(3)
	if s.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", s.Cursor())
	}

	s.SetQuery("programming")
	if s.Cursor() != 0 {
		t.Errorf("cursor after SetQuery = %d, want 0", s.Cursor())
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSessionMoveCursorClamps(t *testing.T) {
	s := NewSession(testIndex())

	s.MoveCursor(-5)
	if s.Cursor() != 0 {
		t.Errorf("cursor after underflow = %d, want 0", s.Cursor())
	}

	s.MoveCursor(100)
	if s.Cursor() != s.Len()-1 {
		t.Errorf("cursor after overflow = %d, want %d", s.Cursor(), s.Len()-1)
	}
}

func TestSessionCursorValidOnNarrowingQuery(t *testing.T) {
	s := NewSession(testIndex())
	s.MoveCursor(3)

	// Narrow to a single match: cursor must stay a valid index.
	s.SetQuery("friedl")
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	rec, ok := s.Selected()
	if !ok {
		t.Fatal("Selected() not ok")
	}
	if rec.title != "Mastering Regular Expressions" {
		t.Errorf("Selected().title = %q", rec.title)
	}
}

func TestSessionNoMatches(t *testing.T) {
	s := NewSession(testIndex())
	s.SetQuery("no such book anywhere")

	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if _, ok := s.Selected(); ok {
		t.Error("Selected() ok on empty matches")
	}
	s.MoveCursor(1) // must not panic
	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
}

func TestSessionClear(t *testing.T) {
	s := NewSession(testIndex())
	s.SetQuery("friedl")
	s.Clear()

	if s.Query() != "" {
		t.Errorf("query after Clear = %q, want empty", s.Query())
	}
	if s.Len() != 4 {
		t.Errorf("Len() after Clear = %d, want 4", s.Len())
	}
}
