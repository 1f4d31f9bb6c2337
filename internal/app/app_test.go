package app

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercaux/folio/internal/config"
	"github.com/lmercaux/folio/internal/history"
	"github.com/lmercaux/folio/internal/library"
	"github.com/lmercaux/folio/internal/ui/booklist"
	"github.com/lmercaux/folio/internal/ui/selector"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testModel(t *testing.T) Model {
	t.Helper()
	store, err := history.OpenPath(filepath.Join(t.TempDir(), "libraries.json"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	m := New(&config.Config{}, store, nil, "")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestSelectionStartsLoad(t *testing.T) {
	m := testModel(t)

	entry := selector.Entry{Record: history.Record{Path: "/lib", DisplayName: "lib"}}
	m, cmd := apply(t, m, selector.SelectedMsg{Entry: entry})

	if !m.Loading || m.LoadingPath != "/lib" {
		t.Errorf("loading = %v path = %q, want load of /lib", m.Loading, m.LoadingPath)
	}
	if cmd == nil {
		t.Error("selection produced no load command")
	}
}

func TestBooksLoadedSwitchesViewAndRecordsOpen(t *testing.T) {
	m := testModel(t)
	m.Loading = true
	m.LoadingPath = "/lib"

	books := []library.Book{{ID: 1, Title: "Dune"}}
	m, _ = apply(t, m, booksLoadedMsg{path: "/lib", name: "lib", books: books})

	if m.Mode != ViewBooks {
		t.Errorf("mode = %v, want ViewBooks", m.Mode)
	}
	if m.Loading {
		t.Error("still loading after result arrived")
	}
	rec, ok := m.Store.Get("/lib")
	if !ok || rec.OpenCount != 1 {
		t.Errorf("history record = %+v, %v, want open_count 1", rec, ok)
	}
	if rec.BookCount == nil || *rec.BookCount != 1 {
		t.Errorf("book count hint = %v, want 1", rec.BookCount)
	}
}

func TestAbandonedLoadResultIsDropped(t *testing.T) {
	m := testModel(t)
	m.Loading = true
	m.LoadingPath = "/lib"

	m, _ = apply(t, m, keyMsg("esc"))
	if m.Loading {
		t.Fatal("esc did not abandon the load")
	}

	m, _ = apply(t, m, booksLoadedMsg{path: "/lib", name: "lib"})
	if m.Mode != ViewSelector {
		t.Error("stale load result switched the view")
	}
	if _, ok := m.Store.Get("/lib"); ok {
		t.Error("stale load result was recorded to history")
	}
}

func TestLoadFailureShowsError(t *testing.T) {
	m := testModel(t)
	m.Loading = true
	m.LoadingPath = "/lib"

	m, _ = apply(t, m, loadFailedMsg{path: "/lib", err: errors.New("no such file")})

	if m.Loading {
		t.Error("still loading after failure")
	}
	if m.ErrorText == "" {
		t.Error("failure produced no status message")
	}
	if m.Mode != ViewSelector {
		t.Error("failure left the selector view")
	}
}

func TestDetailPopupLifecycle(t *testing.T) {
	m := testModel(t)
	m.Mode = ViewBooks

	book := library.Book{ID: 1, Title: "Dune", Filename: "Dune - Herbert", Format: "EPUB"}
	m, _ = apply(t, m, booklist.SelectedMsg{Book: book})
	if m.Detail == nil || m.Detail.Title != "Dune" {
		t.Fatalf("detail = %+v, want Dune", m.Detail)
	}

	m, cmd := apply(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Error("enter in details produced no open command")
	}
	if m.Detail == nil {
		t.Error("enter closed the details popup")
	}

	m, _ = apply(t, m, keyMsg("esc"))
	if m.Detail != nil {
		t.Error("esc did not close the details popup")
	}
}

func TestBackRefreshesSelector(t *testing.T) {
	m := testModel(t)
	m.Mode = ViewBooks
	m.Store.RecordOpen("/lib")
	m.Store.SetDetails("/lib", "lib", 3)

	m, _ = apply(t, m, booklist.BackMsg{})

	if m.Mode != ViewSelector {
		t.Fatalf("mode = %v, want ViewSelector", m.Mode)
	}
	entry, ok := m.Selector.Selected()
	if !ok || entry.Path != "/lib" {
		t.Errorf("selector entry = %+v, %v, want /lib", entry, ok)
	}
}

func TestQuitSavesDirtyHistory(t *testing.T) {
	m := testModel(t)
	m.Store.RecordOpen("/lib")
	if !m.Store.Dirty() {
		t.Fatal("store not dirty after RecordOpen")
	}

	m, cmd := apply(t, m, booklist.QuitMsg{})
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit produced %T, want tea.QuitMsg", cmd())
	}
	if m.Store.Dirty() {
		t.Error("history not saved on quit")
	}
}

func TestDirectStartWithInvalidPathFallsBack(t *testing.T) {
	store, err := history.OpenPath(filepath.Join(t.TempDir(), "libraries.json"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}

	m := New(&config.Config{}, store, nil, filepath.Join(t.TempDir(), "nope"))
	if m.Loading {
		t.Error("invalid start path began a load")
	}
	if m.ErrorText == "" {
		t.Error("invalid start path produced no status message")
	}
	if m.Init() != nil {
		t.Error("Init returned a command without a pending load")
	}
}
