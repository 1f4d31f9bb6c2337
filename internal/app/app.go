// Package app wires the library selector and book list into the root
// Bubble Tea model and owns the application-level state transitions
// between them.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercaux/folio/internal/config"
	"github.com/lmercaux/folio/internal/history"
	"github.com/lmercaux/folio/internal/library"
	"github.com/lmercaux/folio/internal/locator"
	"github.com/lmercaux/folio/internal/ui/booklist"
	"github.com/lmercaux/folio/internal/ui/selector"
)

// ViewMode identifies the active top-level view.
type ViewMode int

const (
	ViewSelector ViewMode = iota
	ViewBooks
)

// Model is the root application model containing all state.
type Model struct {
	Mode     ViewMode
	Selector selector.Model
	Books    booklist.Model
	Store    *history.Store

	// Library currently shown in the book list.
	LibraryRoot string
	LibraryName string

	// Detail is the book shown in the details popup, nil when closed.
	Detail *library.Book

	// Loading is set while a library loads in the background; key input
	// is ignored until the load completes or is abandoned with Esc. A
	// result arriving for a path other than LoadingPath is discarded.
	Loading     bool
	LoadingPath string

	ErrorText string
	Width     int
	Height    int
}

// New creates the application model. startPath, when non-empty, is a
// library to open directly, skipping the selector; an invalid path
// falls back to the selector with a status-bar error.
func New(cfg *config.Config, store *history.Store, records []history.Record, startPath string) Model {
	m := Model{
		Mode:     ViewSelector,
		Selector: selector.New(),
		Books:    booklist.New(),
		Store:    store,
	}
	m.Selector.SetRecords(records)

	if startPath == "" {
		startPath = cfg.DefaultLibrary
	}
	if startPath != "" {
		if path := locator.Canonical(startPath); locator.IsLibrary(path) {
			m.Loading = true
			m.LoadingPath = path
		} else {
			m.ErrorText = "Not a calibre library: " + startPath
		}
	}
	return m
}

// Init implements tea.Model. When a start library was given, the load
// begins immediately.
func (m Model) Init() tea.Cmd {
	if m.Loading {
		return openLibrary(m.LoadingPath)
	}
	return nil
}
