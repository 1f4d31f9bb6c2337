// Package booklist implements the main book browsing view with its
// incremental search bar.
package booklist

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercaux/folio/internal/library"
	"github.com/lmercaux/folio/internal/search"
	"github.com/lmercaux/folio/internal/ui"
	"github.com/lmercaux/folio/internal/ui/cursor"
)

// Model is the book list.
type Model struct {
	ui.Base
	libraryName string
	session     *search.Session[library.Book]
	cursor      cursor.Cursor
	input       textinput.Model
	searching   bool
}

// New creates an empty book list.
func New() Model {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "search title, author, tag..."
	input.CharLimit = 256

	return Model{
		cursor: cursor.New(2),
		input:  input,
	}
}

// SetBooks replaces the displayed library wholesale: the previous index
// and records are discarded and a fresh index is built, so queries can
// never return a book from the previously opened library.
func (m *Model) SetBooks(libraryName string, books []library.Book) {
	m.libraryName = libraryName
	m.session = search.NewSession(search.Build(books))
	m.cursor.Reset()
	m.searching = false
	m.input.SetValue("")
	m.input.Blur()
}

// Selected returns the book under the cursor.
func (m Model) Selected() (library.Book, bool) {
	if m.session == nil {
		return library.Book{}, false
	}
	return m.session.Selected()
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searching
}

// Query returns the active search query.
func (m Model) Query() string {
	if m.session == nil {
		return ""
	}
	return m.session.Query()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key input and returns the updated model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.session == nil {
		return m, nil
	}

	if m.searching {
		return m.updateSearching(key)
	}
	return m.updateBrowsing(key)
}

func (m Model) updateBrowsing(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		return m, func() tea.Msg { return QuitMsg{} }

	case "esc", "left", "h":
		return m, func() tea.Msg { return BackMsg{} }

	case "/":
		m.searching = true
		m.input.Focus()
		return m, textinput.Blink

	case "enter", "right", "l":
		if book, ok := m.Selected(); ok {
			return m, func() tea.Msg { return SelectedMsg{Book: book} }
		}

	default:
		if m.cursor.HandleKey(key.String(), m.session.Len(), m.listHeight()) {
			m.session.SetCursor(m.cursor.Pos())
		}
	}
	return m, nil
}

func (m Model) updateSearching(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		// Drop the query entirely and return to the unfiltered list.
		m.searching = false
		m.input.Blur()
		m.input.SetValue("")
		m.session.Clear()
		m.cursor.Reset()
		return m, nil

	case "enter":
		if book, ok := m.Selected(); ok {
			return m, func() tea.Msg { return SelectedMsg{Book: book} }
		}
		return m, nil

	case "up", "ctrl+k":
		m.cursor.Move(-1, m.session.Len(), m.listHeight())
		m.session.SetCursor(m.cursor.Pos())
		return m, nil

	case "down", "ctrl+j":
		m.cursor.Move(1, m.session.Len(), m.listHeight())
		m.session.SetCursor(m.cursor.Pos())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	if query := m.input.Value(); query != m.session.Query() {
		m.session.SetQuery(query)
		m.cursor.Reset()
	}
	return m, cmd
}
