// Package selector implements the library selection view: the ranked
// list of known libraries, filterable as the user types.
package selector

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/lmercaux/folio/internal/history"
	"github.com/lmercaux/folio/internal/search"
	"github.com/lmercaux/folio/internal/ui"
	"github.com/lmercaux/folio/internal/ui/cursor"
)

// Entry is one selectable library.
type Entry struct {
	history.Record
	Missing bool // path currently absent (unplugged media)
}

// SearchFields implements search.Fielder over the display name and path.
func (e Entry) SearchFields() []search.Field {
	return []search.Field{
		{Text: e.DisplayName, Title: true},
		{Text: e.Path},
	}
}

// Model is the library selector.
type Model struct {
	ui.Base
	session   *search.Session[Entry]
	cursor    cursor.Cursor
	input     textinput.Model
	filtering bool
}

// New creates an empty selector.
func New() Model {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "filter libraries"
	input.CharLimit = 128

	return Model{
		cursor: cursor.New(1),
		input:  input,
	}
}

// SetRecords replaces the selectable libraries with the ranked records,
// rebuilding the filter index. Existence of each path is checked once
// here, not per keystroke.
func (m *Model) SetRecords(records []history.Record) {
	entries := make([]Entry, len(records))
	for i, rec := range records {
		_, err := os.Stat(rec.Path)
		entries[i] = Entry{Record: rec, Missing: err != nil}
	}
	m.session = search.NewSession(search.Build(entries))
	m.cursor.Reset()
	m.filtering = false
	m.input.SetValue("")
	m.input.Blur()
}

// Selected returns the library under the cursor.
func (m Model) Selected() (Entry, bool) {
	if m.session == nil {
		return Entry{}, false
	}
	return m.session.Selected()
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filtering
}

// Empty reports whether no libraries are known at all.
func (m Model) Empty() bool {
	return m.session == nil || m.session.Index().Len() == 0
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

	if m.filtering {
		return m.updateFiltering(key)
	}
	return m.updateBrowsing(key)
}

func (m Model) updateBrowsing(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "q", "ctrl+c":
		return m, func() tea.Msg { return CancelMsg{} }

	case "/":
		m.filtering = true
		m.input.Focus()
		return m, textinput.Blink

	case "enter", "right", "l":
		return m.choose()

	default:
		if m.cursor.HandleKey(key.String(), m.session.Len(), m.listHeight()) {
			m.session.SetCursor(m.cursor.Pos())
		}
	}
	return m, nil
}

func (m Model) updateFiltering(key tea.KeyMsg) (Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.filtering = false
		m.input.Blur()
		m.input.SetValue("")
		m.session.Clear()
		m.cursor.Reset()
		return m, nil

	case "enter":
		return m.choose()

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

func (m Model) choose() (Model, tea.Cmd) {
	entry, ok := m.Selected()
	if !ok {
		return m, nil
	}
	if entry.Missing {
		return m, func() tea.Msg {
			return ErrorMsg{Message: fmt.Sprintf("Library path not available: %s", entry.Path)}
		}
	}
	return m, func() tea.Msg { return SelectedMsg{Entry: entry} }
}

// lastUsed formats a record's last-opened time for display.
func lastUsed(e Entry) string {
	if e.LastOpened == nil {
		return ""
	}
	return humanize.Time(*e.LastOpened)
}
