package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercaux/folio/internal/errmsg"
	"github.com/lmercaux/folio/internal/ui/booklist"
	"github.com/lmercaux/folio/internal/ui/selector"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		// One line at the bottom is reserved for the status bar.
		m.Selector.SetSize(msg.Width, msg.Height-1)
		m.Books.SetSize(msg.Width, msg.Height-1)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case booksLoadedMsg:
		return m.handleBooksLoaded(msg)

	case loadFailedMsg:
		if !m.Loading || msg.path != m.LoadingPath {
			return m, nil
		}
		m.Loading = false
		m.LoadingPath = ""
		m.ErrorText = errmsg.Format(errmsg.OpLibraryOpen, msg.err)
		return m, nil

	case openFailedMsg:
		m.ErrorText = errmsg.Format(errmsg.OpBookOpen, msg.err)
		return m, nil

	case selector.SelectedMsg:
		m.ErrorText = ""
		m.Loading = true
		m.LoadingPath = msg.Entry.Path
		return m, openLibrary(msg.Entry.Path)

	case selector.ErrorMsg:
		m.ErrorText = msg.Message
		return m, nil

	case selector.CancelMsg, booklist.QuitMsg:
		return m.quit()

	case booklist.SelectedMsg:
		m.Detail = &msg.Book
		return m, nil

	case booklist.BackMsg:
		m.Mode = ViewSelector
		m.Selector.SetRecords(m.Store.Records())
		return m, nil
	}

	return m, nil
}

func (m Model) updateKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.ErrorText = ""

	if m.Detail != nil {
		return m.updateDetail(key)
	}

	if m.Loading {
		switch key.String() {
		case "q", "ctrl+c":
			return m.quit()
		case "esc":
			// Abandon the load. The in-flight read still completes but
			// its result no longer matches LoadingPath and is dropped.
			m.Loading = false
			m.LoadingPath = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Mode {
	case ViewSelector:
		m.Selector, cmd = m.Selector.Update(key)
	case ViewBooks:
		m.Books, cmd = m.Books.Update(key)
	}
	return m, cmd
}

func (m Model) updateDetail(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc", "q", "backspace":
		m.Detail = nil
	case "enter":
		return m, openBook(*m.Detail, m.LibraryRoot)
	case "ctrl+c":
		return m.quit()
	}
	return m, nil
}

func (m Model) handleBooksLoaded(msg booksLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.Loading || msg.path != m.LoadingPath {
		// Stale result from an abandoned or superseded load.
		return m, nil
	}
	m.Loading = false
	m.LoadingPath = ""
	m.LibraryRoot = msg.path
	m.LibraryName = msg.name
	m.Books.SetBooks(msg.name, msg.books)
	m.Mode = ViewBooks

	m.Store.RecordOpen(msg.path)
	m.Store.SetDetails(msg.path, msg.name, len(msg.books))
	if err := m.Store.Save(); err != nil {
		m.ErrorText = errmsg.Format(errmsg.OpHistorySave, err)
	}
	return m, nil
}

// quit saves the history best effort and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.Store.Dirty() {
		_ = m.Store.Save()
	}
	return m, tea.Quit
}
