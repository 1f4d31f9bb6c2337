package app

import (
	"errors"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercaux/folio/internal/library"
	"github.com/lmercaux/folio/internal/opener"
)

// openLibrary loads every book of the library at path in the background.
// The SQLite handle lives only for the duration of the read.
func openLibrary(path string) tea.Cmd {
	return func() tea.Msg {
		lib, err := library.Open(path)
		if err != nil {
			return loadFailedMsg{path: path, err: err}
		}
		defer lib.Close()

		books, err := lib.Books()
		if err != nil {
			return loadFailedMsg{path: path, err: err}
		}
		return booksLoadedMsg{
			path:  path,
			name:  filepath.Base(path),
			books: books,
		}
	}
}

// openBook hands the book's file to the platform opener.
func openBook(book library.Book, root string) tea.Cmd {
	return func() tea.Msg {
		if book.Filename == "" {
			return openFailedMsg{err: errors.New("book has no file")}
		}
		if err := opener.Open(book.File(root)); err != nil {
			return openFailedMsg{err: err}
		}
		return nil
	}
}
