package booklist

import "github.com/lmercaux/folio/internal/library"

// SelectedMsg is emitted when the user picks a book to inspect.
type SelectedMsg struct {
	Book library.Book
}

// BackMsg is emitted when the user leaves the book list for the
// library selector.
type BackMsg struct{}

// QuitMsg is emitted when the user quits from the book list.
type QuitMsg struct{}
