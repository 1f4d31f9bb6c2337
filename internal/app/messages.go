package app

import "github.com/lmercaux/folio/internal/library"

// booksLoadedMsg carries the fully loaded contents of a library.
type booksLoadedMsg struct {
	path  string
	name  string
	books []library.Book
}

// loadFailedMsg reports that a library could not be opened or read.
type loadFailedMsg struct {
	path string
	err  error
}

// openFailedMsg reports that a book file could not be handed to the
// system opener.
type openFailedMsg struct {
	err error
}
