package library

import (
	"path/filepath"
	"strings"

	"github.com/lmercaux/folio/internal/search"
)

// Book is one record loaded from a calibre library. Books are immutable
// for the duration of a session and replaced wholesale when a different
// library is opened.
type Book struct {
	ID       int64
	Title    string
	Authors  []string
	Tags     []string
	Path     string // book directory relative to the library root
	UUID     string
	Format   string // primary format, e.g. "EPUB"
	Filename string // file name inside Path, without extension
	HasCover bool
	Added    string // calibre timestamp, display only
}

// AuthorList returns the authors joined for display.
func (b Book) AuthorList() string {
	return strings.Join(b.Authors, ", ")
}

// TagList returns the tags joined for display.
func (b Book) TagList() string {
	return strings.Join(b.Tags, ", ")
}

// SearchFields implements search.Fielder: title ranks as the title
// field, followed by every author, every tag, and the path.
func (b Book) SearchFields() []search.Field {
	fields := make([]search.Field, 0, 2+len(b.Authors)+len(b.Tags))
	fields = append(fields, search.Field{Text: b.Title, Title: true})
	for _, author := range b.Authors {
		fields = append(fields, search.Field{Text: author})
	}
	for _, tag := range b.Tags {
		fields = append(fields, search.Field{Text: tag})
	}
	fields = append(fields, search.Field{Text: b.Path})
	return fields
}

// File returns the absolute path of the book file inside root, following
// the calibre layout <root>/<book path>/<filename>.<format lowercased>.
// Empty when the library holds no file for this book.
func (b Book) File(root string) string {
	if b.Filename == "" || b.Format == "" {
		return ""
	}
	name := b.Filename + "." + strings.ToLower(b.Format)
	return filepath.Join(root, filepath.FromSlash(b.Path), name)
}
