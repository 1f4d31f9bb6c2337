// Package library reads book metadata out of a calibre library's
// metadata.db. Access is strictly read-only; the database remains owned
// by calibre.
package library

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lmercaux/folio/internal/db"
	"github.com/lmercaux/folio/internal/locator"
)

// Library is an open calibre library.
type Library struct {
	root string
	db   *sql.DB
}

// Open connects to the metadata.db inside root. An unreadable or missing
// database surfaces here as a single error; it never fails per-record
// later.
func Open(root string) (*Library, error) {
	if !locator.IsLibrary(root) {
		return nil, fmt.Errorf("no %s found in %s", locator.MetadataFile, root)
	}

	dbPath := filepath.Join(root, locator.MetadataFile)
	conn, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open %s: %w", dbPath, err)
	}

	return &Library{root: root, db: conn}, nil
}

// Root returns the library directory.
func (l *Library) Root() string {
	return l.root
}

// Close releases the database connection.
func (l *Library) Close() error {
	return l.db.Close()
}

// Books loads every book in the library in calibre's sort order.
func (l *Library) Books() ([]Book, error) {
	rows, err := l.db.Query(`
		SELECT
			b.id,
			b.title,
			b.path,
			b.uuid,
			b.has_cover,
			b.timestamp,
			(SELECT GROUP_CONCAT(a.name, ', ')
			   FROM books_authors_link bal
			   JOIN authors a ON a.id = bal.author
			  WHERE bal.book = b.id) AS authors,
			(SELECT GROUP_CONCAT(t.name, ', ')
			   FROM books_tags_link btl
			   JOIN tags t ON t.id = btl.tag
			  WHERE btl.book = b.id) AS tags,
			(SELECT d.format FROM data d WHERE d.book = b.id ORDER BY d.id LIMIT 1) AS format,
			(SELECT d.name FROM data d WHERE d.book = b.id ORDER BY d.id LIMIT 1) AS filename
		FROM books b
		ORDER BY b.sort
	`)
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		var (
			book             Book
			uuid, added      sql.NullString
			authors, tags    sql.NullString
			format, filename sql.NullString
			hasCover         sql.NullBool
		)
		if err := rows.Scan(&book.ID, &book.Title, &book.Path, &uuid, &hasCover,
			&added, &authors, &tags, &format, &filename); err != nil {
			return nil, fmt.Errorf("load books: %w", err)
		}

		book.UUID = db.NullStringValue(uuid)
		book.Added = db.NullStringValue(added)
		book.Format = db.NullStringValue(format)
		book.Filename = db.NullStringValue(filename)
		book.HasCover = db.NullBoolValue(hasCover)
		book.Authors = splitList(db.NullStringValue(authors))
		book.Tags = splitList(db.NullStringValue(tags))
		if len(book.Authors) == 0 {
			book.Authors = []string{"Unknown"}
		}

		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	return books, nil
}

// BookCount returns the number of books without loading them.
func (l *Library) BookCount() (int, error) {
	var count int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM books`).Scan(&count)
	return count, err
}

// splitList splits a GROUP_CONCAT result into its elements.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ", ")
}
