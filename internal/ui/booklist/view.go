package booklist

import (
	"fmt"
	"strings"

	"github.com/lmercaux/folio/internal/icons"
	"github.com/lmercaux/folio/internal/library"
	"github.com/lmercaux/folio/internal/ui/render"
	"github.com/lmercaux/folio/internal/ui/styles"
)

const viewOverhead = 4 // title, blank, search line, help line

func (m Model) listHeight() int {
	return max(m.Height()-viewOverhead, 1)
}

// View renders the book list.
func (m Model) View() string {
	t := styles.T()
	var b strings.Builder

	title := fmt.Sprintf("%s · %d books", m.libraryName, m.session.Index().Len())
	if m.session.Query() != "" {
		title += fmt.Sprintf(" (%d shown)", m.session.Len())
	}
	b.WriteString(t.S().Title.Render(render.Truncate(title, m.Width())))
	b.WriteString("\n\n")

	height := m.listHeight()
	matches := m.session.Matches()

	if len(matches) == 0 {
		empty := "No books in this library."
		if m.session.Query() != "" {
			empty = "No books match " + m.session.Query()
		}
		b.WriteString(t.S().Muted.Render(empty))
		b.WriteString(strings.Repeat("\n", height))
	} else {
		start, end := m.cursor.VisibleRange(len(matches), height)
		for row := start; row < end; row++ {
			book := m.session.Index().Record(matches[row])
			b.WriteString(m.renderBook(book, row == m.cursor.Pos()))
			b.WriteString("\n")
		}
		for row := end - start; row < height; row++ {
			b.WriteString("\n")
		}
	}

	if m.searching {
		b.WriteString(m.input.View())
	} else if m.session.Query() != "" {
		b.WriteString(t.S().Muted.Render("/" + m.session.Query()))
	} else {
		b.WriteString(" ")
	}
	b.WriteString("\n")

	help := "j/k navigate · enter details · / search · esc libraries · q quit"
	if m.searching {
		help = "type to search · ctrl+j/k navigate · enter details · esc clear"
	}
	b.WriteString(t.S().Subtle.Render(help))

	return b.String()
}

func (m Model) renderBook(book library.Book, selected bool) string {
	t := styles.T()
	width := max(m.Width()-2, 20)

	titleW := width * 5 / 10
	authorW := width * 3 / 10
	tagW := width - titleW - authorW - 2

	line := render.PadRight(icons.FormatBook(book.Title), titleW) + " " +
		render.PadRight(book.AuthorList(), authorW)
	if tagW > 4 {
		line += " " + render.Truncate(book.TagList(), tagW)
	}

	if selected {
		return "> " + t.S().Cursor.Render(line)
	}
	return "  " + t.S().Base.Render(line)
}
