package app

import (
	"fmt"
	"strings"

	"github.com/lmercaux/folio/internal/library"
	"github.com/lmercaux/folio/internal/ui/popup"
	"github.com/lmercaux/folio/internal/ui/render"
	"github.com/lmercaux/folio/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	var base string
	switch {
	case m.Loading:
		base = m.renderLoading()
	case m.Mode == ViewBooks:
		base = m.Books.View()
	default:
		base = m.Selector.View()
	}

	base += "\n" + m.renderStatus()

	if m.Detail != nil {
		dialog := detailDialog(*m.Detail)
		return popup.Compose(base, dialog.Render(m.Width, m.Height), m.Width)
	}
	return base
}

func (m Model) renderLoading() string {
	t := styles.T()
	text := t.S().Muted.Render("Opening "+m.LoadingPath+"...") + "\n" +
		t.S().Subtle.Render("esc cancel · q quit")
	return popup.Center(text, m.Width, m.Height-1)
}

func (m Model) renderStatus() string {
	t := styles.T()
	if m.ErrorText != "" {
		return t.S().Error.Render(render.Truncate(m.ErrorText, m.Width))
	}
	return ""
}

func detailDialog(book library.Book) *popup.Dialog {
	var b strings.Builder
	t := styles.T()

	label := func(name, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%s %s\n", t.S().Subtle.Render(name+":"), value)
	}

	label("Authors", book.AuthorList())
	label("Tags", book.TagList())
	label("Format", book.Format)
	label("Added", book.Added)
	label("Path", book.Path)
	if book.Filename == "" {
		b.WriteString(t.S().Warning.Render("No file stored for this book") + "\n")
	}

	return &popup.Dialog{
		Title:   render.Sanitize(book.Title),
		Content: strings.TrimRight(b.String(), "\n"),
		Footer:  "enter open · esc close",
	}
}
