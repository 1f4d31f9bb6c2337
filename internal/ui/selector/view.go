package selector

import (
	"fmt"
	"strings"

	"github.com/lmercaux/folio/internal/icons"
	"github.com/lmercaux/folio/internal/ui/render"
	"github.com/lmercaux/folio/internal/ui/styles"
)

const viewOverhead = 4 // title, blank, filter line, help line

func (m Model) listHeight() int {
	return max(m.Height()-viewOverhead, 1)
}

// View renders the selector.
func (m Model) View() string {
	t := styles.T()
	var b strings.Builder

	b.WriteString(t.S().Title.Render("Select a library"))
	b.WriteString("\n\n")

	if m.Empty() {
		b.WriteString(t.S().Muted.Render("No libraries found."))
		b.WriteString("\n")
		b.WriteString(t.S().Subtle.Render("Run folio with a library path, or set default_library in the config."))
		return b.String()
	}

	height := m.listHeight()
	matches := m.session.Matches()
	start, end := m.cursor.VisibleRange(len(matches), height)

	for row := start; row < end; row++ {
		entry := m.session.Index().Record(matches[row])
		line := m.renderEntry(entry, row == m.cursor.Pos())
		b.WriteString(line)
		b.WriteString("\n")
	}
	for row := end - start; row < height; row++ {
		b.WriteString("\n")
	}

	if m.filtering {
		b.WriteString(m.input.View())
	} else if m.session.Query() != "" {
		b.WriteString(t.S().Muted.Render("/" + m.session.Query()))
	} else {
		b.WriteString(fmt.Sprintf("%d libraries", m.session.Len()))
	}
	b.WriteString("\n")

	help := "j/k navigate · enter open · / filter · q quit"
	if m.filtering {
		help = "type to filter · enter open · esc clear"
	}
	b.WriteString(t.S().Subtle.Render(help))

	return b.String()
}

func (m Model) renderEntry(entry Entry, selected bool) string {
	t := styles.T()

	marker := "  "
	if entry.Opened() {
		marker = t.S().Accent.Render(icons.Opened() + " ")
	}

	name := entry.DisplayName
	if name == "" {
		name = entry.Path
	}
	name = icons.FormatLibrary(name)

	var meta []string
	if entry.BookCount != nil {
		meta = append(meta, fmt.Sprintf("%d books", *entry.BookCount))
	}
	if used := lastUsed(entry); used != "" {
		meta = append(meta, used)
	}
	if entry.Missing {
		meta = append(meta, "missing")
	}

	width := max(m.Width()-2, 20)
	line := render.PadRight(name, min(28, width/2)) + " " + entry.Path
	if len(meta) > 0 {
		line += "  (" + strings.Join(meta, ", ") + ")"
	}
	line = render.Truncate(line, width)

	switch {
	case selected:
		return marker + t.S().Cursor.Render(line)
	case entry.Missing:
		return marker + t.S().Subtle.Render(line)
	default:
		return marker + t.S().Base.Render(line)
	}
}
