// Package popup renders centered modal dialogs over the main view.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lmercaux/folio/internal/ui/styles"
)

// Dialog is a centered popup with an optional title and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // 0 = auto-fit content
}

// Render returns the dialog as a string ready to be composed over the
// base view, centered within the given terminal dimensions.
func (p *Dialog) Render(termWidth, termHeight int) string {
	t := styles.T()

	contentWidth := p.Width
	if contentWidth == 0 {
		contentWidth = maxLineWidth(p.Content)
		if w := lipgloss.Width(p.Title); w > contentWidth {
			contentWidth = w
		}
		if w := lipgloss.Width(p.Footer); w > contentWidth {
			contentWidth = w
		}
		contentWidth += 2
	}
	if maxW := termWidth - 4; contentWidth > maxW {
		contentWidth = maxW
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, centerLine(t.S().Title.Render(p.Title), contentWidth), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		if lipgloss.Width(line) > contentWidth {
			line = ansi.Cut(line, 0, contentWidth-3) + "..."
		}
		lines = append(lines, line)
	}
	if p.Footer != "" {
		lines = append(lines, "", centerLine(t.S().Subtle.Render(p.Footer), contentWidth))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(contentWidth).
		Render(strings.Join(lines, "\n"))

	return Center(box, termWidth, termHeight)
}

// Center positions pre-rendered content in the middle of the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > boxWidth {
			boxWidth = w
		}
	}

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
	}
	return b.String()
}

// Compose overlays a rendered popup on top of a base view. Lines that
// are visually empty in the popup leave the base untouched; elsewhere the
// popup's visible span replaces the base at the same columns. ANSI-aware.
func Compose(base, popupView string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(popupView, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// Find the visible span of the popup line in display columns.
		startCol := 0
		for _, r := range plain {
			if r != ' ' {
				break
			}
			startCol++
		}
		endCol := ansi.StringWidth(strings.TrimRight(plain, " "))

		overlayContent := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(ansi.Strip(baseLine)); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		// Cutting through a wide rune can shift widths by a column;
		// re-pad so the overlay stays aligned.
		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(ansi.Strip(prefix)); w < startCol {
			prefix += strings.Repeat(" ", startCol-w)
		}

		result := prefix + overlayContent
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			sw := ansi.StringWidth(ansi.Strip(suffix))
			if want := width - endCol; sw > want {
				suffix = " " + ansi.Cut(suffix, sw-want+1, sw)
			} else if sw < want {
				result += strings.Repeat(" ", want-sw)
			}
			result += suffix
		}

		baseLines[i] = result
	}

	return strings.Join(baseLines, "\n")
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := lipgloss.Width(line); w > maxW {
			maxW = w
		}
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}
