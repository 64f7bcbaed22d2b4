// Package render formats analysis output for the terminal. Presentation
// only: it consumes the analyze tables verbatim and owns alignment,
// styling and width handling.
package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var (
	styleHeader = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	styleTitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Bold(true)

	styleBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// TermWidth returns the terminal width, or a sane default when stdout
// is not a terminal.
func TermWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// Title renders a section heading.
func Title(s string) string {
	return styleTitle.Render("== " + s + " ==")
}

// Table renders rows under a styled header, columns padded to the
// widest cell. Widths are measured with runewidth so emoji and CJK
// cells stay aligned.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && runewidth.StringWidth(cell) > widths[i] {
				widths[i] = runewidth.StringWidth(cell)
			}
		}
	}

	var b strings.Builder
	var head []string
	for i, h := range headers {
		head = append(head, pad(h, widths[i]))
	}
	b.WriteString(styleHeader.Render(strings.Join(head, "  ")))
	b.WriteString("\n")

	for _, row := range rows {
		var cells []string
		for i, cell := range row {
			if i < len(widths) {
				cells = append(cells, pad(cell, widths[i]))
			}
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Bar renders a proportional histogram bar, maxWidth cells for the
// largest value.
func Bar(value, max, maxWidth int) string {
	if max <= 0 || value <= 0 {
		return ""
	}
	n := value * maxWidth / max
	if n == 0 {
		n = 1
	}
	return styleBar.Render(strings.Repeat("█", n))
}

// BarWidth picks a histogram bar width that fits the terminal next to
// a label column of the given width.
func BarWidth(labelWidth int) int {
	w := TermWidth() - labelWidth
	if w < 10 {
		return 10
	}
	if w > 60 {
		return 60
	}
	return w
}
