package ui

import (
	"fmt"
	"strings"

	"github.com/PoignardAzur/marquee/internal/widget"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const footerText = "↑/↓/←/→ move  / search  q quit"

// maxSearchHints caps how many ranked titles the overlay row lists.
const maxSearchHints = 3

// View implements tea.Model. Each frame lays the tree out for the rows
// left over after the chrome, paints it into a fresh canvas and stacks
// header, body and bottom bar.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	bottomRows := 0
	if m.searchActive {
		bottomRows++
	}
	if m.showFooter {
		bottomRows++
	}
	canvasH := height - 1 - bottomRows
	if canvasH < 1 {
		canvasH = 1
	}

	m.host.Layout(width, canvasH)
	canvas := widget.NewCanvas(width, canvasH)
	m.host.Paint(canvas)

	parts := make([]string, 0, 4)
	parts = append(parts, m.headerLine(width))
	parts = append(parts, canvas.Render())
	if m.searchActive {
		parts = append(parts, m.searchLine(width))
	}
	if m.showFooter {
		parts = append(parts, m.footerLine(width))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) headerLine(width int) string {
	title := "marquee"
	if m.verbose {
		row, col := m.root.Selection()
		title = fmt.Sprintf("%s  row %d col %d", title, row, col)
	}
	if styles.Header != nil {
		title = styles.Header.Render(title)
	}
	return padLine(title, width)
}

func (m *Model) footerLine(width int) string {
	line := footerText
	if styles.Footer != nil {
		line = styles.Footer.Render(line)
	}
	return padLine(line, width)
}

// searchLine renders the query input followed by the ranked titles, best
// match first. Enter jumps to the leading title.
func (m *Model) searchLine(width int) string {
	line := m.searchInput.View()
	for i, match := range m.searchMatches {
		if i == maxSearchHints {
			break
		}
		title := match.Target
		switch {
		case i == 0 && styles.SearchMatch != nil:
			title = styles.SearchMatch.Render(title)
		case styles.SearchPlaceholder != nil:
			title = styles.SearchPlaceholder.Render(title)
		}
		line += "  " + title
	}
	return padLine(line, width)
}

// padLine pads a rendered line out to width visible columns, or cuts it
// with an ellipsis when it overflows.
func padLine(line string, width int) string {
	if width <= 0 {
		return line
	}
	w := lipgloss.Width(line)
	if w > width {
		return truncate.StringWithTail(line, uint(width-1), "…")
	}
	if w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
