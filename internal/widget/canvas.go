package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one canvas position: a rune plus the style it renders with. A nil
// style renders plain.
type Cell struct {
	Rune  rune
	Style *lipgloss.Style
}

// Canvas is the cell grid the tree paints into. One canvas is built per
// frame, sized to the paint region.
type Canvas struct {
	width  int
	height int
	cells  []Cell
}

// NewCanvas returns a blank canvas of the given dimensions filled with
// spaces.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{width: width, height: height, cells: make([]Cell, width*height)}
	for i := range c.cells {
		c.cells[i].Rune = ' '
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// InBounds reports whether (x, y) is a valid cell.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes one cell. Out-of-bounds writes are dropped.
func (c *Canvas) Set(x, y int, r rune, style *lipgloss.Style) {
	if !c.InBounds(x, y) {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Style: style}
}

// At returns the cell at (x, y), or a blank cell out of bounds.
func (c *Canvas) At(x, y int) Cell {
	if !c.InBounds(x, y) {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.width+x]
}

// Row returns the plain text of one row, without styling. Mostly a test
// convenience.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < c.width; x++ {
		b.WriteRune(c.cells[y*c.width+x].Rune)
	}
	return b.String()
}

// Render flattens the canvas to a newline-joined string. Runs of cells
// sharing a style render as one styled segment to keep escape sequences
// short.
func (c *Canvas) Render() string {
	rows := make([]string, c.height)
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		b.Reset()
		run.Reset()
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle != nil {
				b.WriteString(runStyle.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.Style != runStyle {
				flush()
				runStyle = cell.Style
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
