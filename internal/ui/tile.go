package ui

import (
	"math"
	"strings"

	"github.com/PoignardAzur/marquee/internal/theme"
	"github.com/PoignardAzur/marquee/internal/widget"
)

const (
	tileBaseWidth  = 24
	tileBaseHeight = 8

	// tileProgressMax is the number of animation steps between the resting
	// and highlighted tile sizes.
	tileProgressMax = 5
)

// tileScale maps a progress step to the factor applied to the tile's base
// size. Step 0 is the resting size, the final step is full size.
func tileScale(progress int) float64 {
	return 0.90 + float64(progress)/50
}

// Tile renders one artwork cell inside a shelf. Its identity is the
// (row, col) pair fixed at construction; every selection broadcast is
// compared against that pair, so a tile never needs to know where the
// cursor came from.
//
// The highlight animates: while selected the progress counter climbs one
// step per animation frame, while unselected it falls, and the tile's
// painted size follows the counter.
type Tile struct {
	widget.LeafNode

	row, col int
	imageRef string
	styles   *theme.Styles

	selected bool
	progress int
}

// NewTile returns a tile at the fixed grid position (row, col) showing the
// artwork named by imageRef.
func NewTile(row, col int, imageRef string, styles *theme.Styles) *Tile {
	return &Tile{row: row, col: col, imageRef: imageRef, styles: styles}
}

// Selected reports whether the tile currently matches the selection.
func (t *Tile) Selected() bool {
	return t.selected
}

// Progress returns the current highlight animation step.
func (t *Tile) Progress() int {
	return t.progress
}

// ImageRef returns the artwork reference the tile was built with.
func (t *Tile) ImageRef() string {
	return t.imageRef
}

func (t *Tile) OnEvent(ctx *widget.EventCtx, ev widget.Event) {
	switch e := ev.(type) {
	case widget.CommandEvent:
		sel, ok := e.Cmd.(selectionChangedCmd)
		if !ok {
			return
		}
		now := sel.Row == t.row && sel.Col == t.col
		if now == t.selected {
			return
		}
		t.selected = now
		ctx.RequestAnimFrame()
		if now {
			ctx.RequestPanToThis()
		}
	case widget.AnimFrameEvent:
		t.step(ctx)
	}
}

// step advances the highlight animation one frame toward the bound that
// matches the selection state, and keeps the clock running only while
// there is distance left to cover.
func (t *Tile) step(ctx *widget.EventCtx) {
	switch {
	case t.selected && t.progress < tileProgressMax:
		t.progress++
	case !t.selected && t.progress > 0:
		t.progress--
	default:
		return
	}
	ctx.RequestLayout()
	if (t.selected && t.progress < tileProgressMax) || (!t.selected && t.progress > 0) {
		ctx.RequestAnimFrame()
	}
}

func (t *Tile) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints) widget.Size {
	f := tileScale(t.progress)
	return bc.Constrain(widget.Size{
		Width:  int(math.Round(tileBaseWidth * f)),
		Height: int(math.Round(tileBaseHeight * f)),
	})
}

func (t *Tile) Paint(ctx *widget.PaintCtx) {
	sz := ctx.Size()
	outer := widget.RectOf(widget.Point{}, sz)
	border := t.styles.TileBorder
	if t.selected {
		border = t.styles.TileBorderSelected
	}
	inner := widget.Rect{
		Min: widget.Point{X: 1, Y: 1},
		Max: widget.Point{X: sz.Width - 1, Y: sz.Height - 1},
	}
	if !inner.Empty() {
		ctx.Fill(inner, '░', t.styles.TileFill)
	}
	if label := imageLabel(t.imageRef); label != "" && sz.Width > 4 && sz.Height > 2 {
		ctx.SetString(2, sz.Height-2, widget.TruncateText(label, sz.Width-4), t.styles.TileLabel)
	}
	ctx.Border(outer, border)
}

// imageLabel derives a short display name from an artwork reference: the
// last path segment, stripped of query and extension.
func imageLabel(ref string) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	ref = strings.TrimRight(ref, "/")
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		ref = ref[i+1:]
	}
	if i := strings.LastIndexByte(ref, '.'); i > 0 {
		ref = ref[:i]
	}
	return ref
}
