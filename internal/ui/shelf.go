package ui

import (
	"context"

	"github.com/PoignardAzur/marquee/internal/logging/events"
	"github.com/PoignardAzur/marquee/internal/task"
	"github.com/PoignardAzur/marquee/internal/theme"
	"github.com/PoignardAzur/marquee/internal/widget"
	"github.com/charmbracelet/bubbles/spinner"
)

// tileGap is the number of blank columns between tiles on a shelf.
const tileGap = 2

// Shelf is one horizontal band of the catalog: a title line over a
// scrollable row of tiles. It is born with a loading placeholder and
// launches its thumbnail fetch the moment it joins the tree; when the
// result lands, the placeholder is spliced out for the tile row.
type Shelf struct {
	rowIndex int
	title    string
	refID    string
	fetch    Fetcher
	styles   *theme.Styles

	// body always holds a Column. Splices rewrite the column's children
	// and never replace the column itself.
	body *widget.Pod

	slot task.Slot
}

// NewShelf returns a shelf for the given catalog row. rowIndex is the
// shelf's fixed vertical position in the selection grid.
func NewShelf(rowIndex int, title, refID string, fetch Fetcher, styles *theme.Styles) *Shelf {
	col := widget.NewColumn()
	col.Append(widget.NewTextLeaf(title, styles.ShelfTitle))
	col.Append(widget.NewLoadingLeaf(spinner.MiniDot, title, styles.Loading))
	return &Shelf{
		rowIndex: rowIndex,
		title:    title,
		refID:    refID,
		fetch:    fetch,
		styles:   styles,
		body:     widget.NewPod(col),
	}
}

// Title returns the shelf's display title.
func (s *Shelf) Title() string {
	return s.title
}

// RowIndex returns the shelf's position in the selection grid.
func (s *Shelf) RowIndex() int {
	return s.rowIndex
}

// Body returns the pod holding the shelf's column.
func (s *Shelf) Body() *widget.Pod {
	return s.body
}

func (s *Shelf) Lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent) {
	if ev != widget.NodeAdded {
		return
	}
	name := "thumbnails:" + s.refID
	events.Fetch.Start(name)
	fetch, refID := s.fetch, s.refID
	s.slot = ctx.ComputeInBackground(name, func(ctx context.Context) (interface{}, error) {
		return fetch.FetchThumbnails(ctx, refID)
	})
}

func (s *Shelf) OnEvent(ctx *widget.EventCtx, ev widget.Event) {
	p, ok := ev.(widget.PromiseEvent)
	if !ok {
		return
	}
	if s.slot == task.None || p.Slot != s.slot {
		return
	}
	s.slot = task.None
	name := "thumbnails:" + s.refID
	if p.Err != nil {
		events.Fetch.Failed(name, p.Err)
		s.splice(ctx, nil, p.Err)
		return
	}
	refs, _ := p.Value.([]string)
	events.Fetch.Done(name, len(refs))
	s.splice(ctx, refs, nil)
}

// splice replaces everything under the title with either the tile row or
// an error line. The rewritten column is skipped for the rest of the
// current pass so the fresh tiles never see the completion that created
// them.
func (s *Shelf) splice(ctx *widget.EventCtx, refs []string, err error) {
	widget.RecursePass(ctx, s.body, func(col *widget.Column) {
		col.Clear()
		col.Append(widget.NewTextLeaf(s.title, s.styles.ShelfTitle))
		if err != nil {
			col.Append(widget.NewErrorLeaf(err.Error(), s.styles.Error))
			return
		}
		row := widget.NewRow()
		row.Gap = tileGap
		for i, ref := range refs {
			row.Append(NewTile(s.rowIndex, i, ref, s.styles))
		}
		col.Append(widget.NewClip(row, widget.Horizontal))
	})
	ctx.SkipChild(s.body)
	ctx.RequestLayout()
	events.UI.Splice("shelf", len(refs))
}

func (s *Shelf) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints) widget.Size {
	sz := ctx.LayoutChild(s.body, bc)
	ctx.PlaceChild(s.body, widget.Point{})
	return sz
}

func (s *Shelf) Paint(ctx *widget.PaintCtx) {
	ctx.PaintChild(s.body)
}

func (s *Shelf) ChildPods() []*widget.Pod {
	return []*widget.Pod{s.body}
}
