package ui

import (
	"context"

	"github.com/PoignardAzur/marquee/internal/catalog"
	"github.com/PoignardAzur/marquee/internal/logging/events"
	"github.com/PoignardAzur/marquee/internal/task"
	"github.com/PoignardAzur/marquee/internal/theme"
	"github.com/PoignardAzur/marquee/internal/widget"
	"github.com/charmbracelet/bubbles/spinner"
)

// Fetcher loads catalog data for the browsing tree. *catalog.Client
// satisfies it; tests substitute fixtures.
type Fetcher interface {
	FetchRows(ctx context.Context, catalogID string) ([]catalog.Row, error)
	FetchThumbnails(ctx context.Context, refID string) ([]string, error)
}

// selectionChangedCmd broadcasts the new cursor position to every tile.
// Each tile compares the pair against its own fixed coordinates.
type selectionChangedCmd struct {
	Row int
	Col int
}

// takeFocusCmd is the root's deferred self-command: submitted while the
// focus chain is being built, delivered once the tree has settled.
type takeFocusCmd struct{}

// jumpToRowCmd moves the selection to the start of the given shelf. The
// search overlay submits it, targeted at the root.
type jumpToRowCmd struct {
	Row int
}

// Root owns the whole browsing tree: a vertical window over the column of
// shelves, the catalog fetch that populates it, and the selection cursor
// the arrow keys move.
type Root struct {
	catalogID string
	fetch     Fetcher
	styles    *theme.Styles

	// body holds the vertical clip; clip's child is always a Column.
	body *widget.Pod
	clip *widget.Clip

	slot   task.Slot
	rows   []catalog.Row
	selRow int
	selCol int
}

// NewRoot returns the browsing tree for the given catalog, showing its
// loading placeholder until the first fetch completes.
func NewRoot(catalogID string, fetch Fetcher, styles *theme.Styles) *Root {
	col := widget.NewColumn()
	col.Gap = 1
	col.Append(widget.NewLoadingLeaf(spinner.MiniDot, "loading catalog", styles.Loading))
	clip := widget.NewClip(col, widget.Vertical)
	return &Root{
		catalogID: catalogID,
		fetch:     fetch,
		styles:    styles,
		body:      widget.NewPod(clip),
		clip:      clip,
	}
}

// Selection returns the cursor's current grid position.
func (r *Root) Selection() (row, col int) {
	return r.selRow, r.selCol
}

// Rows returns the catalog rows the tree was populated from, nil until
// the catalog fetch completes.
func (r *Root) Rows() []catalog.Row {
	return r.rows
}

// RowTitles returns the shelf titles in grid order.
func (r *Root) RowTitles() []string {
	titles := make([]string, len(r.rows))
	for i, row := range r.rows {
		titles[i] = row.Title
	}
	return titles
}

func (r *Root) Lifecycle(ctx *widget.LifecycleCtx, ev widget.LifecycleEvent) {
	switch ev {
	case widget.NodeAdded:
		name := "catalog:" + r.catalogID
		events.Fetch.Start(name)
		fetch, id := r.fetch, r.catalogID
		r.slot = ctx.ComputeInBackground(name, func(ctx context.Context) (interface{}, error) {
			return fetch.FetchRows(ctx, id)
		})
	case widget.BuildFocusChain:
		ctx.RegisterForFocus()
		ctx.SubmitTo(ctx.NodeID(), takeFocusCmd{})
	}
}

func (r *Root) OnEvent(ctx *widget.EventCtx, ev widget.Event) {
	switch e := ev.(type) {
	case widget.KeyEvent:
		r.handleKey(ctx, e.Key)
	case widget.CommandEvent:
		switch cmd := e.Cmd.(type) {
		case takeFocusCmd:
			ctx.RequestFocus()
			events.UI.Focus(uint64(ctx.NodeID()))
		case jumpToRowCmd:
			r.selRow, r.selCol = cmd.Row, 0
			r.broadcastSelection(ctx)
		}
	case widget.PromiseEvent:
		r.handlePromise(ctx, e)
	}
}

// handleKey moves the selection cursor. Both coordinates saturate at
// zero and have no upper bound; a cursor past the data simply selects
// nothing until the data catches up.
func (r *Root) handleKey(ctx *widget.EventCtx, key string) {
	row, col := r.selRow, r.selCol
	switch key {
	case "up", "k":
		row--
	case "down", "j":
		row++
	case "left", "h":
		col--
	case "right", "l":
		col++
	default:
		return
	}
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	if row == r.selRow && col == r.selCol {
		return
	}
	r.selRow, r.selCol = row, col
	r.broadcastSelection(ctx)
}

func (r *Root) broadcastSelection(ctx *widget.EventCtx) {
	events.UI.Selection(r.selRow, r.selCol)
	ctx.Submit(selectionChangedCmd{Row: r.selRow, Col: r.selCol})
}

// handlePromise consumes the catalog completion if the slot matches, then
// repeats the current selection broadcast. Tiles spliced in by this or
// any other completion were not alive for the previous broadcast; the
// repeat is what converges the highlight.
func (r *Root) handlePromise(ctx *widget.EventCtx, p widget.PromiseEvent) {
	if r.slot != task.None && p.Slot == r.slot {
		r.slot = task.None
		name := "catalog:" + r.catalogID
		if p.Err != nil {
			events.Fetch.Failed(name, p.Err)
			r.spliceError(ctx, p.Err)
		} else {
			rows, _ := p.Value.([]catalog.Row)
			events.Fetch.Done(name, len(rows))
			r.spliceShelves(ctx, rows)
		}
	}
	r.broadcastSelection(ctx)
}

func (r *Root) spliceShelves(ctx *widget.EventCtx, rows []catalog.Row) {
	r.rows = rows
	widget.RecursePass(ctx, r.clip.Child(), func(col *widget.Column) {
		col.Clear()
		for i, row := range rows {
			col.Append(NewShelf(i, row.Title, row.RefID, r.fetch, r.styles))
		}
	})
	ctx.SkipChild(r.clip.Child())
	ctx.RequestLayout()
	events.UI.Splice("catalog", len(rows))
}

func (r *Root) spliceError(ctx *widget.EventCtx, err error) {
	widget.RecursePass(ctx, r.clip.Child(), func(col *widget.Column) {
		col.Clear()
		col.Append(widget.NewErrorLeaf(err.Error(), r.styles.Error))
	})
	ctx.SkipChild(r.clip.Child())
	ctx.RequestLayout()
	events.UI.Splice("catalog", 0)
}

func (r *Root) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints) widget.Size {
	sz := ctx.LayoutChild(r.body, bc)
	ctx.PlaceChild(r.body, widget.Point{})
	return sz
}

func (r *Root) Paint(ctx *widget.PaintCtx) {
	ctx.PaintChild(r.body)
}

func (r *Root) ChildPods() []*widget.Pod {
	return []*widget.Pod{r.body}
}
