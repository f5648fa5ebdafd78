package widget

import (
	"context"
	"strings"

	"github.com/PoignardAzur/marquee/internal/task"
	"github.com/charmbracelet/lipgloss"
)

// EventCtx is handed to a node for the duration of one OnEvent call. All
// mutation requests it records are acted on by the host after the current
// pass, never reentrantly.
type EventCtx struct {
	host *Host
	pod  *Pod
}

// NodeID returns the identity of the node being visited.
func (c *EventCtx) NodeID() NodeID {
	return c.pod.id
}

// Submit queues cmd for broadcast to the whole tree on a later pass.
func (c *EventCtx) Submit(cmd Command) {
	c.host.submit(0, cmd)
}

// SubmitTo queues cmd for delivery to a single node on a later pass.
// Passing the submitter's own id is the idiom for deferred self-commands.
func (c *EventCtx) SubmitTo(target NodeID, cmd Command) {
	c.host.submit(target, cmd)
}

// SkipChild tells the dispatcher not to descend into child for the rest of
// the current pass. Call it after rewriting the child's structure: the
// rewrite already accounts for the event, and the fresh nodes must not be
// visited before their lifecycle sweep.
func (c *EventCtx) SkipChild(child *Pod) {
	child.skipGen = c.host.gen
}

// RequestFocus routes subsequent key events to this node.
func (c *EventCtx) RequestFocus() {
	c.host.focused = c.pod.id
}

// RequestAnimFrame asks the host to schedule one more animation tick.
func (c *EventCtx) RequestAnimFrame() {
	c.host.animWanted = true
}

// RequestLayout marks the tree geometry stale.
func (c *EventCtx) RequestLayout() {
	c.host.layoutWanted = true
}

// RequestPanToThis asks every clip ancestor to scroll this node into view
// after the next layout.
func (c *EventCtx) RequestPanToThis() {
	c.host.panTarget = c.pod.id
}

// ComputeInBackground launches fn on the host's task runner and returns the
// slot its completion event will carry. The node keeps the slot and
// compares it against incoming PromiseEvents.
func (c *EventCtx) ComputeInBackground(name string, fn func(context.Context) (interface{}, error)) task.Slot {
	return c.host.runner.Launch(name, fn)
}

// LifecycleCtx is handed to a node during lifecycle notifications. It
// carries the subset of event operations that make sense outside an input
// pass.
type LifecycleCtx struct {
	host *Host
	pod  *Pod
}

// NodeID returns the identity of the node being visited.
func (c *LifecycleCtx) NodeID() NodeID {
	return c.pod.id
}

// RegisterForFocus records the node in the focus chain. Taking focus is a
// separate, deferred step; see EventCtx.RequestFocus.
func (c *LifecycleCtx) RegisterForFocus() {
	c.host.focusable[c.pod.id] = true
}

// Submit queues cmd for broadcast on a later pass.
func (c *LifecycleCtx) Submit(cmd Command) {
	c.host.submit(0, cmd)
}

// SubmitTo queues cmd for delivery to a single node on a later pass.
func (c *LifecycleCtx) SubmitTo(target NodeID, cmd Command) {
	c.host.submit(target, cmd)
}

// RequestAnimFrame asks the host to schedule one more animation tick.
func (c *LifecycleCtx) RequestAnimFrame() {
	c.host.animWanted = true
}

// RequestLayout marks the tree geometry stale.
func (c *LifecycleCtx) RequestLayout() {
	c.host.layoutWanted = true
}

// ComputeInBackground launches fn on the host's task runner. Launching from
// the NodeAdded notification is how lazily loaded subtrees start their
// fetch.
func (c *LifecycleCtx) ComputeInBackground(name string, fn func(context.Context) (interface{}, error)) task.Slot {
	return c.host.runner.Launch(name, fn)
}

// LayoutCtx is handed to a node during layout.
type LayoutCtx struct {
	host *Host
	pod  *Pod
}

// LayoutChild lays out child within bc and records the size it reports.
func (c *LayoutCtx) LayoutChild(child *Pod, bc BoxConstraints) Size {
	cctx := &LayoutCtx{host: c.host, pod: child}
	child.size = bc.Constrain(child.inner.Layout(cctx, bc))
	child.laidOut = true
	return child.size
}

// PlaceChild positions child within this node's content space.
func (c *LayoutCtx) PlaceChild(child *Pod, origin Point) {
	child.origin = origin
}

// PaintCtx is handed to a node during paint. Coordinates passed to the
// drawing operations are relative to the node's own origin; writes outside
// the clip region are dropped.
type PaintCtx struct {
	host   *Host
	pod    *Pod
	canvas *Canvas
	origin Point
	clip   Rect
}

// Size returns the node's laid-out size.
func (c *PaintCtx) Size() Size {
	return c.pod.size
}

func (c *PaintCtx) put(x, y int, r rune, style *lipgloss.Style) {
	p := Point{X: c.origin.X + x, Y: c.origin.Y + y}
	if !c.clip.Contains(p) {
		return
	}
	c.canvas.Set(p.X, p.Y, r, style)
}

// SetString draws s starting at (x, y), one cell per rune.
func (c *PaintCtx) SetString(x, y int, s string, style *lipgloss.Style) {
	for i, r := range []rune(s) {
		c.put(x+i, y, r, style)
	}
}

// Fill floods r with the given rune.
func (c *PaintCtx) Fill(r Rect, ch rune, style *lipgloss.Style) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.put(x, y, ch, style)
		}
	}
}

// Border draws a rounded box on the perimeter of r.
func (c *PaintCtx) Border(r Rect, style *lipgloss.Style) {
	if r.Empty() {
		return
	}
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	for x := x0 + 1; x < x1; x++ {
		c.put(x, y0, '─', style)
		c.put(x, y1, '─', style)
	}
	for y := y0 + 1; y < y1; y++ {
		c.put(x0, y, '│', style)
		c.put(x1, y, '│', style)
	}
	c.put(x0, y0, '╭', style)
	c.put(x1, y0, '╮', style)
	c.put(x0, y1, '╰', style)
	c.put(x1, y1, '╯', style)
}

// TruncateText shortens s to at most width runes, with an ellipsis when
// anything was cut.
func TruncateText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return string(runes[:1])
	}
	return strings.TrimRight(string(runes[:width-1]), " ") + "…"
}

// PaintChild paints child at its laid-out origin, inheriting this node's
// clip region.
func (c *PaintCtx) PaintChild(child *Pod) {
	cctx := &PaintCtx{
		host:   c.host,
		pod:    child,
		canvas: c.canvas,
		origin: c.origin.Add(child.origin),
		clip:   c.clip,
	}
	child.inner.Paint(cctx)
}

// PaintChildShifted paints child shifted back by offset and clipped to
// region, both expressed in this node's content space. Clip containers use
// it to scroll oversized content through a fixed viewport.
func (c *PaintCtx) PaintChildShifted(child *Pod, region Rect, offset Point) {
	clip := c.clip.Intersect(region.Translate(c.origin))
	if clip.Empty() {
		return
	}
	cctx := &PaintCtx{
		host:   c.host,
		pod:    child,
		canvas: c.canvas,
		origin: c.origin.Add(child.origin).Sub(offset),
		clip:   clip,
	}
	child.inner.Paint(cctx)
}
