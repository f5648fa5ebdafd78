package widget

// Axis names the direction a clip scrolls along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Clip shows a scrollable window onto a single child that may be larger
// than the space the clip is offered. The child is laid out unbounded on
// the scroll axis and painted shifted by the current offset; a pan request
// from a descendant pulls the requester's rect into view.
type Clip struct {
	child    *Pod
	axis     Axis
	offset   Point
	content  Size
	viewport Size
}

// NewClip wraps n in a clip scrolling along the given axis.
func NewClip(n Node, axis Axis) *Clip {
	return &Clip{child: NewPod(n), axis: axis}
}

// Child returns the pod holding the clipped content.
func (c *Clip) Child() *Pod {
	return c.child
}

// Offset returns the current scroll offset.
func (c *Clip) Offset() Point {
	return c.offset
}

func (c *Clip) OnEvent(ctx *EventCtx, ev Event) {}

func (c *Clip) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent) {}

func (c *Clip) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	childBC := BoxConstraints{Max: bc.Max}
	if c.axis == Horizontal {
		childBC.Max.Width = Unbounded
	} else {
		childBC.Max.Height = Unbounded
	}
	c.content = ctx.LayoutChild(c.child, childBC)
	ctx.PlaceChild(c.child, Point{})
	c.viewport = bc.Constrain(c.content)
	c.clampOffset()
	return c.viewport
}

func (c *Clip) Paint(ctx *PaintCtx) {
	ctx.PaintChildShifted(c.child, RectOf(Point{}, c.viewport), c.offset)
}

func (c *Clip) ChildPods() []*Pod {
	return []*Pod{c.child}
}

// EnsureVisible scrolls the smallest amount that brings r, given in content
// coordinates, fully inside the viewport. Rects larger than the viewport
// align to its leading edge.
func (c *Clip) EnsureVisible(r Rect) {
	if r.Max.X > c.offset.X+c.viewport.Width {
		c.offset.X = r.Max.X - c.viewport.Width
	}
	if r.Min.X < c.offset.X {
		c.offset.X = r.Min.X
	}
	if r.Max.Y > c.offset.Y+c.viewport.Height {
		c.offset.Y = r.Max.Y - c.viewport.Height
	}
	if r.Min.Y < c.offset.Y {
		c.offset.Y = r.Min.Y
	}
	c.clampOffset()
}

func (c *Clip) clampOffset() {
	maxX := c.content.Width - c.viewport.Width
	maxY := c.content.Height - c.viewport.Height
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if c.offset.X > maxX {
		c.offset.X = maxX
	}
	if c.offset.Y > maxY {
		c.offset.Y = maxY
	}
	if c.offset.X < 0 {
		c.offset.X = 0
	}
	if c.offset.Y < 0 {
		c.offset.Y = 0
	}
}
