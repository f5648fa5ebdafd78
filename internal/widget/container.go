package widget

// Column stacks children vertically, top to bottom, in append order.
type Column struct {
	children []*Pod

	// Gap is the number of blank rows between consecutive children.
	Gap int
}

// NewColumn returns an empty column.
func NewColumn() *Column {
	return &Column{}
}

// Append wraps n in a pod, adds it as the last child and returns the pod so
// callers can keep a handle for later splicing.
func (c *Column) Append(n Node) *Pod {
	pod := NewPod(n)
	c.children = append(c.children, pod)
	return pod
}

// Clear drops every child. The next attachment sweep never sees them again.
func (c *Column) Clear() {
	c.children = nil
}

// Len returns the child count.
func (c *Column) Len() int {
	return len(c.children)
}

// At returns the i-th child pod.
func (c *Column) At(i int) *Pod {
	return c.children[i]
}

func (c *Column) OnEvent(ctx *EventCtx, ev Event) {}

func (c *Column) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent) {}

func (c *Column) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	y := 0
	maxWidth := 0
	childBC := BoxConstraints{Max: Size{Width: bc.Max.Width, Height: Unbounded}}
	for i, child := range c.children {
		if i > 0 {
			y += c.Gap
		}
		sz := ctx.LayoutChild(child, childBC)
		ctx.PlaceChild(child, Point{X: 0, Y: y})
		y += sz.Height
		if sz.Width > maxWidth {
			maxWidth = sz.Width
		}
	}
	return bc.Constrain(Size{Width: maxWidth, Height: y})
}

func (c *Column) Paint(ctx *PaintCtx) {
	for _, child := range c.children {
		ctx.PaintChild(child)
	}
}

func (c *Column) ChildPods() []*Pod {
	return c.children
}

// Row lays children out side by side, left to right, in append order.
type Row struct {
	children []*Pod

	// Gap is the number of blank columns between consecutive children.
	Gap int
}

// NewRow returns an empty row.
func NewRow() *Row {
	return &Row{}
}

// Append wraps n in a pod, adds it as the last child and returns the pod.
func (r *Row) Append(n Node) *Pod {
	pod := NewPod(n)
	r.children = append(r.children, pod)
	return pod
}

// Clear drops every child.
func (r *Row) Clear() {
	r.children = nil
}

// Len returns the child count.
func (r *Row) Len() int {
	return len(r.children)
}

// At returns the i-th child pod.
func (r *Row) At(i int) *Pod {
	return r.children[i]
}

func (r *Row) OnEvent(ctx *EventCtx, ev Event) {}

func (r *Row) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent) {}

func (r *Row) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	x := 0
	maxHeight := 0
	childBC := BoxConstraints{Max: Size{Width: Unbounded, Height: bc.Max.Height}}
	for i, child := range r.children {
		if i > 0 {
			x += r.Gap
		}
		sz := ctx.LayoutChild(child, childBC)
		ctx.PlaceChild(child, Point{X: x, Y: 0})
		x += sz.Width
		if sz.Height > maxHeight {
			maxHeight = sz.Height
		}
	}
	return bc.Constrain(Size{Width: x, Height: maxHeight})
}

func (r *Row) Paint(ctx *PaintCtx) {
	for _, child := range r.children {
		ctx.PaintChild(child)
	}
}

func (r *Row) ChildPods() []*Pod {
	return r.children
}
