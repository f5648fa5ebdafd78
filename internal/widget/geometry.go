package widget

// Unbounded marks an axis a layout parent places no limit on.
const Unbounded = 1 << 30

// Point is a cell position, x to the right and y down.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is a half-open cell rectangle: Min inclusive, Max exclusive.
type Rect struct {
	Min Point
	Max Point
}

// RectOf builds a rect from an origin and size.
func RectOf(origin Point, size Size) Rect {
	return Rect{Min: origin, Max: Point{X: origin.X + size.Width, Y: origin.Y + size.Height}}
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Translate returns the rect shifted by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Min: r.Min.Add(d), Max: r.Max.Add(d)}
}

// Intersect returns the overlap of two rects, possibly empty.
func (r Rect) Intersect(o Rect) Rect {
	out := r
	if o.Min.X > out.Min.X {
		out.Min.X = o.Min.X
	}
	if o.Min.Y > out.Min.Y {
		out.Min.Y = o.Min.Y
	}
	if o.Max.X < out.Max.X {
		out.Max.X = o.Max.X
	}
	if o.Max.Y < out.Max.Y {
		out.Max.Y = o.Max.Y
	}
	return out
}

// BoxConstraints bound the size a node may report from layout.
type BoxConstraints struct {
	Min Size
	Max Size
}

// Tight returns constraints that admit exactly one size.
func Tight(s Size) BoxConstraints {
	return BoxConstraints{Min: s, Max: s}
}

// Loose returns constraints from zero up to s.
func Loose(s Size) BoxConstraints {
	return BoxConstraints{Max: s}
}

// Constrain clamps s into the constraint bounds.
func (bc BoxConstraints) Constrain(s Size) Size {
	if s.Width < bc.Min.Width {
		s.Width = bc.Min.Width
	}
	if s.Width > bc.Max.Width {
		s.Width = bc.Max.Width
	}
	if s.Height < bc.Min.Height {
		s.Height = bc.Min.Height
	}
	if s.Height > bc.Max.Height {
		s.Height = bc.Max.Height
	}
	return s
}
