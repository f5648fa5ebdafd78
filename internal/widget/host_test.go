package widget

import (
	"strings"
	"testing"
)

type pingEvent struct{}

type spliceEvent struct{ count int }

func (pingEvent) isEvent()   {}
func (spliceEvent) isEvent() {}

type takeFocusCmd struct{}

type probeNode struct {
	LeafNode
	name      string
	events    []Event
	added     int
	wantFocus bool
	panOn     bool
}

func (p *probeNode) OnEvent(ctx *EventCtx, ev Event) {
	p.events = append(p.events, ev)
	switch ev := ev.(type) {
	case CommandEvent:
		if _, ok := ev.Cmd.(takeFocusCmd); ok && p.wantFocus {
			ctx.RequestFocus()
		}
	case pingEvent:
		if p.panOn {
			ctx.RequestPanToThis()
		}
	}
}

func (p *probeNode) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent) {
	switch ev {
	case NodeAdded:
		p.added++
	case BuildFocusChain:
		if p.wantFocus {
			ctx.RegisterForFocus()
			ctx.SubmitTo(ctx.NodeID(), takeFocusCmd{})
		}
	}
}

func (p *probeNode) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	return bc.Constrain(Size{Width: 1, Height: 1})
}

func (p *probeNode) Paint(ctx *PaintCtx) {}

// splicerNode owns a column and rebuilds its contents when it sees a
// spliceEvent, then tells the dispatcher to skip the fresh subtree.
type splicerNode struct {
	LeafNode
	column *Pod
	made   []*probeNode
}

func newSplicerNode() *splicerNode {
	col := NewColumn()
	col.Append(&probeNode{name: "placeholder"})
	return &splicerNode{column: NewPod(col)}
}

func (s *splicerNode) OnEvent(ctx *EventCtx, ev Event) {
	splice, ok := ev.(spliceEvent)
	if !ok {
		return
	}
	RecursePass(ctx, s.column, func(col *Column) {
		col.Clear()
		for i := 0; i < splice.count; i++ {
			p := &probeNode{name: "fresh"}
			s.made = append(s.made, p)
			col.Append(p)
		}
	})
	ctx.SkipChild(s.column)
}

func (s *splicerNode) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	sz := ctx.LayoutChild(s.column, bc)
	ctx.PlaceChild(s.column, Point{})
	return sz
}

func (s *splicerNode) Paint(ctx *PaintCtx) {
	ctx.PaintChild(s.column)
}

func (s *splicerNode) ChildPods() []*Pod {
	return []*Pod{s.column}
}

func countEvents(events []Event, match func(Event) bool) int {
	n := 0
	for _, ev := range events {
		if match(ev) {
			n++
		}
	}
	return n
}

func TestMountDeliversNodeAddedOnce(t *testing.T) {
	root := newSplicerNode()
	h := NewHost(root, nil)
	h.Mount()
	h.Mount()
	placeholder := root.column.Inner().(*Column).At(0).Inner().(*probeNode)
	if placeholder.added != 1 {
		t.Fatalf("expected one NodeAdded, got %d", placeholder.added)
	}
}

func TestSpliceSkipsFreshSubtreeForCurrentPass(t *testing.T) {
	root := newSplicerNode()
	h := NewHost(root, nil)
	h.Mount()

	h.Event(spliceEvent{count: 3})

	col := root.column.Inner().(*Column)
	if col.Len() != 3 {
		t.Fatalf("expected 3 children after splice, got %d", col.Len())
	}
	for i, p := range root.made {
		if got := countEvents(p.events, func(ev Event) bool { _, ok := ev.(spliceEvent); return ok }); got != 0 {
			t.Fatalf("fresh child %d received the splicing event %d times", i, got)
		}
		if p.added != 1 {
			t.Fatalf("fresh child %d expected NodeAdded once, got %d", i, p.added)
		}
	}

	h.Event(pingEvent{})
	for i, p := range root.made {
		if got := countEvents(p.events, func(ev Event) bool { _, ok := ev.(pingEvent); return ok }); got != 1 {
			t.Fatalf("fresh child %d expected the next event once, got %d", i, got)
		}
	}
}

func TestSpliceIsIdempotentPerEvent(t *testing.T) {
	root := newSplicerNode()
	h := NewHost(root, nil)
	h.Mount()
	h.Event(spliceEvent{count: 2})
	h.Event(spliceEvent{count: 2})
	col := root.column.Inner().(*Column)
	if col.Len() != 2 {
		t.Fatalf("expected rebuild to 2 children, got %d", col.Len())
	}
	if len(root.made) != 4 {
		t.Fatalf("expected 4 constructions across two splices, got %d", len(root.made))
	}
}

func TestFocusChainGrantsFocusViaDeferredSelfCommand(t *testing.T) {
	root := &probeNode{name: "root", wantFocus: true}
	h := NewHost(root, nil)
	if h.Focused() != 0 {
		t.Fatalf("expected no focus before mount")
	}
	h.Mount()
	if h.Focused() != h.Root().ID() {
		t.Fatalf("expected root focused after mount, got %d", h.Focused())
	}
	if got := countEvents(root.events, func(ev Event) bool { _, ok := ev.(CommandEvent); return ok }); got != 1 {
		t.Fatalf("expected exactly one focus command delivery, got %d", got)
	}
}

func TestKeyReachesOnlyFocusedNode(t *testing.T) {
	col := NewColumn()
	quiet := &probeNode{name: "quiet"}
	col.Append(quiet)
	h := NewHost(col, nil)
	h.Mount()
	h.Key("down")
	if len(quiet.events) != 0 {
		t.Fatalf("expected key dropped without focus, got %v", quiet.events)
	}
}

func TestCommandDeliveredAfterCurrentPass(t *testing.T) {
	// The splicer reacts to a broadcast command only if the command pass
	// runs separately from the event pass that queued it.
	root := newSplicerNode()
	h := NewHost(root, nil)
	h.Mount()
	placeholder := root.column.Inner().(*Column).At(0).Inner().(*probeNode)
	before := len(placeholder.events)
	h.Submit(0, "hello")
	if got := len(placeholder.events) - before; got != 1 {
		t.Fatalf("expected broadcast command to reach leaf once, got %d", got)
	}
}

func TestRecursePassWrongShapePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic on wrong-shape recurse pass")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "recurse pass") {
			t.Fatalf("unexpected panic payload %v", r)
		}
	}()
	leafPod := NewPod(&probeNode{})
	ctx := &EventCtx{host: NewHost(NewColumn(), nil), pod: leafPod}
	RecursePass(ctx, leafPod, func(col *Column) {
		col.Clear()
	})
}

func TestPanRequestScrollsClipAfterLayout(t *testing.T) {
	row := NewRow()
	var leaves []*probeNode
	for i := 0; i < 3; i++ {
		leaves = append(leaves, &probeNode{name: "leaf"})
	}
	for _, l := range leaves {
		row.Append(&fixedNode{w: 10, h: 1, inner: l})
	}
	clip := NewClip(row, Horizontal)
	h := NewHost(clip, nil)
	h.Mount()
	h.Layout(25, 3)
	if clip.Offset().X != 0 {
		t.Fatalf("expected unscrolled clip, offset %d", clip.Offset().X)
	}

	leaves[2].panOn = true
	h.Event(pingEvent{})
	h.Layout(25, 3)
	if got := clip.Offset().X; got != 5 {
		t.Fatalf("expected offset 5 to reveal third leaf, got %d", got)
	}
}

// fixedNode gives a probe a fixed footprint so clip geometry is
// predictable.
type fixedNode struct {
	w, h  int
	inner *probeNode
}

func (f *fixedNode) OnEvent(ctx *EventCtx, ev Event) {
	f.inner.OnEvent(ctx, ev)
}

func (f *fixedNode) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent) {
	f.inner.Lifecycle(ctx, ev)
}

func (f *fixedNode) Layout(ctx *LayoutCtx, bc BoxConstraints) Size {
	return bc.Constrain(Size{Width: f.w, Height: f.h})
}

func (f *fixedNode) Paint(ctx *PaintCtx) {}

func (f *fixedNode) ChildPods() []*Pod { return nil }
