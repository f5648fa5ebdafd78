package widget

import (
	"time"

	"github.com/PoignardAzur/marquee/internal/task"
)

// Host owns the root pod and runs every tree pass: event dispatch, queued
// commands, lifecycle sweeps, layout and paint. All of it happens on one
// goroutine; background work re-enters only as Completion values handed to
// Promise.
type Host struct {
	root   *Pod
	runner *task.Runner

	gen   uint64
	queue []queuedCommand

	focusable       map[NodeID]bool
	focused         NodeID
	focusChainBuilt bool

	animWanted   bool
	layoutWanted bool
	panTarget    NodeID
}

type queuedCommand struct {
	target NodeID
	cmd    Command
}

// NewHost wraps root in a pod and prepares a dispatcher over it. Call Mount
// to attach the initial tree.
func NewHost(root Node, runner *task.Runner) *Host {
	return &Host{
		root:      NewPod(root),
		runner:    runner,
		focusable: make(map[NodeID]bool),
	}
}

// Root returns the root pod.
func (h *Host) Root() *Pod {
	return h.root
}

// Focused returns the node currently holding key focus, or zero.
func (h *Host) Focused() NodeID {
	return h.focused
}

// AnimRequested reports whether some node asked for another animation tick
// since the last frame was delivered.
func (h *Host) AnimRequested() bool {
	return h.animWanted
}

// LayoutRequested reports whether some node marked geometry stale since the
// last Layout call.
func (h *Host) LayoutRequested() bool {
	return h.layoutWanted
}

// Mount runs the initial deferred work: the first attachment sweep, which
// delivers NodeAdded to every pre-built node, and the one-time focus chain
// construction.
func (h *Host) Mount() {
	h.flush()
}

// Event dispatches ev to the whole tree in one pass, then runs the deferred
// work the pass produced.
func (h *Host) Event(ev Event) {
	h.gen++
	h.deliver(h.root, ev)
	h.flush()
}

// Key dispatches one key press to the focused node. Keys arriving before
// any node holds focus are dropped.
func (h *Host) Key(key string) {
	if h.focused == 0 {
		return
	}
	h.gen++
	h.routeTo(h.root, h.focused, KeyEvent{Key: key})
	h.flush()
}

// Promise feeds one background completion into the tree.
func (h *Host) Promise(c task.Completion) {
	h.Event(PromiseEvent{Slot: c.Slot, Value: c.Value, Err: c.Err})
}

// Anim delivers one animation tick. Nodes that want further frames request
// them again during the pass.
func (h *Host) Anim(interval time.Duration) {
	h.animWanted = false
	h.Event(AnimFrameEvent{Interval: interval})
}

// Submit queues cmd from outside the tree and runs it to quiescence.
// Target zero broadcasts.
func (h *Host) Submit(target NodeID, cmd Command) {
	h.submit(target, cmd)
	h.flush()
}

func (h *Host) submit(target NodeID, cmd Command) {
	h.queue = append(h.queue, queuedCommand{target: target, cmd: cmd})
}

// deliver walks the subtree in preorder, skipping children the current pass
// was told to leave alone.
func (h *Host) deliver(pod *Pod, ev Event) {
	if pod.skipGen == h.gen {
		return
	}
	pod.inner.OnEvent(&EventCtx{host: h, pod: pod}, ev)
	for _, child := range pod.inner.ChildPods() {
		if child.skipGen == h.gen {
			continue
		}
		h.deliver(child, ev)
	}
}

// routeTo delivers ev to the single node with the given id.
func (h *Host) routeTo(pod *Pod, target NodeID, ev Event) bool {
	if pod.id == target {
		pod.inner.OnEvent(&EventCtx{host: h, pod: pod}, ev)
		return true
	}
	for _, child := range pod.inner.ChildPods() {
		if h.routeTo(child, target, ev) {
			return true
		}
	}
	return false
}

// flush drains the deferred work a pass produced, to quiescence: attachment
// sweeps first so fresh nodes see NodeAdded before any command reaches
// them, then queued commands, each as a pass of its own.
func (h *Host) flush() {
	for {
		progressed := false
		if h.sweepAttach(h.root) {
			progressed = true
		}
		if !h.focusChainBuilt {
			h.focusChainBuilt = true
			h.deliverLifecycle(h.root, BuildFocusChain)
			progressed = true
		}
		for len(h.queue) > 0 {
			batch := h.queue
			h.queue = nil
			for _, qc := range batch {
				h.gen++
				if qc.target != 0 {
					h.routeTo(h.root, qc.target, CommandEvent{Cmd: qc.cmd})
				} else {
					h.deliver(h.root, CommandEvent{Cmd: qc.cmd})
				}
			}
			h.sweepAttach(h.root)
			progressed = true
		}
		if !progressed {
			return
		}
	}
}

// sweepAttach delivers NodeAdded, exactly once, to every pod not yet part
// of the live tree.
func (h *Host) sweepAttach(pod *Pod) bool {
	progressed := false
	if !pod.attached {
		pod.attached = true
		pod.inner.Lifecycle(&LifecycleCtx{host: h, pod: pod}, NodeAdded)
		progressed = true
	}
	for _, child := range pod.inner.ChildPods() {
		if h.sweepAttach(child) {
			progressed = true
		}
	}
	return progressed
}

func (h *Host) deliverLifecycle(pod *Pod, ev LifecycleEvent) {
	pod.inner.Lifecycle(&LifecycleCtx{host: h, pod: pod}, ev)
	for _, child := range pod.inner.ChildPods() {
		h.deliverLifecycle(child, ev)
	}
}

// Layout sizes the tree to the given cell region and then resolves any
// pending pan request against the fresh geometry.
func (h *Host) Layout(width, height int) {
	ctx := &LayoutCtx{host: h, pod: h.root}
	bc := Tight(Size{Width: width, Height: height})
	h.root.size = bc.Constrain(h.root.inner.Layout(ctx, bc))
	h.root.origin = Point{}
	h.root.laidOut = true
	h.layoutWanted = false

	if h.panTarget != 0 {
		h.resolvePan(h.panTarget)
		h.panTarget = 0
	}
}

// Paint renders the tree into canvas. Call after Layout.
func (h *Host) Paint(canvas *Canvas) {
	ctx := &PaintCtx{
		host:   h,
		pod:    h.root,
		canvas: canvas,
		origin: Point{},
		clip:   Rect{Max: Point{X: canvas.Width(), Y: canvas.Height()}},
	}
	h.root.inner.Paint(ctx)
}

// resolvePan walks the path from the root to the pan target, asking each
// clip ancestor to scroll the target's rect into its viewport.
func (h *Host) resolvePan(target NodeID) {
	path, ok := findPath(h.root, target)
	if !ok {
		return
	}
	rect := RectOf(Point{}, path[len(path)-1].size)
	for i := len(path) - 2; i >= 0; i-- {
		rect = rect.Translate(path[i+1].origin)
		if clip, isClip := path[i].inner.(*Clip); isClip {
			clip.EnsureVisible(rect)
			rect = rect.Translate(Point{X: -clip.offset.X, Y: -clip.offset.Y})
		}
	}
}

func findPath(pod *Pod, target NodeID) ([]*Pod, bool) {
	if pod.id == target {
		return []*Pod{pod}, true
	}
	for _, child := range pod.inner.ChildPods() {
		if rest, ok := findPath(child, target); ok {
			return append([]*Pod{pod}, rest...), true
		}
	}
	return nil, false
}
