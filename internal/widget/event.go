package widget

import (
	"time"

	"github.com/PoignardAzur/marquee/internal/task"
)

// Event is a unit of input delivered to node handlers during a dispatch
// pass. Input keys, queued commands, background completions and animation
// frames all travel through the same stream.
type Event interface {
	isEvent()
}

// KeyEvent carries one normalized key press. Keys are delivered to the
// focused node only.
type KeyEvent struct {
	Key string
}

// CommandEvent carries a command submitted on an earlier pass. Broadcast
// commands reach every node; targeted commands reach exactly one.
type CommandEvent struct {
	Cmd Command
}

// PromiseEvent delivers the result of a background computation. Every node
// sees it; a node reacts only when the slot matches the one it holds, and
// completions matching no live slot drain through the tree untouched.
type PromiseEvent struct {
	Slot  task.Slot
	Value interface{}
	Err   error
}

// AnimFrameEvent is one tick of the animation clock, delivered to the whole
// tree while at least one node keeps requesting frames.
type AnimFrameEvent struct {
	Interval time.Duration
}

func (KeyEvent) isEvent()       {}
func (CommandEvent) isEvent()   {}
func (PromiseEvent) isEvent()   {}
func (AnimFrameEvent) isEvent() {}

// Command is an opaque payload scheduled with Submit and delivered on a
// later pass wrapped in a CommandEvent. Handlers recover the concrete type
// with a type switch.
type Command interface{}

// LifecycleEvent is a tree-management notification, delivered outside the
// ordinary event stream.
type LifecycleEvent int

const (
	// NodeAdded fires exactly once per node, on the first sweep after the
	// node becomes part of the live tree.
	NodeAdded LifecycleEvent = iota + 1
	// BuildFocusChain fires once per host, when the focus chain is first
	// constructed. Nodes that want key input register here.
	BuildFocusChain
)
