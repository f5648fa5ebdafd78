package widget

import "sync/atomic"

// NodeID uniquely identifies a node within a process. The zero value means
// "no node" and is used as the broadcast target for commands.
type NodeID uint64

var lastNodeID uint64

func nextNodeID() NodeID {
	return NodeID(atomic.AddUint64(&lastNodeID, 1))
}

// Node is the polymorphic unit of the UI tree. A node handles events and
// lifecycle notifications, lays itself out within box constraints, paints
// into a clipped region, and enumerates the child pods it exclusively owns.
//
// All methods run on the single dispatch goroutine; node state is never
// touched outside an event, lifecycle, layout or paint pass.
type Node interface {
	OnEvent(ctx *EventCtx, ev Event)
	Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent)
	Layout(ctx *LayoutCtx, bc BoxConstraints) Size
	Paint(ctx *PaintCtx)
	ChildPods() []*Pod
}

// LeafNode provides the no-op halves of Node for nodes without children or
// lifecycle interests. Embed it and override what the node actually does.
type LeafNode struct{}

func (LeafNode) OnEvent(ctx *EventCtx, ev Event)                {}
func (LeafNode) Lifecycle(ctx *LifecycleCtx, ev LifecycleEvent) {}
func (LeafNode) ChildPods() []*Pod                              { return nil }
