package widget

// Pod wraps a node with the per-node state the dispatcher owns: identity,
// attachment, skip bookkeeping and layout geometry. Parents hold their
// children exclusively through pods; there are no back-references.
type Pod struct {
	id    NodeID
	inner Node

	attached bool
	skipGen  uint64

	origin  Point
	size    Size
	laidOut bool
}

// NewPod wraps n in a fresh, unattached pod. The hosting dispatcher
// delivers NodeAdded on its next sweep.
func NewPod(n Node) *Pod {
	return &Pod{id: nextNodeID(), inner: n}
}

// ID returns the pod's unique node identity.
func (p *Pod) ID() NodeID {
	return p.id
}

// Inner exposes the wrapped node.
func (p *Pod) Inner() Node {
	return p.inner
}

// Origin returns the pod's position in its parent's content space, valid
// after layout.
func (p *Pod) Origin() Point {
	return p.origin
}

// Size returns the pod's laid-out size.
func (p *Pod) Size() Size {
	return p.size
}
