package widget

import "fmt"

// RecursePass grants fn scoped, exclusive access to the node inside pod for
// structural rewriting: clearing a container, appending freshly built
// children. Nothing else observes the child between before and after; the
// caller must follow up with ctx.SkipChild(pod) so the dispatcher does not
// descend into the half-new subtree during the current pass.
//
// A pod holding anything other than a T is a programming error in node
// composition, not a runtime condition, and panics.
func RecursePass[T Node](ctx *EventCtx, pod *Pod, fn func(T)) {
	inner, ok := pod.inner.(T)
	if !ok {
		var want T
		panic(fmt.Sprintf("widget: recurse pass into %T, child is %T", want, pod.inner))
	}
	fn(inner)
}
