package task

import (
	"context"
	"sync"
)

// Slot correlates a launched computation with the completion event it
// eventually produces. Slots are unique per Runner; the zero Slot matches
// nothing and marks a node with no outstanding work.
type Slot uint64

// None is the empty slot value.
const None Slot = 0

// Completion conveys the result of one finished computation. Exactly one
// Completion is emitted per Launch; ownership of Value transfers to the
// receiver when it is read from the channel.
type Completion struct {
	Slot  Slot
	Name  string
	Value interface{}
	Err   error
}

// Runner executes units of work on their own goroutines and publishes their
// results on a single buffered channel.
type Runner struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	next    Slot
	stopped bool

	completions chan Completion
	wg          sync.WaitGroup
}

// NewRunner creates a runner whose completion channel buffers up to size
// events before workers block.
func NewRunner(size int) *Runner {
	if size <= 0 {
		size = 16
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		ctx:         ctx,
		cancel:      cancel,
		completions: make(chan Completion, size),
	}
}

// Completions returns the channel completion events arrive on. The channel
// closes after Stop once every worker has exited.
func (r *Runner) Completions() <-chan Completion {
	return r.completions
}

// Launch runs fn off the dispatch goroutine and returns the slot its
// completion will carry. There is no cancellation of individual work units:
// a launched fn always runs to completion and its result is delivered even
// when the launching node has since been replaced, in which case the
// completion matches no slot and drains through the tree untouched.
func (r *Runner) Launch(name string, fn func(context.Context) (interface{}, error)) Slot {
	r.mu.Lock()
	r.next++
	slot := r.next
	stopped := r.stopped
	if !stopped {
		r.wg.Add(1)
	}
	r.mu.Unlock()
	if stopped {
		return slot
	}

	go func() {
		defer r.wg.Done()
		value, err := fn(r.ctx)
		evt := Completion{Slot: slot, Name: name, Value: value, Err: err}
		select {
		case <-r.ctx.Done():
		case r.completions <- evt:
		}
	}()
	return slot
}

// Stop cancels the context passed to in-flight work and closes the
// completion channel once every worker has exited. Workers finish their
// current fetch first; use Wait if a clean drain is required (e.g. in tests).
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	r.mu.Unlock()

	r.cancel()
	go func() {
		r.wg.Wait()
		close(r.completions)
	}()
}

// Wait blocks until all worker goroutines have exited. Call after Stop when
// a clean shutdown is required.
func (r *Runner) Wait() {
	r.wg.Wait()
}
