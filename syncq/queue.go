// File: syncq/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Queue is an unbounded blocking deque. Pop is the only call that parks the
// caller; every other method holds the mutex briefly and returns.

package syncq

import (
	"iter"
	"sync"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a blocking double-ended queue. Create instances with New.
type Queue[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items *deque[T]
	done  bool
	opts  options
}

// New creates an empty queue.
func New[T any](opts ...Option) *Queue[T] {
	q := &Queue[T]{
		items: newDeque[T](),
		opts:  buildOptions(opts),
	}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the back of the queue and wakes one waiter.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items.pushBack(v)
	q.cond.Signal()
	q.mu.Unlock()
	q.opts.count("pushed", 1)
}

// PushFront inserts v ahead of all pending items and wakes one waiter.
// Typically used for urgent control messages such as a stop marker.
func (q *Queue[T]) PushFront(v T) {
	q.mu.Lock()
	q.items.pushFront(v)
	q.cond.Signal()
	q.mu.Unlock()
	q.opts.count("pushed", 1)
}

// Buffer appends vs to the back in one critical section; no concurrent Pop
// can observe part of the batch.
func (q *Queue[T]) Buffer(vs ...T) {
	if len(vs) == 0 {
		return
	}
	q.mu.Lock()
	for _, v := range vs {
		q.items.pushBack(v)
	}
	q.wake(len(vs))
	q.mu.Unlock()
	q.opts.count("pushed", int64(len(vs)))
}

// BufferSeq is Buffer for an iterator. seq runs with the queue locked and
// must not call back into q.
func (q *Queue[T]) BufferSeq(seq iter.Seq[T]) {
	n := 0
	q.mu.Lock()
	for v := range seq {
		q.items.pushBack(v)
		n++
	}
	q.wake(n)
	q.mu.Unlock()
	q.opts.count("pushed", int64(n))
}

// wake notifies waiters after n items were appended. Caller holds q.mu.
func (q *Queue[T]) wake(n int) {
	if n == 0 {
		return
	}
	switch q.opts.bufferWake {
	case WakeOne:
		q.cond.Signal()
	case WakeAll:
		q.cond.Broadcast()
	default:
		for i := 0; i < n; i++ {
			q.cond.Signal()
		}
	}
}

// Pop removes and returns the front item, blocking while the queue is empty.
// Once the queue is stopped Pop returns the zero value and false without
// blocking, even if items are still pending; use Drain to recover them.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	q.mu.Lock()
	for q.items.len() == 0 && !q.done {
		q.cond.Wait()
	}
	if q.done {
		q.mu.Unlock()
		return zero, false
	}
	v := q.items.popFront()
	q.mu.Unlock()
	q.opts.count("popped", 1)
	return v, true
}

// TryPop is the non-blocking form of Pop. ok is false when the queue is
// empty or stopped.
func (q *Queue[T]) TryPop() (T, bool) {
	var zero T
	q.mu.Lock()
	if q.done || q.items.len() == 0 {
		q.mu.Unlock()
		return zero, false
	}
	v := q.items.popFront()
	q.mu.Unlock()
	q.opts.count("popped", 1)
	return v, true
}

// Drain removes and returns every pending item in Pop order without
// blocking. It ignores the done flag.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	out := q.items.drain()
	q.mu.Unlock()
	q.opts.count("drained", int64(len(out)))
	return out
}

// Empty reports whether the queue holds no items. The answer may be stale by
// the time it is used; it does not predict whether Pop will block.
func (q *Queue[T]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.len() == 0
}

// Size returns the number of pending items. Same caveat as Empty.
func (q *Queue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.len()
}

// Stop marks the queue done and wakes every blocked Pop.
func (q *Queue[T]) Stop() {
	q.mu.Lock()
	q.done = true
	pending := q.items.len()
	q.cond.Broadcast()
	q.mu.Unlock()
	q.opts.count("stops", 1)
	q.opts.logger.Debug("queue stopped", "queue", q.opts.name, "pending", pending)
}

// Reset clears the done flag so the queue can serve another round.
// It must not race with Pops still returning from the previous Stop.
func (q *Queue[T]) Reset() {
	q.mu.Lock()
	q.done = false
	q.mu.Unlock()
	q.opts.logger.Debug("queue reset", "queue", q.opts.name)
}

// Done reports whether Stop was called since the last Reset.
func (q *Queue[T]) Done() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.done
}
