// File: syncq/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// deque stores queue items in two lanes: a LIFO front lane fed by PushFront
// and a FIFO ring buffer for regular pushes. Not safe for concurrent use;
// Queue holds its mutex around every call.

package syncq

import "github.com/eapache/queue"

type deque[T any] struct {
	front []T          // head of the deque is the last element
	back  *queue.Queue // ring buffer of T
}

func newDeque[T any]() *deque[T] {
	return &deque[T]{back: queue.New()}
}

func (d *deque[T]) pushBack(v T) {
	d.back.Add(v)
}

func (d *deque[T]) pushFront(v T) {
	d.front = append(d.front, v)
}

func (d *deque[T]) len() int {
	return len(d.front) + d.back.Length()
}

// popFront removes the head. The caller guarantees len() > 0.
func (d *deque[T]) popFront() T {
	if n := len(d.front); n > 0 {
		v := d.front[n-1]
		var zero T
		d.front[n-1] = zero // drop the reference held by the backing array
		d.front = d.front[:n-1]
		return v
	}
	// comma-ok keeps a stored nil interface value from panicking
	v, _ := d.back.Remove().(T)
	return v
}

// drain removes every item in head-to-tail order.
func (d *deque[T]) drain() []T {
	out := make([]T, 0, d.len())
	for d.len() > 0 {
		out = append(out, d.popFront())
	}
	d.front = nil
	return out
}
