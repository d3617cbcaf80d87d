// File: api/sync.go
// Package api defines the blocking hand-off contracts shared by producers and consumers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Popper is the consumer side of a blocking queue.
// ok is false only when the queue has been stopped; v is then the zero value.
type Popper[T any] interface {
	Pop() (v T, ok bool)
}

// Queue is an unbounded blocking double-ended queue.
type Queue[T any] interface {
	Popper[T]
	// Push appends to the back and wakes one waiter.
	Push(v T)
	// PushFront inserts ahead of every pending item and wakes one waiter.
	PushFront(v T)
	// Buffer appends all values to the back in a single critical section.
	Buffer(vs ...T)
	// Empty and Size are snapshots, racy outside a coordinating loop.
	Empty() bool
	Size() int
	// Stop marks the queue done and wakes every waiter.
	Stop()
	// Reset clears the done flag for a new round.
	Reset()
	Done() bool
}

// Cell is a blocking single-slot container.
type Cell[T any] interface {
	// Put overwrites any unread value and wakes one waiter.
	Put(v T)
	// Get blocks until a value is deposited or the cell is finished.
	Get() (v T, ok bool)
	// Finish marks the cell done and wakes every waiter.
	Finish()
	Reset()
	Empty() bool
	Done() bool
}

// Counter receives named integer deltas, e.g. control.MetricsRegistry.
type Counter interface {
	Add(key string, delta int64)
}
