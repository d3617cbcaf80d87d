// File: syncq/value.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package syncq

import (
	"sync"

	"github.com/momentics/hioload-sync/api"
)

var _ api.Cell[any] = (*Value[any])(nil)

// Value is a blocking single-slot cell. A deposit is delivered to exactly one
// Get; a second Put before that Get overwrites the first value.
//
// The same instance may be filled and drained any number of times, which
// lets a producer and a consumer pass one buffer back and forth.
type Value[T any] struct {
	mu    sync.Mutex
	cond  *sync.Cond
	slot  T
	empty bool
	done  bool
	opts  options
}

// NewValue creates an empty cell.
func NewValue[T any](opts ...Option) *Value[T] {
	v := &Value[T]{
		empty: true,
		opts:  buildOptions(opts),
	}
	v.cond = sync.NewCond(&v.mu)
	return v
}

// Put deposits x, replacing any unread value, and wakes one waiter.
func (v *Value[T]) Put(x T) {
	v.mu.Lock()
	overwrote := !v.empty
	v.slot = x
	v.empty = false
	v.cond.Signal()
	v.mu.Unlock()
	v.opts.count("puts", 1)
	if overwrote {
		v.opts.count("overwrites", 1)
	}
}

// Get blocks until a value is deposited, then empties the slot and returns
// the value with ok set. After Finish, once the slot is empty, Get returns
// the zero value and false without blocking.
func (v *Value[T]) Get() (T, bool) {
	var zero T
	v.mu.Lock()
	for v.empty && !v.done {
		v.cond.Wait()
	}
	if v.empty {
		v.mu.Unlock()
		return zero, false
	}
	x := v.slot
	v.slot = zero
	v.empty = true
	v.mu.Unlock()
	v.opts.count("gets", 1)
	return x, true
}

// Finish marks the cell done and wakes every waiter. A value deposited
// before Finish is still handed to the next Get.
func (v *Value[T]) Finish() {
	v.mu.Lock()
	v.done = true
	v.cond.Broadcast()
	v.mu.Unlock()
	v.opts.logger.Debug("value finished", "value", v.opts.name)
}

// Reset clears the done flag.
func (v *Value[T]) Reset() {
	v.mu.Lock()
	v.done = false
	v.mu.Unlock()
	v.opts.logger.Debug("value reset", "value", v.opts.name)
}

// Empty reports whether no unread value is deposited.
func (v *Value[T]) Empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.empty
}

// Done reports whether Finish was called since the last Reset.
func (v *Value[T]) Done() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done
}
