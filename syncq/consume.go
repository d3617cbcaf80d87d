// File: syncq/consume.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package syncq

import "github.com/momentics/hioload-sync/api"

// Consume pops items from p and passes them to fn until p reports shutdown
// or fn returns false. It returns the number of items handed to fn.
func Consume[T any](p api.Popper[T], fn func(T) bool) int {
	n := 0
	for {
		v, ok := p.Pop()
		if !ok {
			return n
		}
		n++
		if !fn(v) {
			return n
		}
	}
}
