// File: syncq/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package syncq provides two blocking hand-off primitives for
// producer/consumer pipelines:
//
//   - Queue: an unbounded double-ended queue. Push appends to the back,
//     PushFront jumps the line, Pop blocks until an item or Stop.
//   - Value: a single-slot cell. Put overwrites, Get blocks until a
//     deposit or Finish.
//
// Both guard their state with one mutex and one condition variable and start
// no goroutines of their own. Blocking calls report shutdown through the
// second return value instead of a sentinel payload, so a zero T is a
// legitimate item.
package syncq
