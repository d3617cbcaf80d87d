// File: pipeline/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package pipeline wires syncq primitives into the two stage layouts they
// were built for: a fan-out of producers and consumers around one Queue, and
// an I/O stage and a worker stage passing a single buffer through a pair of
// Values.
package pipeline
