// Package pool
// Author: momentics <momentics@gmail.com>
//
// Buffer recycling for producer/consumer pipelines. BytePool keeps
// fixed-size message buffers alive across hand-offs so a ping-pong stage
// pair does not allocate per round.
package pool
