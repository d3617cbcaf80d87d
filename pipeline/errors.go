// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the pipeline module.

package pipeline

import "errors"

var (
	// ErrInvalidConfig indicates a non-positive stage count or size.
	ErrInvalidConfig = errors.New("invalid pipeline config")

	// ErrUnknownShutdown indicates an unrecognised shutdown mode name.
	ErrUnknownShutdown = errors.New("unknown shutdown mode")

	// ErrMismatch indicates a ping-pong round returned a buffer the worker did not produce.
	ErrMismatch = errors.New("hand-off payload mismatch")
)
