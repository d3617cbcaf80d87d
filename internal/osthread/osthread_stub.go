//go:build !linux && !windows

// File: internal/osthread/osthread_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package osthread

// ID is unsupported on this platform and returns -1.
func ID() int {
	return -1
}
