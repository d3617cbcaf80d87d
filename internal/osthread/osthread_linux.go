//go:build linux

// File: internal/osthread/osthread_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package osthread

import "golang.org/x/sys/unix"

// ID returns the kernel thread id of the calling thread.
func ID() int {
	return unix.Gettid()
}
