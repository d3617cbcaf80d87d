// File: internal/osthread/osthread.go
// Package osthread binds goroutines to OS threads and reports thread ids.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package osthread

import "runtime"

// Pin locks the calling goroutine to its current OS thread and returns the
// thread id together with the function that releases the binding.
func Pin() (tid int, unpin func()) {
	runtime.LockOSThread()
	return ID(), runtime.UnlockOSThread
}
