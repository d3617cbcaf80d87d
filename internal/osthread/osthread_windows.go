//go:build windows

// File: internal/osthread/osthread_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package osthread

import "golang.org/x/sys/windows"

// ID returns the Win32 thread id of the calling thread.
func ID() int {
	return int(windows.GetCurrentThreadId())
}
