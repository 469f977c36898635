//go:build linux

package sysid

import "golang.org/x/sys/unix"

// ThreadID returns the kernel task id of the calling thread.
//
// Goroutines migrate between OS threads, so the value identifies the
// thread servicing the call, not the goroutine.
func ThreadID() int {
	return unix.Gettid()
}
