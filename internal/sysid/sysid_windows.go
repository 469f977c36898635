//go:build windows

package sysid

import "golang.org/x/sys/windows"

// ThreadID returns the identifier of the calling OS thread.
func ThreadID() int {
	return int(windows.GetCurrentThreadId())
}
