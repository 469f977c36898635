//go:build !linux && !windows

package sysid

import "os"

// ThreadID falls back to the process id on platforms without a cheap
// per-thread identifier.
func ThreadID() int {
	return os.Getpid()
}
