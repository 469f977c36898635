// Package logger provides the diagnostic output indirection layer: a
// replaceable Logger implementing a begin/extend/end entry protocol
// with level filtering and serialized access.
//
// # Entry protocol
//
// A log entry is a transient lifecycle on a logger instance, not a
// stored entity. Begin starts it, any number of Extend calls append
// formatted content, End finalizes it. A successful Begin acquires the
// instance's mutex and End releases it, so a complete entry from one
// goroutine never interleaves with another goroutine's entry on the
// same instance.
//
// # Filtering and suppression
//
// Begin compares the requested level against the configured threshold:
// entries above the threshold (more verbose than allowed), and entries
// started while the instance is already active, are suppressed. Extend
// and End on a suppressed entry are safe no-ops. The level and active
// checks run before the mutex is taken — see the note on gate.admit —
// so suppression is fail-open, not fail-safe.
//
// # Backends
//
// Console formats entries onto a pair of output streams, writing a
// one-time column header when the threshold is verbose.
//
// Buffered accumulates an entry into a fixed buffer and emits it as a
// single write, for platforms where output must not be split.
package logger
