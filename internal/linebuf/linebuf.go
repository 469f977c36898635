// Package linebuf provides a fixed-capacity append buffer for building
// single diagnostic lines.
//
// The buffer never emits past its capacity: append operations that would
// overflow keep the portion that fits and report truncation to the
// caller. This makes it suitable for backends that must produce each log
// entry as exactly one bounded write.
package linebuf

import "fmt"

// Buffer accumulates formatted text up to a fixed capacity.
//
// The zero value is not usable; construct with New.
type Buffer struct {
	buf []byte
	max int
}

// New returns a Buffer holding at most size bytes.
func New(size int) *Buffer {
	if size < 1 {
		size = 1
	}
	return &Buffer{
		buf: make([]byte, 0, size),
		max: size,
	}
}

// Appendf formats according to format and appends the result.
// It reports false when the output did not fit; the portion that fit is
// kept and the buffer is full afterward.
func (b *Buffer) Appendf(format string, args ...any) bool {
	out := fmt.Appendf(b.buf, format, args...)
	if len(out) > b.max {
		b.buf = out[:b.max]
		return false
	}
	b.buf = out
	return true
}

// AppendString appends s, reporting false on truncation.
func (b *Buffer) AppendString(s string) bool {
	rem := b.max - len(b.buf)
	if len(s) > rem {
		b.buf = append(b.buf, s[:rem]...)
		return false
	}
	b.buf = append(b.buf, s...)
	return true
}

// Truncate shortens the buffer to n bytes. It is a no-op when n is
// negative or not smaller than the current length.
func (b *Buffer) Truncate(n int) {
	if n >= 0 && n < len(b.buf) {
		b.buf = b.buf[:n]
	}
}

// Reset discards the buffer contents, keeping capacity.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
}

// Bytes returns the accumulated contents. The slice is only valid until
// the next append or Reset.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of bytes accumulated so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Avail returns the remaining capacity in bytes.
func (b *Buffer) Avail() int { return b.max - len(b.buf) }
