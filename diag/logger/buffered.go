package logger

import (
	"io"

	"github.com/joshuapare/diagkit/internal/linebuf"
)

// DefaultBufferSize is the entry buffer capacity used when none is
// given.
const DefaultBufferSize = 1024

// Sink receives one finished entry as a single write, together with the
// platform priority code classified when the entry began.
type Sink interface {
	WriteEntry(priority int, line []byte) error
}

// WriterSink adapts an io.Writer into a Sink, discarding the priority.
type WriterSink struct {
	W io.Writer
}

// WriteEntry implements Sink.
func (s WriterSink) WriteEntry(_ int, line []byte) error {
	_, err := s.W.Write(line)
	return err
}

// Buffered accumulates an entry into a fixed buffer and emits it
// through its Sink as exactly one write when the entry ends. Content
// past the buffer capacity is dropped; the portion that fit is kept.
// Used on platforms where an entry must reach the system as a single
// call.
type Buffered struct {
	gate

	sink Sink
	buf  *linebuf.Buffer

	// per-entry state, valid while active
	prio      int
	truncated bool
}

// NewBuffered returns a buffered backend writing entries of at most
// size bytes to sink. A non-positive size selects DefaultBufferSize.
func NewBuffered(sink Sink, size int) *Buffered {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Buffered{
		sink: sink,
		buf:  linebuf.New(size),
	}
}

// Begin implements Logger: it resets the buffer and cursor, classifies
// the level into a platform priority code, and writes the entry prefix.
func (b *Buffered) Begin(level Level, file, fn string, line int, stamp float64) {
	if !b.admit(level) {
		return
	}
	b.buf.Reset()
	b.truncated = false
	b.prio = severity(level)
	if !b.buf.Appendf("%s [%s] ", level, fn) {
		b.truncated = true
	}
}

// Extend implements Logger, appending through the bounded formatter.
// Once the buffer is full, further content is silently dropped.
func (b *Buffered) Extend(format string, args ...any) {
	if !b.extendable() || b.truncated {
		return
	}
	if !b.buf.Appendf(format, args...) {
		b.truncated = true
	}
}

// End implements Logger: it terminates the line and hands the buffer to
// the sink as a single write. Sink errors are best-effort and dropped;
// this layer cannot report through the logger it is implementing.
func (b *Buffered) End() {
	if !b.closing() {
		return
	}
	if b.buf.Avail() == 0 {
		// Make room for the terminator.
		b.buf.Truncate(b.buf.Len() - 1)
	}
	b.buf.AppendString("\n")
	_ = b.sink.WriteEntry(b.prio, b.buf.Bytes())
	b.buf.Reset()
	b.release()
}
