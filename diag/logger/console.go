package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/joshuapare/diagkit/internal/sysid"
)

// Column header written once before the first entry body when the
// threshold is verbose.
const (
	headerColumns = "[timestamp] [threadID] facility level [function call] <message>"
	headerRule    = "--------------------------------------------------------------------------------"
)

// defaultPrefix is the facility name carried by every entry.
const defaultPrefix = "diagkit"

// ConsoleOptions configures a Console backend.
type ConsoleOptions struct {
	Out    io.Writer // info/debug/trace stream; default os.Stdout
	Err    io.Writer // error/warning stream and header target; default os.Stderr
	Level  Level     // initial threshold; default LevelNone
	Prefix string    // facility name; default "diagkit"
}

// Console formats entries onto a pair of streams: errors and warnings
// to one, everything else to the other. When the threshold is Debug or
// higher every prefix carries a timestamp and thread id, and a one-time
// column header precedes the first entry.
type Console struct {
	gate

	out    io.Writer
	errw   io.Writer
	prefix string

	headerOnce sync.Once

	// stream selected by Begin; valid while an entry is active.
	stream io.Writer
}

// NewConsole returns a console backend with the given options.
func NewConsole(opts ConsoleOptions) *Console {
	c := &Console{
		out:    opts.Out,
		errw:   opts.Err,
		prefix: opts.Prefix,
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.errw == nil {
		c.errw = os.Stderr
	}
	if c.prefix == "" {
		c.prefix = defaultPrefix
	}
	c.SetLevel(opts.Level)
	return c
}

// Begin implements Logger. File and line are accepted for protocol
// compatibility; the console prefix shows the function name only.
func (c *Console) Begin(level Level, file, fn string, line int, stamp float64) {
	if !c.admit(level) {
		return
	}

	stream := c.out
	if level <= LevelWarning {
		stream = c.errw
	}

	if c.Level() >= LevelDebug {
		c.headerOnce.Do(func() {
			fmt.Fprintln(c.errw, headerColumns)
			fmt.Fprintln(c.errw, headerRule)
		})
		sec := int(stamp)
		usec := int((stamp - float64(sec)) * 1e6)
		fmt.Fprintf(stream, "[%2d.%06d] [%08x] %s: %s [%s] ",
			sec, usec, sysid.ThreadID(), c.prefix, level, fn)
	} else {
		fmt.Fprintf(stream, "%s: %s [%s] ", c.prefix, level, fn)
	}
	c.stream = stream
}

// Extend implements Logger, forwarding content to the selected stream.
func (c *Console) Extend(format string, args ...any) {
	if !c.extendable() {
		return
	}
	fmt.Fprintf(c.stream, format, args...)
}

// End implements Logger, terminating the entry line.
func (c *Console) End() {
	if !c.closing() {
		return
	}
	fmt.Fprintln(c.stream)
	c.stream = nil
	c.release()
}
