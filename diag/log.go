package diag

import "github.com/joshuapare/diagkit/diag/logger"

// One-shot log wrappers. Each emits a complete begin/extend/end entry
// through the context's active logger, with the call site captured
// automatically.

// Errorf logs an error-level entry.
func Errorf(c *Context, format string, args ...any) {
	logf(c, logger.LevelError, Caller(1), format, args...)
}

// Warnf logs a warning-level entry.
func Warnf(c *Context, format string, args ...any) {
	logf(c, logger.LevelWarning, Caller(1), format, args...)
}

// Infof logs an info-level entry.
func Infof(c *Context, format string, args ...any) {
	logf(c, logger.LevelInfo, Caller(1), format, args...)
}

// Debugf logs a debug-level entry.
func Debugf(c *Context, format string, args ...any) {
	logf(c, logger.LevelDebug, Caller(1), format, args...)
}

// Tracef logs a trace-level entry.
func Tracef(c *Context, format string, args ...any) {
	logf(c, logger.LevelTrace, Caller(1), format, args...)
}

// Trace emits an empty trace entry recording that the call site was
// reached.
func Trace(c *Context) {
	l := c.Logger()
	site := Caller(1)
	l.Begin(logger.LevelTrace, site.File, site.Func, site.Line, c.Timestamp())
	l.End()
}

// SetLogLevel adjusts the active logger's threshold.
func SetLogLevel(c *Context, lvl logger.Level) {
	c.Logger().SetLevel(lvl)
}

// LogLevel returns the active logger's threshold.
func LogLevel(c *Context) logger.Level {
	return c.Logger().Level()
}

func logf(c *Context, lvl logger.Level, site Site, format string, args ...any) {
	l := c.Logger()
	l.Begin(lvl, site.File, site.Func, site.Line, c.Timestamp())
	l.Extend(format, args...)
	l.End()
}
