package diag

import (
	"sync"
	"time"

	"github.com/joshuapare/diagkit/diag/alloc"
	"github.com/joshuapare/diagkit/diag/logger"
	"github.com/joshuapare/diagkit/internal/sysid"
)

// Options configures a Context.
type Options struct {
	// Allocator handles every memory request made through the context.
	// Defaults to a pass-through backend. Allocators are fixed for the
	// context's lifetime and must outlive every block allocated through
	// them.
	Allocator alloc.Allocator

	// Logger receives every diagnostic entry. Defaults to a console
	// backend with a LevelNone threshold. Unlike allocators, loggers may
	// be swapped during the context's lifetime.
	Logger logger.Logger
}

// Context owns the active allocator and logger and provides the
// timestamps and thread identifiers attached to requests and entries.
type Context struct {
	allocator alloc.Allocator
	start     time.Time

	mu     sync.RWMutex
	logger logger.Logger
}

// New returns a Context with the given options, filling in defaults for
// any that are unset.
func New(opts Options) *Context {
	c := &Context{
		allocator: opts.Allocator,
		logger:    opts.Logger,
		start:     time.Now(),
	}
	if c.allocator == nil {
		c.allocator = alloc.NewPassthrough(nil)
	}
	if c.logger == nil {
		c.logger = logger.NewConsole(logger.ConsoleOptions{})
	}
	return c
}

// Allocator returns the active allocator.
func (c *Context) Allocator() alloc.Allocator { return c.allocator }

// Logger returns the active logger.
func (c *Context) Logger() logger.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}

// SetLogger replaces the active logger. It is a no-op when l is nil.
func (c *Context) SetLogger(l logger.Logger) {
	if l == nil {
		return
	}
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

// Timestamp returns the number of seconds since the context was
// created.
func (c *Context) Timestamp() float64 {
	return time.Since(c.start).Seconds()
}

// ThreadID returns the identifier of the calling OS thread.
func (c *Context) ThreadID() int {
	return sysid.ThreadID()
}
