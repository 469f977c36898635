package diag

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/diagkit/diag/alloc"
	"github.com/joshuapare/diagkit/diag/logger"
)

func TestNew_Defaults(t *testing.T) {
	c := New(Options{})
	require.NotNil(t, c.Allocator())
	require.NotNil(t, c.Logger())
	require.Equal(t, logger.LevelNone, c.Logger().Level())

	// The default allocator keeps no registry.
	_, ok := c.Allocator().(alloc.Walker)
	require.False(t, ok)
}

func TestContext_TimestampAdvances(t *testing.T) {
	c := New(Options{})
	t0 := c.Timestamp()
	require.GreaterOrEqual(t, t0, 0.0)
	time.Sleep(time.Millisecond)
	require.Greater(t, c.Timestamp(), t0)
}

func TestContext_SetLogger(t *testing.T) {
	c := New(Options{})
	var out strings.Builder
	repl := logger.NewConsole(logger.ConsoleOptions{
		Out:   &out,
		Err:   &out,
		Level: logger.LevelInfo,
	})

	c.SetLogger(repl)
	require.Same(t, logger.Logger(repl), c.Logger())

	Infof(c, "rerouted")
	require.Contains(t, out.String(), "rerouted")

	// nil is rejected, the previous logger stays active.
	c.SetLogger(nil)
	require.Same(t, logger.Logger(repl), c.Logger())
}

func TestContext_ThreadID(t *testing.T) {
	c := New(Options{})
	require.NotZero(t, c.ThreadID())
}
