package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/diagkit/diag/logger"
)

func consoleContext(level logger.Level) (*Context, *strings.Builder, *strings.Builder) {
	var out, errw strings.Builder
	l := logger.NewConsole(logger.ConsoleOptions{Out: &out, Err: &errw, Level: level})
	return New(Options{Logger: l}), &out, &errw
}

func TestLog_Wrappers(t *testing.T) {
	c, out, errw := consoleContext(logger.LevelTrace)

	Errorf(c, "e=%d", 1)
	Warnf(c, "w=%d", 2)
	Infof(c, "i=%d", 3)

	require.Contains(t, errw.String(), "error [TestLog_Wrappers] e=1")
	require.Contains(t, errw.String(), "warning [TestLog_Wrappers] w=2")
	require.Contains(t, out.String(), "info [TestLog_Wrappers] i=3")
}

func TestLog_TraceMarksCallSite(t *testing.T) {
	c, out, _ := consoleContext(logger.LevelTrace)

	Trace(c)

	require.Contains(t, out.String(), "trace [TestLog_TraceMarksCallSite]")
}

func TestLog_LevelRoundTrip(t *testing.T) {
	c, out, _ := consoleContext(logger.LevelNone)

	Infof(c, "muted")
	require.Empty(t, out.String())

	SetLogLevel(c, logger.LevelInfo)
	require.Equal(t, logger.LevelInfo, LogLevel(c))

	Infof(c, "audible")
	Debugf(c, "still muted")
	require.Contains(t, out.String(), "audible")
	require.NotContains(t, out.String(), "still muted")
}

func TestCaller_Site(t *testing.T) {
	site := Caller(0)
	require.Equal(t, "log_test.go", site.File)
	require.Equal(t, "TestCaller_Site", site.Func)
	require.NotZero(t, site.Line)
}
