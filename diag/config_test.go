package diag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/diagkit/diag/alloc"
	"github.com/joshuapare/diagkit/diag/logger"
)

func TestParseConfig_FullDocument(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
allocator:
  backend: tracking
logger:
  backend: buffered
  level: debug
  bufferSize: 512
  prefix: usbcore
`))
	require.NoError(t, err)
	require.Equal(t, "tracking", cfg.Allocator.Backend)
	require.Equal(t, "buffered", cfg.Logger.Backend)
	require.Equal(t, "debug", cfg.Logger.Level)
	require.Equal(t, 512, cfg.Logger.BufferSize)
	require.Equal(t, "usbcore", cfg.Logger.Prefix)

	c, err := cfg.Build()
	require.NoError(t, err)
	_, ok := c.Allocator().(*alloc.Tracking)
	require.True(t, ok)
	require.Equal(t, logger.LevelDebug, c.Logger().Level())
}

func TestParseConfig_EmptyIsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(""))
	require.NoError(t, err)

	c, err := cfg.Build()
	require.NoError(t, err)
	_, ok := c.Allocator().(*alloc.Passthrough)
	require.True(t, ok)
	require.Equal(t, logger.LevelNone, c.Logger().Level())
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := ParseConfig([]byte("allocator: ["))
	require.Error(t, err)
}

func TestBuild_UnknownBackends(t *testing.T) {
	_, err := Config{Allocator: AllocatorConfig{Backend: "arena"}}.Build()
	require.ErrorContains(t, err, "arena")

	_, err = Config{Logger: LoggerConfig{Backend: "syslog"}}.Build()
	require.ErrorContains(t, err, "syslog")
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]logger.Level{
		"":        logger.LevelNone,
		"none":    logger.LevelNone,
		"error":   logger.LevelError,
		"WARN":    logger.LevelWarning,
		"warning": logger.LevelWarning,
		"info":    logger.LevelInfo,
		"debug":   logger.LevelDebug,
		"trace":   logger.LevelTrace,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}
