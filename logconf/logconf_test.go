package logconf_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strataconf/strata/logconf"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, logconf.Config{Level: "info", Format: "text", Output: "stderr"}, logconf.Default())
}

func TestConfig_Handler(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logconf.Config
		enabled slog.Level
		muted   slog.Level
	}{
		{name: "defaults from zero value", cfg: logconf.Config{}, enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{name: "debug text", cfg: logconf.Config{Level: "debug", Format: "text"}, enabled: slog.LevelDebug, muted: slog.LevelDebug - 4},
		{name: "warn json", cfg: logconf.Config{Level: "warn", Format: "json"}, enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{name: "error level", cfg: logconf.Config{Level: "error"}, enabled: slog.LevelError, muted: slog.LevelWarn},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			h, err := tc.cfg.Handler(&buf)
			require.NoError(t, err)

			ctx := context.Background()
			assert.True(t, h.Enabled(ctx, tc.enabled))
			assert.False(t, h.Enabled(ctx, tc.muted))
		})
	}
}

func TestConfig_HandlerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	h, err := logconf.Config{Format: "json"}.Handler(&buf)
	require.NoError(t, err)

	slog.New(h).Info("hello", "key", "value")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
	assert.Contains(t, buf.String(), `"key":"value"`)
}

func TestConfig_HandlerInvalid(t *testing.T) {
	var buf bytes.Buffer

	_, err := logconf.Config{Level: "loud"}.Handler(&buf)
	assert.ErrorContains(t, err, "unknown log level")

	_, err = logconf.Config{Format: "xml"}.Handler(&buf)
	assert.ErrorContains(t, err, "unknown log format")
}

func TestConfig_InvalidOutput(t *testing.T) {
	err := logconf.Config{Output: "syslog"}.Apply()
	assert.ErrorContains(t, err, "unknown log output")
}
