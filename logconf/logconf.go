package logconf

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Config is a logging configuration section with sensible defaults.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `config:"level" validate:"omitempty,oneof=debug info warn error"`
	// Format is text or json.
	Format string `config:"format" validate:"omitempty,oneof=text json"`
	// Output is stderr or stdout.
	Output string `config:"output" validate:"omitempty,oneof=stderr stdout"`
}

// Default returns the configuration used when nothing overrides it:
// info-level text logs on stderr.
func Default() Config {
	return Config{Level: "info", Format: "text", Output: "stderr"}
}

// Handler builds a slog handler writing to w according to the config.
// Zero-valued fields fall back to their defaults.
func (c Config) Handler(w io.Writer) (slog.Handler, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return tint.NewHandler(w, &tint.Options{Level: level}), nil
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
}

// Apply installs the configured handler as the slog default.
func (c Config) Apply() error {
	w, err := c.writer()
	if err != nil {
		return err
	}
	h, err := c.Handler(w)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(h))
	return nil
}

func (c Config) writer() (io.Writer, error) {
	switch strings.ToLower(c.Output) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return nil, fmt.Errorf("unknown log output %q", c.Output)
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
