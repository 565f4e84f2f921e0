// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats accepted by --log-format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects the diagnostic stream. Findings never go through it.
type Config struct {
	Format  string // text | json
	Quiet   bool   // errors only
	Verbose bool   // debug and up; loses to Quiet
}

// Level is the minimum level for cfg: warn by default.
func (c Config) Level() slog.Level {
	switch {
	case c.Quiet:
		return slog.LevelError
	case c.Verbose:
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// ParseFormat validates a --log-format value.
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("invalid log format %q (want text | json)", s)
}

// New returns a logger writing to w (normally stderr).
func New(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
