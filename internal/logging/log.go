// Package logging builds the process-wide structured logger.
//
// Components never reach for a global logger; they receive a *slog.Logger from
// the composition root. Tests use Discard().
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sufield/remote-access/internal/config"
)

// ParseLevel maps a configured level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New returns a logger writing to w in the configured format.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return slog.New(h).With("service", "remote-access"), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Printf adapts a slog.Logger to printf-style logger interfaces, such as the
// one the CORS middleware expects. Messages are logged at debug level.
type Printf struct {
	Logger *slog.Logger
	Msg    string
}

func (p Printf) Printf(format string, args ...any) {
	if p.Logger == nil {
		return
	}
	msg := p.Msg
	if msg == "" {
		msg = "debug"
	}
	p.Logger.Debug(msg, "detail", strings.TrimSpace(fmt.Sprintf(format, args...)))
}
