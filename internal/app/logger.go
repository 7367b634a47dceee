package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// parseLevel maps a level name to a slog.Level. The empty string is warn.
func parseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", levelStr)
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, err := parseLevel(levelStr)
	if err != nil {
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
