package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/durconv/internal/ctxlog"
	"github.com/vk/durconv/internal/source"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	stdin  io.Reader
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	loader *source.Loader
}

// NewApp is the constructor for the main application. Converted values are
// written to outW; logs and diagnostics go to errW.
func NewApp(stdin io.Reader, outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		stdin:  stdin,
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
		loader: source.NewLoader(),
	}
}

// Loader returns the application's source loader. This is primarily for testing.
func (a *App) Loader() *source.Loader {
	return a.loader
}

// readInput returns the display name and content of the configured input.
func (a *App) readInput(ctx context.Context) (string, []byte, error) {
	logger := ctxlog.FromContext(ctx)
	path := a.config.InputPath

	if path == StdinPath {
		logger.Debug("Reading input from stdin.")
		src, err := io.ReadAll(a.stdin)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", src, nil
	}

	logger.Debug("Reading input file.", "path", path)
	src, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read input: %w", err)
	}
	return path, src, nil
}
