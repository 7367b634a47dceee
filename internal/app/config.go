package app

import (
	"errors"
	"fmt"

	"github.com/vk/durconv/internal/cellpath"
	"github.com/vk/durconv/internal/render"
	"github.com/vk/durconv/internal/source"
)

// StdinPath selects standard input as the input document.
const StdinPath = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath    string // file path, or StdinPath
	InputFormat  string // empty infers the format from InputPath
	OutputFormat string
	CellPaths    []string

	LogFormat   string
	LogLevel    string
	FailOnError bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		cfg.InputPath = StdinPath
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = string(render.FormatText)
	}

	var errs []error
	if cfg.InputFormat != "" {
		if _, err := source.ParseFormat(cfg.InputFormat); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := render.ParseFormat(cfg.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat))
	}
	for _, raw := range cfg.CellPaths {
		if _, err := cellpath.Parse(raw); err != nil {
			errs = append(errs, fmt.Errorf("invalid cell path: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// inputFormat resolves the configured or inferred input format.
func (c *Config) inputFormat() source.Format {
	if c.InputFormat != "" {
		return source.Format(c.InputFormat)
	}
	return source.FormatForFilename(c.InputPath)
}
