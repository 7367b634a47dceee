package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/cellpath"
	"github.com/vk/durconv/internal/conversion"
	"github.com/vk/durconv/internal/ctxlog"
	"github.com/vk/durconv/internal/render"
	"github.com/vk/durconv/internal/value"
)

var (
	// ErrInvalidInput is returned when the input document cannot be parsed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConversionFailed is returned with FailOnError when any element
	// failed to convert.
	ErrConversionFailed = errors.New("conversion failed")
)

// commandRange attributes results to the invocation when the input carries
// no range of its own.
var commandRange = hcl.Range{Filename: "<command-line>", Start: hcl.InitialPos, End: hcl.InitialPos}

// Run loads the input, converts it and writes the results. Elements that
// fail to convert are rendered in place and reported as diagnostics.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	paths, err := cellpath.ParseAll(a.config.CellPaths)
	if err != nil {
		return fmt.Errorf("invalid cell path: %w", err)
	}
	outFormat, err := render.ParseFormat(a.config.OutputFormat)
	if err != nil {
		return err
	}

	name, src, err := a.readInput(ctx)
	if err != nil {
		return err
	}

	data, diags := a.loader.Load(ctx, name, src, a.config.inputFormat())
	if diags.HasErrors() {
		if err := render.WriteDiagnostics(a.errW, a.loader.Files(), diags, 0, false); err != nil {
			a.logger.Warn("Failed to write diagnostics.", "error", err)
		}
		return fmt.Errorf("%w: %s", ErrInvalidInput, name)
	}

	out := conversion.IntoDuration(ctx, data, commandRange, paths...)

	var failed []value.Value
	count := 0
	results := func(yield func(value.Value) bool) {
		for v := range out.All() {
			count++
			if v.HasErrors() {
				failed = append(failed, v)
			}
			if !yield(v) {
				return
			}
		}
	}
	if err := render.Write(a.outW, results, outFormat); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Debug("Conversion finished.", "elements", count, "failed", len(failed))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("conversion interrupted after %d elements: %w", count, err)
	}

	if len(failed) > 0 {
		diags := render.Diagnostics(failed)
		if err := render.WriteDiagnostics(a.errW, a.loader.Files(), diags, 0, false); err != nil {
			a.logger.Warn("Failed to write diagnostics.", "error", err)
		}
		a.logger.Info("Some elements failed to convert.", "failed", len(failed), "elements", count)
		if a.config.FailOnError {
			return fmt.Errorf("%w: %d of %d elements", ErrConversionFailed, len(failed), count)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
