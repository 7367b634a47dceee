package render

import (
	"errors"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/value"
)

// diagnoser is implemented by errors that know how to describe themselves
// as HCL diagnostics.
type diagnoser interface {
	Diagnostics() hcl.Diagnostics
}

// Diagnostics collects a diagnostic for every error value nested in vals.
func Diagnostics(vals []value.Value) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, v := range vals {
		for ev := range v.Errors() {
			diags = append(diags, errorDiagnostics(ev)...)
		}
	}
	return diags
}

func errorDiagnostics(ev value.Value) hcl.Diagnostics {
	err, _ := ev.AsError()
	var d diagnoser
	if errors.As(err, &d) {
		return d.Diagnostics()
	}

	diag := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Conversion failed",
		Detail:   "error",
	}
	if err != nil {
		diag.Detail = err.Error()
	}
	if rng := ev.Span(); rng.Filename != "" {
		diag.Subject = rng.Ptr()
	}
	return hcl.Diagnostics{diag}
}

// WriteDiagnostics prints diags with the offending source lines quoted from
// files. width wraps long details; zero disables wrapping.
func WriteDiagnostics(w io.Writer, files map[string]*hcl.File, diags hcl.Diagnostics, width uint, color bool) error {
	if len(diags) == 0 {
		return nil
	}
	return hcl.NewDiagnosticTextWriter(w, files, width, color).WriteDiagnostics(diags)
}
