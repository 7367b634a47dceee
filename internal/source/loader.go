package source

import (
	"context"
	"fmt"
	"maps"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/ctxlog"
	"github.com/vk/durconv/internal/pipeline"
)

// Loader parses input documents and keeps their bytes around for
// diagnostics.
type Loader struct {
	files map[string]*hcl.File
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{files: make(map[string]*hcl.File)}
}

// Load parses src, named filename, according to format. Parse problems are
// returned as diagnostics; values that merely fail conversion later are not
// the loader's concern.
func (l *Loader) Load(ctx context.Context, filename string, src []byte, format Format) (pipeline.Data, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading input.", "filename", filename, "format", format, "bytes", len(src))

	file := &hcl.File{Bytes: src}
	l.files[filename] = file

	var (
		data  pipeline.Data
		diags hcl.Diagnostics
	)
	switch format {
	case FormatHCL:
		data, file.Body, diags = loadHCL(filename, src)
	case FormatJSON:
		data, diags = loadJSON(filename, src)
	case FormatYAML:
		data, diags = loadYAML(filename, src)
	case FormatLines:
		data = loadLines(filename, src)
	default:
		return pipeline.Data{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported input format",
			Detail:   fmt.Sprintf("The input format %q is not supported.", format),
		}}
	}

	if diags.HasErrors() {
		logger.Debug("Input failed to parse.", "filename", filename, "diagnostics", len(diags))
		return pipeline.Data{}, diags
	}
	logger.Debug("Input loaded.", "filename", filename, "stream", data.IsStream())
	return data, diags
}

// Files returns every buffer loaded so far, keyed by filename, in the shape
// expected by hcl.NewDiagnosticTextWriter.
func (l *Loader) Files() map[string]*hcl.File {
	return maps.Clone(l.files)
}

// wholeRange covers all of src.
func wholeRange(filename string, src []byte) hcl.Range {
	end := hcl.Pos{Line: 1, Column: 1, Byte: len(src)}
	lineStart := 0
	for i, b := range src {
		if b == '\n' {
			end.Line++
			lineStart = i + 1
		}
	}
	end.Column = 1 + utf8.RuneCount(src[lineStart:])
	return hcl.Range{Filename: filename, Start: hcl.InitialPos, End: end}
}
