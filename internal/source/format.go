// Package source loads documents into pipeline data. Every loaded value
// carries the exact range it occupies in its source, so conversion errors
// can quote the offending text.
package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an input document format.
type Format string

const (
	FormatHCL   Format = "hcl"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatLines Format = "lines"
)

// Formats lists every supported input format.
var Formats = []Format{FormatHCL, FormatJSON, FormatYAML, FormatLines}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown input format %q, expected one of: %s", s, strings.Join(names, ", "))
}

// FormatForFilename picks a format from the file extension, falling back to
// plain lines.
func FormatForFilename(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".hcl":
		return FormatHCL
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatLines
	}
}
