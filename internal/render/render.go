// Package render writes converted values and their diagnostics.
package render

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/durconv/internal/value"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Formats lists every supported output format.
var Formats = []Format{FormatText, FormatJSON, FormatHCL}

// ParseFormat validates a user-supplied output format name.
func ParseFormat(s string) (Format, error) {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		if string(f) == s {
			return f, nil
		}
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown output format %q, expected one of: %s", s, strings.Join(names, ", "))
}

// Write renders every value of vals on its own line. Text output uses the
// human form of each value; json and hcl output encode durations as integer
// nanoseconds and errors as objects with an error attribute.
func Write(w io.Writer, vals iter.Seq[value.Value], format Format) error {
	encode, err := encoder(format)
	if err != nil {
		return err
	}
	for v := range vals {
		b, err := encode(v)
		if err != nil {
			return fmt.Errorf("failed to render %s value: %w", v.TypeName(), err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

func encoder(format Format) (func(value.Value) ([]byte, error), error) {
	switch format {
	case FormatText:
		return func(v value.Value) ([]byte, error) {
			return []byte(v.String()), nil
		}, nil
	case FormatJSON:
		return func(v value.Value) ([]byte, error) {
			cv := v.ToCty()
			return ctyjson.Marshal(cv, cv.Type())
		}, nil
	case FormatHCL:
		return func(v value.Value) ([]byte, error) {
			return hclwrite.Format(hclwrite.TokensForValue(v.ToCty()).Bytes()), nil
		}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}
