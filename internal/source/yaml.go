package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/pipeline"
	"github.com/vk/durconv/internal/value"
	yaml "go.yaml.in/yaml/v3"
)

// loadYAML decodes every document in src. A single document becomes a
// single value, several documents become a stream.
func loadYAML(filename string, src []byte) (pipeline.Data, hcl.Diagnostics) {
	idx := newLineIndex(filename, src)
	dec := yaml.NewDecoder(bytes.NewReader(src))

	var docs []value.Value
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return pipeline.Data{}, hcl.Diagnostics{idx.errorDiagnostic(err)}
		}
		v, diags := idx.nodeValue(&node, 0)
		if diags.HasErrors() {
			return pipeline.Data{}, diags
		}
		docs = append(docs, v)
	}

	if len(docs) == 1 {
		return pipeline.FromValue(docs[0]), nil
	}
	return pipeline.FromValues(docs, wholeRange(filename, src)), nil
}

// maxYAMLDepth bounds alias expansion.
const maxYAMLDepth = 512

// lineIndex maps yaml line/column positions back to byte offsets.
type lineIndex struct {
	filename string
	src      []byte
	starts   []int
}

func newLineIndex(filename string, src []byte) *lineIndex {
	starts := []int{0}
	for i, b := range src {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{filename: filename, src: src, starts: starts}
}

// pos converts a 1-based line and rune column.
func (x *lineIndex) pos(line, column int) hcl.Pos {
	if line < 1 || line > len(x.starts) {
		return hcl.Pos{Line: line, Column: column}
	}
	off := x.starts[line-1]
	for c := 1; c < column && off < len(x.src) && x.src[off] != '\n'; c++ {
		_, w := utf8.DecodeRune(x.src[off:])
		off += w
	}
	return hcl.Pos{Line: line, Column: column, Byte: off}
}

// lineEnd returns the byte offset of the end of the line containing off.
func (x *lineIndex) lineEnd(off int) int {
	if i := bytes.IndexByte(x.src[off:], '\n'); i >= 0 {
		end := off + i
		if end > off && x.src[end-1] == '\r' {
			end--
		}
		return end
	}
	return len(x.src)
}

// nodeRange covers the node's text on its first line. Quoted scalars
// exclude their quotes.
func (x *lineIndex) nodeRange(n *yaml.Node) hcl.Range {
	start := x.pos(n.Line, n.Column)
	if start.Byte > len(x.src) {
		return hcl.Range{Filename: x.filename, Start: start, End: start}
	}
	if n.Kind != yaml.ScalarNode {
		return hcl.Range{Filename: x.filename, Start: start, End: start}
	}

	literal := start
	length := len(n.Value)
	switch n.Style {
	case yaml.DoubleQuotedStyle, yaml.SingleQuotedStyle:
		start.Byte++
		start.Column++
	case yaml.LiteralStyle, yaml.FoldedStyle:
		length = len(x.src)
	}

	lineEnd := x.lineEnd(literal.Byte)
	endByte := max(start.Byte, min(start.Byte+length, lineEnd))
	if string(x.src[start.Byte:endByte]) != n.Value {
		// Escapes, folding or block scalars: fall back to the literal as it
		// appears on its first line.
		start, endByte = literal, x.literalEnd(n, literal.Byte, lineEnd)
	}
	end := start
	end.Byte = endByte
	end.Column += utf8.RuneCount(x.src[start.Byte:endByte])
	return hcl.Range{Filename: x.filename, Start: start, End: end}
}

// literalEnd returns the offset just past the closing quote of a quoted
// scalar starting at off, or lineEnd when the quote is not on the line.
func (x *lineIndex) literalEnd(n *yaml.Node, off, lineEnd int) int {
	var quote byte
	switch n.Style {
	case yaml.DoubleQuotedStyle:
		quote = '"'
	case yaml.SingleQuotedStyle:
		quote = '\''
	default:
		return lineEnd
	}
	for i := off + 1; i < lineEnd; i++ {
		switch {
		case quote == '"' && x.src[i] == '\\':
			i++
		case x.src[i] == quote && quote == '\'' && i+1 < lineEnd && x.src[i+1] == '\'':
			i++
		case x.src[i] == quote:
			return i + 1
		}
	}
	return lineEnd
}

func (x *lineIndex) nodeValue(n *yaml.Node, depth int) (value.Value, hcl.Diagnostics) {
	rng := x.nodeRange(n)
	if depth > maxYAMLDepth {
		return value.Value{}, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "YAML nesting too deep",
			Detail:   fmt.Sprintf("The document nests deeper than %d levels.", maxYAMLDepth),
			Subject:  rng.Ptr(),
		}}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Nothing(rng), nil
		}
		return x.nodeValue(n.Content[0], depth+1)

	case yaml.AliasNode:
		v, diags := x.nodeValue(n.Alias, depth+1)
		return v.WithSpan(rng), diags

	case yaml.SequenceNode:
		elems := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, diags := x.nodeValue(c, depth+1)
			if diags.HasErrors() {
				return value.Value{}, diags
			}
			elems = append(elems, v)
		}
		return value.List(elems, rng), nil

	case yaml.MappingNode:
		rec := value.NewRecord()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				keyRange := x.nodeRange(k)
				return value.Value{}, hcl.Diagnostics{{
					Severity: hcl.DiagError,
					Summary:  "Invalid mapping key",
					Detail:   "Mapping keys must be scalars.",
					Subject:  keyRange.Ptr(),
				}}
			}
			val, diags := x.nodeValue(v, depth+1)
			if diags.HasErrors() {
				return value.Value{}, diags
			}
			rec.Set(k.Value, val)
		}
		return value.RecordOf(rec, rng), nil

	case yaml.ScalarNode:
		return scalarValue(n, rng), nil
	}

	return value.Nothing(rng), nil
}

func scalarValue(n *yaml.Node, rng hcl.Range) value.Value {
	switch n.ShortTag() {
	case "!!null":
		return value.Nothing(rng)
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return value.Bool(b, rng)
		}
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return value.Int(i, rng)
		}
		var f float64
		if err := n.Decode(&f); err == nil {
			return value.Float(f, rng)
		}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return value.Float(f, rng)
		}
	}
	return value.String(n.Value, rng)
}

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// errorDiagnostic converts a decoder error, pointing at the reported line
// when the message carries one.
func (x *lineIndex) errorDiagnostic(err error) *hcl.Diagnostic {
	d := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid YAML",
		Detail:   err.Error(),
	}
	if m := yamlLineRegex.FindStringSubmatch(err.Error()); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil && line >= 1 && line <= len(x.starts) {
			start := x.pos(line, 1)
			end := start
			end.Byte = x.lineEnd(start.Byte)
			end.Column += utf8.RuneCount(x.src[start.Byte:end.Byte])
			d.Subject = &hcl.Range{Filename: x.filename, Start: start, End: end}
		}
	}
	return d
}
