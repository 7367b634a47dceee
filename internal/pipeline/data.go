// Package pipeline carries values between the stages of a conversion run.
// Data is either a single value or a lazy stream of values; stages map over
// it element by element and never materialize a stream unless asked to.
package pipeline

import (
	"context"
	"iter"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/ctxlog"
	"github.com/vk/durconv/internal/value"
)

// Data is the input or output of a pipeline stage.
type Data struct {
	single value.Value
	stream iter.Seq[value.Value]
	span   hcl.Range
}

// FromValue wraps a single value. The span of the data is the span of v.
func FromValue(v value.Value) Data {
	return Data{single: v, span: v.Span()}
}

// FromStream wraps a lazy sequence of values. span covers the whole input and
// may be empty.
func FromStream(seq iter.Seq[value.Value], span hcl.Range) Data {
	return Data{stream: seq, span: span}
}

// FromValues wraps a fixed slice as a stream.
func FromValues(vals []value.Value, span hcl.Range) Data {
	return FromStream(slices.Values(vals), span)
}

func (d Data) IsStream() bool {
	return d.stream != nil
}

// Span returns the span of the whole input, if it has one.
func (d Data) Span() (hcl.Range, bool) {
	return d.span, d.span != hcl.Range{}
}

// Value returns the wrapped value of a single-value Data.
func (d Data) Value() (value.Value, bool) {
	return d.single, d.stream == nil
}

// All yields the elements of d. A single list value yields its elements, any
// other single value yields itself.
func (d Data) All() iter.Seq[value.Value] {
	if d.stream != nil {
		return d.stream
	}
	if elems, ok := d.single.AsList(); ok {
		return slices.Values(elems)
	}
	return func(yield func(value.Value) bool) {
		yield(d.single)
	}
}

// Map applies fn to every element of d and returns the result lazily. A
// single list value is walked element-wise and the result is a stream. A
// single non-list value is mapped once and stays single.
//
// ctx is polled before every element; once it is done no further element is
// produced. A single value that finds ctx already done becomes an error value
// carrying ctx.Err().
func (d Data) Map(ctx context.Context, fn func(value.Value) value.Value) Data {
	if d.stream == nil {
		if _, ok := d.single.AsList(); !ok {
			if err := ctx.Err(); err != nil {
				return FromValue(value.Error(err, d.single.Span()))
			}
			return FromValue(fn(d.single))
		}
	}

	src := d.All()
	logger := ctxlog.FromContext(ctx)
	return FromStream(func(yield func(value.Value) bool) {
		n := 0
		for v := range src {
			if err := ctx.Err(); err != nil {
				logger.Debug("Stopping stream on cancellation.", "produced", n, "error", err)
				return
			}
			if !yield(fn(v)) {
				return
			}
			n++
		}
	}, d.span)
}

// Collect materializes d into a single value. Streams become a list spanning
// the whole input. When ctx is done before the stream is drained, the
// elements gathered so far are returned together with ctx.Err().
func (d Data) Collect(ctx context.Context) (value.Value, error) {
	if d.stream == nil {
		return d.single, nil
	}
	var out []value.Value
	for v := range d.stream {
		out = append(out, v)
	}
	return value.List(out, d.span), ctx.Err()
}
