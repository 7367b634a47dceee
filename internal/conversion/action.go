// Package conversion turns values into durations. ToDuration converts a
// single value; IntoDuration applies it across pipeline data, optionally at
// a set of cell paths.
package conversion

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/duration"
	"github.com/vk/durconv/internal/value"
)

// acceptedTypes is reported when an input has an unsupported type.
const acceptedTypes = "string or duration"

// ToDuration converts v into a duration value attributed to target. It never
// fails: problems are returned as error values. Durations and error values
// pass through unchanged.
func ToDuration(v value.Value, target hcl.Range) value.Value {
	switch v.Kind() {
	case value.KindDuration, value.KindError:
		return v
	case value.KindString:
		s, _ := v.AsString()
		ns, err := duration.Parse(s, v.Span())
		if err != nil {
			return value.Error(newConvertError(s, v.Span(), target, err), v.Span())
		}
		return value.Duration(ns, target)
	default:
		return value.Error(&TypeMismatchError{
			Expected: acceptedTypes,
			Actual:   v.TypeName(),
			DstSpan:  target,
			SrcSpan:  v.Span(),
		}, v.Span())
	}
}

func newConvertError(text string, whole, target hcl.Range, err error) *ConvertError {
	ce := &ConvertError{
		Details: text,
		DstSpan: target,
		SrcSpan: whole,
		Help:    duration.Help,
		Err:     err,
	}
	var pe *duration.ParseError
	if errors.As(err, &pe) {
		ce.Details = pe.Text
		// Token ranges are offsets into text; they only point at the source
		// when whole covers text byte for byte.
		if whole.End.Byte-whole.Start.Byte == len(text) {
			ce.SrcSpan = pe.Range
		}
	}
	return ce
}
