package conversion

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

var (
	// ErrCantConvert is wrapped by every ConvertError.
	ErrCantConvert = errors.New("can't convert to duration")
	// ErrTypeMismatch is wrapped by every TypeMismatchError.
	ErrTypeMismatch = errors.New("unsupported input type")
)

// ConvertError reports a string that is not a valid duration literal.
type ConvertError struct {
	Details string    // the offending text
	DstSpan hcl.Range // where the result was to be attributed
	SrcSpan hcl.Range // the token that failed to parse
	Help    string
	Err     error // the parse failure
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%v: %q", ErrCantConvert, e.Details)
}

func (e *ConvertError) Unwrap() []error {
	return []error{ErrCantConvert, e.Err}
}

func (e *ConvertError) Diagnostics() hcl.Diagnostics {
	d := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Can't convert to duration",
		Detail:   fmt.Sprintf("Cannot convert %q: %v. Hint: %s.", e.Details, e.Err, e.Help),
	}
	setRanges(d, e.SrcSpan, e.DstSpan)
	return hcl.Diagnostics{d}
}

// TypeMismatchError reports an input whose type the conversion does not
// accept.
type TypeMismatchError struct {
	Expected string
	Actual   string
	DstSpan  hcl.Range
	SrcSpan  hcl.Range
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %s, got %s", ErrTypeMismatch, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Diagnostics() hcl.Diagnostics {
	d := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Unsupported input type",
		Detail:   fmt.Sprintf("Only %s input is supported, but this value is of type %s.", e.Expected, e.Actual),
	}
	setRanges(d, e.SrcSpan, e.DstSpan)
	return hcl.Diagnostics{d}
}

// setRanges points the diagnostic at src and, when it lies in the same file,
// widens the context to dst. Ranges without a file are left out.
func setRanges(d *hcl.Diagnostic, src, dst hcl.Range) {
	if src.Filename == "" {
		return
	}
	subject := src
	d.Subject = &subject
	if dst.Filename == src.Filename && dst != src {
		context := hcl.RangeOver(src, dst)
		d.Context = &context
	}
}
