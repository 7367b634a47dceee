package duration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
)

var (
	// ErrMalformedToken reports a token that is not `<integer><unit>`.
	ErrMalformedToken = errors.New("malformed duration token")
	// ErrOverflow reports a value outside the int64 nanosecond range.
	ErrOverflow = errors.New("duration overflows int64 nanoseconds")
)

// ParseError describes why a duration token could not be parsed.
type ParseError struct {
	Text  string    // the offending token
	Range hcl.Range // where Text sits in the source
	Units []string  // accepted unit suffixes
	Err   error     // wraps ErrMalformedToken or ErrOverflow
}

func newParseError(text string, rng hcl.Range, err error) *ParseError {
	return &ParseError{
		Text:  text,
		Range: rng,
		Units: Suffixes(),
		Err:   err,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid duration %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Diagnostics renders the error as an HCL diagnostic anchored at the token.
func (e *ParseError) Diagnostics() hcl.Diagnostics {
	summary := "Invalid duration"
	if errors.Is(e.Err, ErrOverflow) {
		summary = "Duration out of range"
	}
	d := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   fmt.Sprintf("%v. Accepted units: %s.", e.Err, strings.Join(e.Units, ", ")),
	}
	if e.Range.Filename != "" {
		d.Subject = e.Range.Ptr()
	}
	return hcl.Diagnostics{d}
}
