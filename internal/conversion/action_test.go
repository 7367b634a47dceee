package conversion

import (
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/durconv/internal/duration"
	"github.com/vk/durconv/internal/value"
)

// at returns a single-line range on in.hcl covering [start, end).
func at(start, end int) hcl.Range {
	return hcl.Range{
		Filename: "in.hcl",
		Start:    hcl.Pos{Line: 1, Column: start + 1, Byte: start},
		End:      hcl.Pos{Line: 1, Column: end + 1, Byte: end},
	}
}

func TestToDuration_String(t *testing.T) {
	target := at(0, 20)
	testCases := []struct {
		text     string
		expected int64
	}{
		{"7min", 420_000_000_000},
		{"1day 2hr 3min 4sec", ((((24+2)*60)+3)*60 + 4) * 1_000_000_000},
		{"3wk", 3 * 7 * 24 * 3600 * 1_000_000_000},
		{"4us", 4000},
		{"4µs", 4000},
		{"4μs", 4000},
		{"", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			got := ToDuration(value.String(tc.text, at(1, 1+len(tc.text))), target)
			ns, ok := got.AsDuration()
			require.True(t, ok, "expected a duration, got %s", got)
			assert.Equal(t, tc.expected, ns)
			assert.Equal(t, target, got.Span(), "result is anchored to the target span")
		})
	}
}

func TestToDuration_Passthrough(t *testing.T) {
	d := value.Duration(5, at(0, 3))
	assert.Equal(t, d, ToDuration(d, at(9, 10)))

	cause := errors.New("upstream failure")
	e := value.Error(cause, at(0, 3))
	got := ToDuration(e, at(9, 10))
	err, ok := got.AsError()
	require.True(t, ok)
	assert.Same(t, cause, err, "existing errors are not re-wrapped")
}

func TestToDuration_Malformed(t *testing.T) {
	// "1sec 5xx" starts at byte 10 of the document.
	src := at(10, 18)
	target := at(0, 30)

	got := ToDuration(value.String("1sec 5xx", src), target)
	require.True(t, got.IsError())
	assert.Equal(t, src, got.Span())

	err, _ := got.AsError()
	assert.ErrorIs(t, err, ErrCantConvert)
	assert.ErrorIs(t, err, duration.ErrMalformedToken)

	var ce *ConvertError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "5xx", ce.Details)
	assert.Equal(t, at(15, 18), ce.SrcSpan)
	assert.Equal(t, target, ce.DstSpan)
	assert.Equal(t, "supported units are ns, us/µs, ms, sec, min, hr, day, and wk", ce.Help)
	assert.Equal(t, `can't convert to duration: "5xx"`, ce.Error())

	diags := ce.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Can't convert to duration", diags[0].Summary)
	assert.Contains(t, diags[0].Detail, ce.Help)
	require.NotNil(t, diags[0].Subject)
	assert.Equal(t, at(15, 18), *diags[0].Subject)
	require.NotNil(t, diags[0].Context)
	assert.Equal(t, target, *diags[0].Context)
}

func TestToDuration_Overflow(t *testing.T) {
	testCases := []string{
		"15251wk",
		"9223372036854775807ns 1ns",
		"99999999999999999999ns",
	}
	for _, text := range testCases {
		t.Run(text, func(t *testing.T) {
			got := ToDuration(value.String(text, at(0, len(text))), at(0, len(text)))
			err, ok := got.AsError()
			require.True(t, ok)
			assert.ErrorIs(t, err, ErrCantConvert)
			assert.ErrorIs(t, err, duration.ErrOverflow)
			assert.NotErrorIs(t, err, duration.ErrMalformedToken)
		})
	}
}

func TestToDuration_TypeMismatch(t *testing.T) {
	src := at(4, 6)
	target := at(0, 10)

	testCases := []struct {
		name     string
		input    value.Value
		expected string
	}{
		{"int", value.Int(42, src), "int"},
		{"bool", value.Bool(true, src), "bool"},
		{"nothing", value.Nothing(src), "nothing"},
		{"list", value.List([]value.Value{value.String("1sec", src)}, src), "list<string>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToDuration(tc.input, target)
			err, ok := got.AsError()
			require.True(t, ok)
			assert.ErrorIs(t, err, ErrTypeMismatch)

			var tm *TypeMismatchError
			require.ErrorAs(t, err, &tm)
			assert.Equal(t, "string or duration", tm.Expected)
			assert.Equal(t, tc.expected, tm.Actual)
			assert.Equal(t, src, tm.SrcSpan)
			assert.Equal(t, target, tm.DstSpan)
		})
	}
}

func TestDiagnostics_NoFilename(t *testing.T) {
	e := &TypeMismatchError{Expected: acceptedTypes, Actual: "int"}
	diags := e.Diagnostics()
	require.Len(t, diags, 1)
	assert.Nil(t, diags[0].Subject)
	assert.Nil(t, diags[0].Context)
}

func TestToDuration_SpanNotMatchingText(t *testing.T) {
	// `"1sec\t5xx"` in the source is 11 bytes for a 9 byte value, so token
	// offsets cannot be mapped back and the whole literal is reported.
	literal := at(4, 15)

	got := ToDuration(value.String("1sec\t5xx", literal), at(0, 15))
	err, ok := got.AsError()
	require.True(t, ok)

	var ce *ConvertError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "5xx", ce.Details)
	assert.Equal(t, literal, ce.SrcSpan)
}
