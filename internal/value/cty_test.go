package value

import (
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestFromCty(t *testing.T) {
	span := rng(0, 3)
	testCases := []struct {
		name     string
		input    cty.Value
		expected Value
	}{
		{"string", cty.StringVal("7min"), String("7min", span)},
		{"bool", cty.True, Bool(true, span)},
		{"whole number", cty.NumberIntVal(42), Int(42, span)},
		{"fraction", cty.NumberFloatVal(1.5), Float(1.5, span)},
		{"null", cty.NullVal(cty.String), Nothing(span)},
		{"unknown", cty.UnknownVal(cty.String), Nothing(span)},
		{"tuple", cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1)}), List([]Value{String("a", span), Int(1, span)}, span)},
		{"object", cty.ObjectVal(map[string]cty.Value{"b": cty.True, "a": cty.False}), record("a", Bool(false, span), "b", Bool(true, span))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromCty(tc.input, span)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
			assert.Equal(t, span, got.Span())
		})
	}
}

func TestValue_ToCty(t *testing.T) {
	none := hcl.Range{}
	testCases := []struct {
		name     string
		input    Value
		expected cty.Value
	}{
		{"duration is nanoseconds", Duration(1500, none), cty.NumberIntVal(1500)},
		{"nothing", Nothing(none), cty.NullVal(cty.String)},
		{"error", Error(errors.New("bad"), none), cty.ObjectVal(map[string]cty.Value{"error": cty.StringVal("bad")})},
		{"empty list", List(nil, none), cty.EmptyTupleVal},
		{"record", record("a", String("x", none)), cty.ObjectVal(map[string]cty.Value{"a": cty.StringVal("x")})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.input.ToCty()
			assert.True(t, tc.expected.RawEquals(got), "expected %#v, got %#v", tc.expected, got)
		})
	}
}
