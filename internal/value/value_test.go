package value

import (
	"errors"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rng(start, end int) hcl.Range {
	return hcl.Range{
		Filename: "test.hcl",
		Start:    hcl.Pos{Line: 1, Column: start + 1, Byte: start},
		End:      hcl.Pos{Line: 1, Column: end + 1, Byte: end},
	}
}

func record(kv ...any) Value {
	rec := NewRecord()
	for i := 0; i < len(kv); i += 2 {
		rec.Set(kv[i].(string), kv[i+1].(Value))
	}
	return RecordOf(rec, hcl.Range{})
}

func TestValue_TypeName(t *testing.T) {
	none := hcl.Range{}
	testCases := []struct {
		name     string
		val      Value
		expected string
	}{
		{"nothing", Value{}, "nothing"},
		{"int", Int(1, none), "int"},
		{"float", Float(1.5, none), "float"},
		{"duration", Duration(5, none), "duration"},
		{"error", Error(errors.New("x"), none), "error"},
		{"empty list", List(nil, none), "list<any>"},
		{"uniform list", List([]Value{Int(1, none), Int(2, none)}, none), "list<int>"},
		{"mixed list", List([]Value{Int(1, none), String("a", none)}, none), "list<any>"},
		{"record", record("a", Int(1, none), "b", String("x", none)), "record<a: int, b: string>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.val.TypeName())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	assert.True(t, Int(1, rng(0, 1)).Equal(Int(1, rng(5, 6))), "spans are ignored")
	assert.False(t, Int(1, hcl.Range{}).Equal(Duration(1, hcl.Range{})))
	assert.True(t, Error(errors.New("boom"), hcl.Range{}).Equal(Error(errors.New("boom"), rng(0, 1))))
	assert.False(t, Error(errors.New("boom"), hcl.Range{}).Equal(Error(errors.New("bang"), hcl.Range{})))

	a := record("x", Int(1, hcl.Range{}), "y", Int(2, hcl.Range{}))
	b := record("y", Int(2, hcl.Range{}), "x", Int(1, hcl.Range{}))
	assert.False(t, a.Equal(b), "column order matters")
	assert.True(t, a.Equal(record("x", Int(1, hcl.Range{}), "y", Int(2, hcl.Range{}))))
}

func TestValue_String(t *testing.T) {
	none := hcl.Range{}
	v := List([]Value{
		Duration(420_000_000_000, none),
		record("a", Bool(true, none), "b", Float(0.5, none)),
		Nothing(none),
		Error(errors.New("bad"), none),
	}, none)
	assert.Equal(t, "[7min, {a: true, b: 0.5}, nothing, error: bad]", v.String())
}

func TestValue_Accessors(t *testing.T) {
	span := rng(2, 4)
	v := String("7min", span)

	s, ok := v.AsString()
	require.True(t, ok)
	assert.Equal(t, "7min", s)
	assert.Equal(t, span, v.Span())

	_, ok = v.AsDuration()
	assert.False(t, ok)

	moved := v.WithSpan(rng(9, 10))
	assert.Equal(t, rng(9, 10), moved.Span())
	assert.Equal(t, span, v.Span(), "WithSpan must not modify the receiver")

	cause := errors.New("x")
	err, ok := Error(cause, span).AsError()
	require.True(t, ok)
	assert.Same(t, cause, err)
}

func TestRecord(t *testing.T) {
	rec := NewRecord()
	rec.Set("b", Int(1, hcl.Range{}))
	rec.Set("a", Int(2, hcl.Range{}))
	rec.Set("b", Int(3, hcl.Range{}))

	assert.Equal(t, []string{"b", "a"}, rec.Columns())
	got, ok := rec.Get("b")
	require.True(t, ok)
	assert.True(t, got.Equal(Int(3, hcl.Range{})))

	clone := rec.Clone()
	clone.Set("c", Int(4, hcl.Range{}))
	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, 3, clone.Len())
}

func TestValue_Errors(t *testing.T) {
	none := hcl.Range{}
	v := List([]Value{
		Int(1, none),
		Error(errors.New("first"), none),
		record("a", Error(errors.New("second"), none)),
	}, none)

	var msgs []string
	for e := range v.Errors() {
		err, _ := e.AsError()
		msgs = append(msgs, err.Error())
	}
	assert.Equal(t, []string{"first", "second"}, msgs)
	assert.True(t, v.HasErrors())
	assert.False(t, Int(1, none).HasErrors())
}
