package conversion

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/durconv/internal/cellpath"
	"github.com/vk/durconv/internal/pipeline"
	"github.com/vk/durconv/internal/value"
)

func TestIntoDuration_MixedSequence(t *testing.T) {
	inputs := []string{"1sec", "bogus", "2min", "1.5hr", "3day"}
	vals := make([]value.Value, len(inputs))
	for i, s := range inputs {
		vals[i] = value.String(s, at(i*10, i*10+len(s)))
	}

	out := IntoDuration(context.Background(), pipeline.FromValues(vals, hcl.Range{}), at(0, 4))
	got, err := out.Collect(context.Background())
	require.NoError(t, err)

	elems, _ := got.AsList()
	require.Len(t, elems, len(inputs), "no element is dropped")
	for i, isErr := range []bool{false, true, false, true, false} {
		assert.Equal(t, isErr, elems[i].IsError(), "element %d (%q)", i, inputs[i])
	}
	ns, _ := elems[2].AsDuration()
	assert.Equal(t, int64(120_000_000_000), ns)
}

func TestIntoDuration_CellPaths(t *testing.T) {
	rec := value.NewRecord()
	rec.Set("name", value.String("web", at(0, 3)))
	rec.Set("timeout", value.String("30sec", at(5, 10)))
	input := pipeline.FromValue(value.List([]value.Value{value.RecordOf(rec, at(0, 12))}, at(0, 14)))

	timeout, err := cellpath.Parse("timeout")
	require.NoError(t, err)

	got, err := IntoDuration(context.Background(), input, hcl.Range{}, timeout).Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "[{name: web, timeout: 30sec}]", got.String())

	elems, _ := got.AsList()
	r, _ := elems[0].AsRecord()
	converted, _ := r.Get("timeout")
	assert.Equal(t, value.KindDuration, converted.Kind())
	name, _ := r.Get("name")
	assert.Equal(t, value.KindString, name.Kind(), "untargeted columns are untouched")
}

func TestIntoDuration_MissingPath(t *testing.T) {
	input := pipeline.FromValue(value.String("1sec", at(0, 4)))
	p, err := cellpath.Parse("timeout")
	require.NoError(t, err)

	got, ok := IntoDuration(context.Background(), input, hcl.Range{}, p).Value()
	require.True(t, ok)
	pathErr, isErr := got.AsError()
	require.True(t, isErr)
	assert.ErrorIs(t, pathErr, value.ErrPathResolution)
}
