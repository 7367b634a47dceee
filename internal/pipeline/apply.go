package pipeline

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/cellpath"
	"github.com/vk/durconv/internal/ctxlog"
	"github.com/vk/durconv/internal/value"
)

// Action converts a single value. target is the span the converted value
// should be attributed to.
type Action func(v value.Value, target hcl.Range) value.Value

// Apply runs action over every element of input. Without paths the action
// replaces each element; with paths each path is updated in order and a
// path that cannot be resolved turns the element into an error value.
//
// The target span handed to action is the span of input, or head when
// input has none.
func Apply(ctx context.Context, input Data, head hcl.Range, action Action, paths ...cellpath.Path) Data {
	target, ok := input.Span()
	if !ok {
		target = head
	}
	ctxlog.FromContext(ctx).Debug("Applying action.", "paths", len(paths), "stream", input.IsStream())

	convert := func(old value.Value) value.Value {
		return action(old, target)
	}

	return input.Map(ctx, func(v value.Value) value.Value {
		if len(paths) == 0 {
			return convert(v)
		}
		ret := v
		for _, p := range paths {
			updated, err := ret.UpdateAt(p, convert)
			if err != nil {
				return value.Error(err, v.Span())
			}
			ret = updated
		}
		return ret
	})
}
