package conversion

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/cellpath"
	"github.com/vk/durconv/internal/pipeline"
)

// IntoDuration converts every element of input, or the values at paths
// within each element, into durations. head locates the invocation and is
// used as the target span when input has none.
func IntoDuration(ctx context.Context, input pipeline.Data, head hcl.Range, paths ...cellpath.Path) pipeline.Data {
	return pipeline.Apply(ctx, input, head, ToDuration, paths...)
}
