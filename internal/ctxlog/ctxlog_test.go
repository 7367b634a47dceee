package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestFromContext_Fallback(t *testing.T) {
	logger := FromContext(context.Background())
	assert.NotNil(t, logger)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
