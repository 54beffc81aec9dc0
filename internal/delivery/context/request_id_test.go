package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFirstRequestID(t *testing.T) {
	assert.Equal(t, "trace-1", FirstRequestID("", "trace-1", "trace-2"))

	generated := FirstRequestID("", "")
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestRequestScopedValues(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	scoped := fallback.With(slog.String("request_id", "abc"))
	ctx = WithLogger(WithRequestID(ctx, "abc"), scoped)

	assert.Equal(t, "abc", GetRequestIDFromContext(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}
