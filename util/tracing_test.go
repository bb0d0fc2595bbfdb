package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestStartSpan(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "decode")
	defer span.End()

	require.NotNil(t, span)
	require.Equal(t, span, trace.SpanFromContext(ctx))
}
