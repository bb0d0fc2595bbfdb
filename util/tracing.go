package util

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// StartSpan starts a span on the kademlia-dht tracer. The span name is
// prefixed with "KadID.".
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.Tracer("kademlia-dht").Start(ctx, fmt.Sprintf("KadID.%s", name), opts...)
}
