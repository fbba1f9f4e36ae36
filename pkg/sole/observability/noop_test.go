package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	ctx := context.Background()
	m := NoopMetrics{}

	// All calls must be safe and side-effect free.
	m.RecordObtain(ctx, "t", true, nil)
	m.RecordObtain(ctx, "t", false, errors.New("boom"))
	m.RecordConstruction(ctx, "t", time.Second, nil)
	m.RecordRelease(ctx, "t")
}

func TestNoopSpanManager(t *testing.T) {
	ctx := context.Background()
	m := NoopSpanManager{}

	outCtx, span := m.StartObtainSpan(ctx, "t")
	assert.Equal(t, ctx, outCtx)
	assert.NotNil(t, span)

	outCtx, span = m.StartConstructSpan(ctx, "t", "c")
	assert.Equal(t, ctx, outCtx)
	assert.NotNil(t, span)

	m.EndSpanWithError(span, errors.New("boom"))
	m.EndSpanWithError(nil, nil)
	m.AddSpanEvent(ctx, "event", attribute.String("k", "v"))
}
