package tracing_test

import (
	"context"
	"testing"

	"github.com/featurebasedb/tiledb/tracing"
	mocktracer "github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
)

func TestNopTracer(t *testing.T) {
	span, ctx := tracing.StartSpanFromContext(context.Background(), "op")
	assert.NotNil(t, ctx)
	span.LogKV("k", "v") // must not panic
	span.Finish()
}

func TestOtTracer_StartSpanFromContext(t *testing.T) {
	mt := mocktracer.New()
	tr := tracing.NewTracer(mt)

	span, ctx := tr.StartSpanFromContext(context.Background(), "Query.Process")
	span.LogKV("status", "INPROGRESS")
	span.Finish()
	assert.NotNil(t, ctx)

	spans := mt.FinishedSpans()
	assert.Len(t, spans, 1)
	assert.Equal(t, "Query.Process", spans[0].OperationName)
}
