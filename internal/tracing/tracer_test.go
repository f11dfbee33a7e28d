package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNewProvider_RecordsSpansWithServiceResource(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp, err := newProvider(Config{ServiceName: "productsvc", ServiceVersion: "test"}, sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "ProductRepository.Create")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "ProductRepository.Create", spans[0].Name())

	var serviceName string
	for _, attr := range spans[0].Resource().Attributes() {
		if attr.Key == "service.name" {
			serviceName = attr.Value.AsString()
		}
	}
	assert.Equal(t, "productsvc", serviceName)

	assert.NoError(t, Shutdown(context.Background(), tp))
}

func TestShutdown_IgnoresForeignProviders(t *testing.T) {
	assert.NoError(t, Shutdown(context.Background(), noop.NewTracerProvider()))
}
