package otel_test

import (
	"agenda/infras/otel"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.Create")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"booking.location": "Química",
		"booking.retry":    false,
		"booking.count":    2,
		"booking.slots":    []string{"07:10/08:00"},
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("slot taken"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "slot taken", spans[0].Status().Description)
	assert.Len(t, spans[0].Attributes(), 4)
}
