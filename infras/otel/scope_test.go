package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"roombook/infras/otel"
)

type window struct {
	start, end time.Time
}

func (w window) Bounds() (time.Time, time.Time) { return w.start, w.end }

type stringer struct{}

func (stringer) String() string { return "Meeting" }

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("service").Start(context.Background(), "service.Book")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"room.id":       "r-1",
		"room.capacity": 30,
		"room.free":     true,
		"room.category": stringer{},
		"requested_at":  time.Date(2024, 4, 1, 8, 30, 0, 0, time.UTC),
		"booking.hold":  90 * time.Second,
		"booking": window{
			start: time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 4, 2, 11, 0, 0, 0, time.UTC),
		},
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("slot already taken"))
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	got := map[attribute.Key]attribute.Value{}
	for _, kv := range ended[0].Attributes() {
		got[kv.Key] = kv.Value
	}

	assert.Equal(t, "r-1", got["room.id"].AsString())
	assert.Equal(t, int64(30), got["room.capacity"].AsInt64())
	assert.True(t, got["room.free"].AsBool())
	assert.Equal(t, "Meeting", got["room.category"].AsString())
	assert.Equal(t, "2024-04-01T08:30:00Z", got["requested_at"].AsString())
	assert.InDelta(t, 90.0, got["booking.hold"].AsFloat64(), 0)

	assert.Equal(t, "2024-04-02T09:00:00Z", got["booking.start"].AsString())
	assert.Equal(t, "2024-04-02T11:00:00Z", got["booking.end"].AsString())
	assert.InDelta(t, 7200.0, got["booking.duration_seconds"].AsFloat64(), 0)
	_, flat := got["booking"]
	assert.False(t, flat, "intervals expand into start, end and duration")

	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "slot already taken", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1, "only the non-nil error is recorded")
}
