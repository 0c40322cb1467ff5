package instrument

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampRatio(t *testing.T) {
	assert.InDelta(t, 0.0, clampRatio(-1), 0)
	assert.InDelta(t, 0.25, clampRatio(0.25), 0)
	assert.InDelta(t, 1.0, clampRatio(3), 0)
}

func TestNewNoop(t *testing.T) {
	ins := NewNoop()

	_, span := ins.Tracer("test").Start(context.Background(), "op")
	span.End()
	assert.False(t, span.SpanContext().IsValid())

	counter, err := ins.Meter("test").Int64Counter("count")
	require.NoError(t, err)
	counter.Add(context.Background(), 1)

	assert.NoError(t, ins.Flush(context.Background()))
	assert.NoError(t, ins.Shutdown(context.Background()))
}

func TestNew_NilConfig(t *testing.T) {
	ins, err := New(context.Background(), nil)
	require.NoError(t, err)
	assert.NoError(t, ins.Flush(context.Background()))
}
