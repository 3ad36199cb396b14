package observes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopWithoutEndpoints(t *testing.T) {
	flush, err := NewSentry(&SentryOptions{})
	require.NoError(t, err)
	flush()

	flush, err = NewSentry(nil)
	require.NoError(t, err)
	flush()

	shutdown, err := NewTracer(&TracerOption{})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestStartSpanWithoutProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), LayerService, "test")
	defer span.End()
	assert.NotNil(t, ctx)
	assert.Equal(t, "Service", LayerService.String())
}
