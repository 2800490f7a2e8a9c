package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer_Capture_NilTracer(t *testing.T) {
	var tracer *Tracer

	t.Run("runs the function", func(t *testing.T) {
		called := false
		err := tracer.Capture(context.Background(), "dynamodb.get_item", func(ctx context.Context) error {
			called = true
			return nil
		})

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("propagates the error", func(t *testing.T) {
		wantErr := errors.New("store unavailable")
		err := tracer.Capture(context.Background(), "dynamodb.put_item", func(ctx context.Context) error {
			return wantErr
		})

		assert.Equal(t, wantErr, err)
	})
}
