package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Run("set_and_get", func(t *testing.T) {
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		assert.NotEmpty(t, traceID)
	})

	t.Run("missing_returns_empty", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("each_call_generates_fresh_id", func(t *testing.T) {
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}

func TestUserID(t *testing.T) {
	t.Run("set_and_get", func(t *testing.T) {
		ctx := SetUserID(context.Background(), 42)
		userID, ok := GetUserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("missing_identity", func(t *testing.T) {
		userID, ok := GetUserID(context.Background())
		assert.False(t, ok)
		assert.Zero(t, userID)
	})

	t.Run("non_positive_id_is_no_identity", func(t *testing.T) {
		userID, ok := GetUserID(SetUserID(context.Background(), 0))
		assert.False(t, ok)
		assert.Zero(t, userID)
	})
}
