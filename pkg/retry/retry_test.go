package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

func TestDelayBounds(t *testing.T) {
	tests := []struct {
		attempt  int
		min, max time.Duration
	}{
		{0, 1 * time.Second, 2 * time.Second},
		{1, 2 * time.Second, 3 * time.Second},
		{2, 4 * time.Second, 5 * time.Second},
		{3, 8 * time.Second, 9 * time.Second},
		{10, 30 * time.Second, 30 * time.Second},
		{-1, 1 * time.Second, 2 * time.Second},
	}
	for _, tc := range tests {
		d := Delay(tc.attempt)
		assert.GreaterOrEqual(t, d, tc.min, "attempt %d", tc.attempt)
		assert.LessOrEqual(t, d, tc.max, "attempt %d", tc.attempt)
	}
}

func TestRetriable(t *testing.T) {
	retriable := &models.CodedError{Code: models.CodeGearTimeout, Message: "timeout", Retriable: true}
	fatal := models.NewCodedError(models.CodeValidationFailed, "bad plan")

	assert.True(t, Retriable(retriable))
	assert.False(t, Retriable(fatal))
	assert.False(t, Retriable(errors.New("plain error")))

	wrapped := errors.Join(errors.New("outer"), retriable)
	assert.True(t, Retriable(wrapped))
}

func TestDoStopsOnNonRetriable(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 5, func() error {
		calls++
		return models.NewCodedError(models.CodeValidationFailed, "bad")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoSucceedsAfterRetry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), 5, func() error {
		calls++
		if calls < 2 {
			return &models.CodedError{Code: models.CodeGearTimeout, Message: "flaky", Retriable: true}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDoHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Do(ctx, 3, func() error {
		return &models.CodedError{Code: models.CodeGearTimeout, Message: "flaky", Retriable: true}
	})
	assert.ErrorIs(t, err, context.Canceled)
}
