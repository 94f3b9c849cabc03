package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func fastConfig(retries int) Config {
	return Config{MaxRetries: retries, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, Multiplier: 2}
}

func TestWithBackoff_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(5), zap.NewNop(), "probe", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithBackoff_GivesUp(t *testing.T) {
	boom := errors.New("down")
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(3), zap.NewNop(), "probe", func(context.Context) error {
		calls++
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestWithBackoff_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WithBackoff(ctx, fastConfig(3), zap.NewNop(), "probe", func(context.Context) error {
		t.Fatal("must not be called")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoff_Capped(t *testing.T) {
	cfg := Config{InitialDelay: time.Second, MaxDelay: 4 * time.Second, Multiplier: 2}
	assert.Equal(t, time.Second, calculateBackoff(cfg, 1))
	assert.Equal(t, 2*time.Second, calculateBackoff(cfg, 2))
	assert.Equal(t, 4*time.Second, calculateBackoff(cfg, 5))
}
