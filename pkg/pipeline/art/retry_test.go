package art_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zehraakn/gifforge/pkg/pipeline/art"
)

type mockArtGenerator struct {
	generateUrl func(ctx context.Context, prompt string) (string, error)
}

func (m *mockArtGenerator) GenerateUrl(ctx context.Context, prompt string) (string, error) {
	return m.generateUrl(ctx, prompt)
}

func TestRetryingGenerator_FirstAttemptSucceeds(t *testing.T) {
	var calls atomic.Int32
	inner := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			calls.Add(1)
			return "https://example.com/image.png", nil
		},
	}

	generator := art.NewRetryingGenerator(inner, 3, time.Millisecond, 0)

	url, err := generator.GenerateUrl(context.Background(), "a cat")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/image.png", url)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryingGenerator_StopsAtFirstSuccess(t *testing.T) {
	var calls atomic.Int32
	inner := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			if calls.Add(1) < 3 {
				return "", errors.New("rate limited")
			}
			return "https://example.com/image.png", nil
		},
	}

	generator := art.NewRetryingGenerator(inner, 5, time.Millisecond, 0)

	url, err := generator.GenerateUrl(context.Background(), "a cat")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/image.png", url)
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryingGenerator_ExhaustsAttempts(t *testing.T) {
	var calls atomic.Int32
	inner := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			calls.Add(1)
			return "", errors.New("always fails")
		},
	}

	generator := art.NewRetryingGenerator(inner, 3, time.Millisecond, 0)

	_, err := generator.GenerateUrl(context.Background(), "a cat")
	require.Error(t, err)
	assert.ErrorContains(t, err, "always fails")
	assert.Equal(t, int32(3), calls.Load())
}

func TestRetryingGenerator_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	inner := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			calls.Add(1)
			return "", errors.New("always fails")
		},
	}

	generator := art.NewRetryingGenerator(inner, 1, time.Millisecond, 0)

	_, err := generator.GenerateUrl(context.Background(), "a cat")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestRetryingGenerator_BackoffBetweenAttempts(t *testing.T) {
	backoff := 20 * time.Millisecond
	inner := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("always fails")
		},
	}

	generator := art.NewRetryingGenerator(inner, 3, backoff, 0)

	start := time.Now()
	_, err := generator.GenerateUrl(context.Background(), "a cat")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.GreaterOrEqual(t, elapsed, 2*backoff)
}

func TestRetryingGenerator_CancelledDuringBackoff(t *testing.T) {
	inner := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("always fails")
		},
	}

	generator := art.NewRetryingGenerator(inner, 3, time.Minute, 0)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := generator.GenerateUrl(ctx, "a cat")

	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Minute)
}
