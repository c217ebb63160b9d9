package art

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	DefaultMaxAttempts  = 3
	DefaultRetryBackoff = 2 * time.Second
)

// RetryingGenerator wraps an ArtGenerator with bounded retry. Failures are
// never classified; any error from the inner generator counts as a failed
// attempt.
type RetryingGenerator struct {
	inner          ArtGenerator
	maxAttempts    int
	backoff        time.Duration
	attemptTimeout time.Duration
}

var _ ArtGenerator = (*RetryingGenerator)(nil)

func NewRetryingGenerator(inner ArtGenerator, maxAttempts int, backoff time.Duration, attemptTimeout time.Duration) *RetryingGenerator {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	if backoff <= 0 {
		backoff = DefaultRetryBackoff
	}

	return &RetryingGenerator{
		inner:          inner,
		maxAttempts:    maxAttempts,
		backoff:        backoff,
		attemptTimeout: attemptTimeout,
	}
}

func (g *RetryingGenerator) GenerateUrl(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		url, err := g.generateOnce(ctx, prompt)
		if err == nil {
			return url, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if attempt < g.maxAttempts {
			select {
			case <-time.After(g.backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	slog.Error("failed to generate image after all attempts", "prompt", prompt, "attempts", g.maxAttempts, "error", lastErr)

	return "", fmt.Errorf("failed to generate image after %d attempts: %w", g.maxAttempts, lastErr)
}

func (g *RetryingGenerator) generateOnce(ctx context.Context, prompt string) (string, error) {
	if g.attemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.attemptTimeout)
		defer cancel()
	}

	return g.inner.GenerateUrl(ctx, prompt)
}
