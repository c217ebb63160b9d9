package art_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zehraakn/gifforge/pkg/pipeline/art"
)

func TestBatchFetcher_PreservesPromptOrder(t *testing.T) {
	// Later prompts finish earlier to make completion order the reverse of
	// submission order.
	generator := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			var index int
			fmt.Sscanf(prompt, "prompt-%d", &index)
			time.Sleep(time.Duration(50-10*index) * time.Millisecond)
			return fmt.Sprintf("https://example.com/%d.png", index), nil
		},
	}

	fetcher := art.NewBatchFetcher(generator, 0)

	prompts := []string{"prompt-0", "prompt-1", "prompt-2", "prompt-3", "prompt-4"}
	urls, err := fetcher.FetchAll(context.Background(), prompts)
	require.NoError(t, err)

	require.Len(t, urls, len(prompts))
	for i, url := range urls {
		assert.Equal(t, fmt.Sprintf("https://example.com/%d.png", i), url)
	}
}

func TestBatchFetcher_FailedPromptProducesEmptyUrl(t *testing.T) {
	generator := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			if strings.Contains(prompt, "bad") {
				return "", errors.New("generation failed")
			}
			return "https://example.com/" + prompt + ".png", nil
		},
	}

	fetcher := art.NewBatchFetcher(generator, 0)

	urls, err := fetcher.FetchAll(context.Background(), []string{"p1", "bad", "p3"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"https://example.com/p1.png",
		"",
		"https://example.com/p3.png",
	}, urls)
}

func TestBatchFetcher_EmptyPromptList(t *testing.T) {
	fetcher := art.NewBatchFetcher(&mockArtGenerator{}, 0)

	_, err := fetcher.FetchAll(context.Background(), nil)
	require.Error(t, err)
}

func TestBatchFetcher_BoundedWorkers(t *testing.T) {
	var running, peak atomic32
	generator := &mockArtGenerator{
		generateUrl: func(ctx context.Context, prompt string) (string, error) {
			n := running.add(1)
			peak.max(n)
			defer running.add(-1)
			time.Sleep(20 * time.Millisecond)
			return "https://example.com/image.png", nil
		},
	}

	fetcher := art.NewBatchFetcher(generator, 2)

	urls, err := fetcher.FetchAll(context.Background(), []string{"p1", "p2", "p3", "p4", "p5"})
	require.NoError(t, err)

	assert.Len(t, urls, 5)
	assert.LessOrEqual(t, peak.load(), int32(2))
}

type atomic32 struct{ v atomic.Int32 }

func (a *atomic32) add(d int32) int32 { return a.v.Add(d) }

func (a *atomic32) load() int32 { return a.v.Load() }

func (a *atomic32) max(n int32) {
	for {
		cur := a.v.Load()
		if n <= cur || a.v.CompareAndSwap(cur, n) {
			return
		}
	}
}
