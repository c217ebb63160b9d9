package art

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alitto/pond/v2"
)

// BatchFetcher runs one generation per prompt concurrently and reassembles
// the resulting urls in prompt order. A prompt whose generation fails ends up
// as an empty string at its position; the batch itself only fails on
// cancellation.
type BatchFetcher struct {
	generator  ArtGenerator
	maxWorkers int
}

func NewBatchFetcher(generator ArtGenerator, maxWorkers int) *BatchFetcher {
	return &BatchFetcher{
		generator:  generator,
		maxWorkers: maxWorkers,
	}
}

func (f *BatchFetcher) FetchAll(ctx context.Context, prompts []string) ([]string, error) {
	if len(prompts) == 0 {
		return nil, errors.New("prompt list is empty")
	}

	workers := f.maxWorkers
	if workers <= 0 || workers > len(prompts) {
		workers = len(prompts)
	}

	pool := pond.NewResultPool[string](workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i, prompt := range prompts {
		i, prompt := i, prompt
		group.Submit(func() string {
			url, err := f.generator.GenerateUrl(ctx, prompt)
			if err != nil {
				slog.Warn("image generation failed, dropping frame", "position", i, "error", err)
				return ""
			}
			return url
		})
	}

	urls, err := group.Wait()
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return urls, nil
}
