package publish

import (
	"context"
	"fmt"
)

// GifPublisher pins a finished animation and a metadata document describing
// the run that produced it.
type GifPublisher struct {
	publisher Publisher
}

func NewGifPublisher(publisher Publisher) *GifPublisher {
	return &GifPublisher{
		publisher: publisher,
	}
}

func (p *GifPublisher) Publish(ctx context.Context, query, plot string, prompts []string, frameCount int, gifPath string) (string, error) {
	gifIpfsHash, err := p.publisher.PublishFile(ctx, gifPath)
	if err != nil {
		return "", fmt.Errorf("failed to publish gif: %w", err)
	}

	metadataIpfsHash, err := p.publisher.PublishJson(ctx, map[string]interface{}{
		"query":       query,
		"plot":        plot,
		"prompts":     prompts,
		"frame_count": frameCount,
		"animation":   gifIpfsHash,
	})
	if err != nil {
		return "", fmt.Errorf("failed to publish metadata: %w", err)
	}

	return metadataIpfsHash, nil
}
