package art

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type OpenAiGenerator struct {
	model  string
	client *openai.Client
}

var _ ArtGenerator = (*OpenAiGenerator)(nil)

func NewOpenAiGenerator(client *openai.Client, model string) *OpenAiGenerator {
	return &OpenAiGenerator{
		model:  model,
		client: client,
	}
}

func (g *OpenAiGenerator) GenerateUrl(ctx context.Context, prompt string) (string, error) {
	req := openai.ImageRequest{
		Prompt:         prompt,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
		Model:          g.model,
	}

	resp, err := g.client.CreateImage(ctx, req)
	if err != nil {
		return "", err
	}

	if len(resp.Data) == 0 {
		return "", fmt.Errorf("no image data returned")
	}

	return resp.Data[0].URL, nil
}
