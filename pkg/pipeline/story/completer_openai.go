package story

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

type OpenAiCompleter struct {
	model  string
	client *openai.Client
}

var _ Completer = (*OpenAiCompleter)(nil)

func NewOpenAiCompleter(client *openai.Client, model string) *OpenAiCompleter {
	return &OpenAiCompleter{
		model:  model,
		client: client,
	}
}

func (c *OpenAiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}
