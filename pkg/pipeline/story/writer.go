package story

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zehraakn/gifforge/pkg/pipeline/debug"
)

// Writer runs the upstream text stages: a character description for visual
// consistency, a per-frame plot and the final list of image prompts. Every
// failure here is fatal; there is no retry at this layer.
type Writer struct {
	completer  Completer
	frameCount int
}

func NewWriter(completer Completer, frameCount int) (*Writer, error) {
	if completer == nil {
		return nil, fmt.Errorf("completer is required")
	}
	if frameCount < 1 {
		return nil, fmt.Errorf("frame count must be at least 1, got %d", frameCount)
	}

	return &Writer{
		completer:  completer,
		frameCount: frameCount,
	}, nil
}

func (w *Writer) CharacterDescription(ctx context.Context, query string) (string, error) {
	prompt := fmt.Sprintf("Based on the query '%s', create a detailed description of the main character, "+
		"object, or scene. Include specific details about appearance, characteristics, and any unique "+
		"features. This description will be used to maintain consistency across multiple images.", query)

	description, err := w.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate character description: %w", err)
	}

	return description, nil
}

func (w *Writer) Plot(ctx context.Context, query string, description string) (string, error) {
	prompt := fmt.Sprintf("Create a short, %d-step plot for an animation based on this query: '%s' and "+
		"featuring this description: %s. Each step should be a brief description of a single frame, "+
		"maintaining consistency throughout. Keep it family-friendly and avoid any sensitive themes.",
		w.frameCount, query, description)

	plot, err := w.completer.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate plot: %w", err)
	}

	return plot, nil
}

func (w *Writer) ImagePrompts(ctx context.Context, plot string, description string) ([]string, error) {
	prompt := fmt.Sprintf(`Based on this plot: '%s' and featuring this description: %s, generate %d specific, family-friendly image prompts, one for each step. Each prompt should be detailed enough for image generation, maintaining consistency across frames.

Always include the following in EVERY prompt to maintain consistency:
1. A brief reminder of the main character or object's key features
2. The specific action or scene described in the plot step
3. Any relevant background or environmental details

Format each prompt as a numbered list item, like this:
1. [Your prompt here]
2. [Your prompt here]
... and so on.`, plot, description, w.frameCount)

	response, err := w.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image prompts: %w", err)
	}

	prompts, err := ParsePromptList(response, w.frameCount)
	if err != nil {
		return nil, err
	}

	if debug.IsDebugDumpPrompts() {
		for i, p := range prompts {
			slog.Info("image prompt", "position", i, "prompt", p)
		}
	}

	return prompts, nil
}

func (w *Writer) FrameCount() int {
	return w.frameCount
}
