package story

import (
	"fmt"
	"strconv"
	"strings"
)

var ErrPromptCount = fmt.Errorf("unexpected image prompt count")

const scenePreamble = "Create a detailed, photorealistic image of the following scene: "

// ParsePromptList extracts exactly n numbered prompts ("1. ...", "2. ...")
// from a completion response and prefixes each with the scene preamble. Any
// other line is ignored. A response that does not yield exactly n prompts is
// a fatal input error for the rest of the pipeline.
func ParsePromptList(text string, n int) ([]string, error) {
	var prompts []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)

		number, rest, found := strings.Cut(line, ".")
		if !found {
			continue
		}

		index, err := strconv.Atoi(strings.TrimSpace(number))
		if err != nil || index < 1 || index > n {
			continue
		}

		prompt := strings.TrimSpace(rest)
		if prompt == "" {
			continue
		}

		prompts = append(prompts, scenePreamble+prompt)
	}

	if len(prompts) != n {
		return nil, fmt.Errorf("%w: expected %d prompts, got %d", ErrPromptCount, n, len(prompts))
	}

	return prompts, nil
}
