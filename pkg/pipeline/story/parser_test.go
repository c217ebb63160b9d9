package story_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zehraakn/gifforge/pkg/pipeline/story"
)

func TestParsePromptList(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		n       int
		want    []string
		wantErr bool
	}{
		{
			name: "exactly n numbered lines",
			text: "1. A cat at a desk\n2. The cat dips a quill\n3. The cat writes",
			n:    3,
			want: []string{"A cat at a desk", "The cat dips a quill", "The cat writes"},
		},
		{
			name: "surrounding prose is ignored",
			text: "Here are your prompts:\n\n1. First frame\n2. Second frame\n\nEnjoy!",
			n:    2,
			want: []string{"First frame", "Second frame"},
		},
		{
			name: "indented numbered lines",
			text: "  1. First frame\n\t2. Second frame",
			n:    2,
			want: []string{"First frame", "Second frame"},
		},
		{
			name:    "too few prompts",
			text:    "1. First\n2. Second\n3. Third\n4. Fourth",
			n:       5,
			wantErr: true,
		},
		{
			name:    "empty response",
			text:    "",
			n:       5,
			wantErr: true,
		},
		{
			name:    "numbered line with empty body",
			text:    "1. First\n2.",
			n:       2,
			wantErr: true,
		},
		{
			name:    "numbers outside range are ignored",
			text:    "1. First\n2. Second\n7. Out of range",
			n:       3,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts, err := story.ParsePromptList(tt.text, tt.n)

			if tt.wantErr {
				require.ErrorIs(t, err, story.ErrPromptCount)
				return
			}

			require.NoError(t, err)
			require.Len(t, prompts, tt.n)
			for i, want := range tt.want {
				assert.True(t, strings.HasSuffix(prompts[i], want), "prompt %d: %q", i, prompts[i])
				assert.Contains(t, prompts[i], "photorealistic image")
			}
		})
	}
}
