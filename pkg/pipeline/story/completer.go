package story

import "context"

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
