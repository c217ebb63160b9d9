package publish

import "context"

type Publisher interface {
	PublishFile(ctx context.Context, filePath string) (string, error)
	PublishJson(ctx context.Context, json interface{}) (string, error)
}
