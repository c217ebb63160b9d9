package anim

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Downloader interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

const (
	downloadCacheSize = 64
	downloadCacheTTL  = 10 * time.Minute
)

// HttpDownloader fetches image bytes over a shared, caller-owned http client.
// Generated image urls are short-lived, so fetched bytes are kept in a small
// TTL cache to make re-assembly of the same run cheap.
type HttpDownloader struct {
	httpClient *http.Client
	cache      *expirable.LRU[string, []byte]
}

var _ Downloader = (*HttpDownloader)(nil)

func NewHttpDownloader(httpClient *http.Client) *HttpDownloader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HttpDownloader{
		httpClient: httpClient,
		cache:      expirable.NewLRU[string, []byte](downloadCacheSize, nil, downloadCacheTTL),
	}
}

func (d *HttpDownloader) Fetch(ctx context.Context, url string) ([]byte, error) {
	if data, ok := d.cache.Get(url); ok {
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	d.cache.Add(url, data)

	return data, nil
}
