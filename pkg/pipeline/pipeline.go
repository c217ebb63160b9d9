package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"github.com/zehraakn/gifforge/pkg/pipeline/anim"
	"github.com/zehraakn/gifforge/pkg/pipeline/art"
	"github.com/zehraakn/gifforge/pkg/pipeline/setup"
	"github.com/zehraakn/gifforge/pkg/pipeline/story"
)

type Pipeline struct {
	writer    *story.Writer
	fetcher   *art.BatchFetcher
	assembler *anim.Assembler
	apiRouter *gin.Engine

	apiIpPort string
}

type Config struct {
	Completer  story.Completer
	Generator  art.ArtGenerator
	Downloader anim.Downloader

	FrameCount      int
	MaxAttempts     int
	RetryBackoff    time.Duration
	GenerateTimeout time.Duration
	DownloadTimeout time.Duration
	MaxWorkers      int
	FrameDelay      int
	ApiIpPort       string
}

type Result struct {
	Query                string
	CharacterDescription string
	Plot                 string
	Prompts              []string
	ImageUrls            []string
	GifData              []byte
	FrameCount           int
}

const (
	defaultGenerateTimeout = 2 * time.Minute
	defaultDownloadTimeout = time.Minute
)

func NewPipeline(config *Config) (*Pipeline, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}

	writer, err := story.NewWriter(config.Completer, config.FrameCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create writer: %w", err)
	}

	if config.Generator == nil {
		return nil, errors.New("generator is nil")
	}

	retrying := art.NewRetryingGenerator(config.Generator, config.MaxAttempts, config.RetryBackoff, config.GenerateTimeout)
	fetcher := art.NewBatchFetcher(retrying, config.MaxWorkers)

	assembler, err := anim.NewAssembler(anim.AssemblerOptions{
		Downloader:      config.Downloader,
		FrameDelay:      config.FrameDelay,
		DownloadTimeout: config.DownloadTimeout,
		MaxParallel:     config.MaxWorkers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create assembler: %w", err)
	}

	pipeline := &Pipeline{
		writer:    writer,
		fetcher:   fetcher,
		assembler: assembler,
		apiRouter: nil,

		apiIpPort: config.ApiIpPort,
	}

	pipeline.apiRouter = pipeline.generateRouter()

	return pipeline, nil
}

func NewConfigFromSetup(setupConfig *setup.Config) (*Config, error) {
	if setupConfig == nil {
		return nil, errors.New("setup config is nil")
	}

	client := openai.NewClient(setupConfig.OpenAiApiKey)

	return &Config{
		Completer:  story.NewOpenAiCompleter(client, setupConfig.OpenAiTextModel),
		Generator:  art.NewOpenAiGenerator(client, setupConfig.OpenAiImageModel),
		Downloader: anim.NewHttpDownloader(http.DefaultClient),

		FrameCount:      setupConfig.FrameCount,
		MaxAttempts:     art.DefaultMaxAttempts,
		RetryBackoff:    art.DefaultRetryBackoff,
		GenerateTimeout: defaultGenerateTimeout,
		DownloadTimeout: defaultDownloadTimeout,
		ApiIpPort:       setupConfig.ApiIpPort,
	}, nil
}

// Run executes the full pipeline for one query: character description, plot,
// image prompts, concurrent generation and gif assembly. Upstream failures
// are fatal; per-frame failures only shrink the artifact. A result with no
// GifData and FrameCount 0 means every frame failed.
func (p *Pipeline) Run(ctx context.Context, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.New("query is empty")
	}

	description, err := p.writer.CharacterDescription(ctx, query)
	if err != nil {
		return nil, err
	}

	plot, err := p.writer.Plot(ctx, query, description)
	if err != nil {
		return nil, err
	}

	prompts, err := p.writer.ImagePrompts(ctx, plot, description)
	if err != nil {
		return nil, err
	}

	slog.Info("generating frames", "count", len(prompts))

	urls, err := p.fetcher.FetchAll(ctx, prompts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image batch: %w", err)
	}

	gifData, frameCount, err := p.assembler.Assemble(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble animation: %w", err)
	}

	if frameCount == 0 {
		slog.Warn("no frames survived, no artifact produced", "requested", len(prompts))
	} else {
		slog.Info("assembled animation", "frames", frameCount, "requested", len(prompts))
	}

	return &Result{
		Query:                query,
		CharacterDescription: description,
		Plot:                 plot,
		Prompts:              prompts,
		ImageUrls:            urls,
		GifData:              gifData,
		FrameCount:           frameCount,
	}, nil
}

func (p *Pipeline) FrameCount() int {
	return p.writer.FrameCount()
}

func (p *Pipeline) ApiIpPort() string {
	return p.apiIpPort
}
