package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/zehraakn/gifforge/pkg/pipeline"
	"github.com/zehraakn/gifforge/pkg/pipeline/publish"
	"github.com/zehraakn/gifforge/pkg/pipeline/setup"
)

func main() {
	ctx := context.Background()

	var query string
	var output string
	flag.StringVar(&query, "query", "", "describe the character and scene to animate")
	flag.StringVar(&output, "o", "out.gif", "output gif path")
	flag.Parse()

	setupConfig, err := setup.Setup()
	if err != nil {
		slog.Error("failed to setup", "error", err)
		return
	}

	config, err := pipeline.NewConfigFromSetup(setupConfig)
	if err != nil {
		slog.Error("failed to create config", "error", err)
		return
	}

	p, err := pipeline.NewPipeline(config)
	if err != nil {
		slog.Error("failed to create pipeline", "error", err)
		return
	}

	if query == "" {
		if setupConfig.ApiIpPort == "" {
			slog.Error("either -query or API_IP_PORT is required")
			return
		}

		p.StartServer(ctx)
		<-ctx.Done()
		return
	}

	result, err := p.Run(ctx, query)
	if err != nil {
		slog.Error("pipeline run failed", "error", err)
		return
	}

	fmt.Println("Character/Scene Description:")
	fmt.Println(result.CharacterDescription)
	fmt.Println()
	fmt.Println("Generated Plot:")
	fmt.Println(result.Plot)
	fmt.Println()
	fmt.Println("Image Prompts:")
	for i, prompt := range result.Prompts {
		fmt.Printf("%d. %s\n", i+1, prompt)
	}

	if result.FrameCount == 0 {
		slog.Warn("no frames could be generated, nothing to save")
		return
	}

	if err := os.WriteFile(output, result.GifData, 0644); err != nil {
		slog.Error("failed to write gif", "path", output, "error", err)
		return
	}

	slog.Info("saved animation", "path", output, "frames", result.FrameCount, "requested", p.FrameCount())

	if setupConfig.PinataJwtKey != "" {
		gifPublisher := publish.NewGifPublisher(publish.NewPinataPublisher(setupConfig.PinataJwtKey))

		ipfsHash, err := gifPublisher.Publish(ctx, result.Query, result.Plot, result.Prompts, result.FrameCount, output)
		if err != nil {
			slog.Error("failed to publish animation", "error", err)
			return
		}

		slog.Info("published animation", "ipfsHash", ipfsHash)
	}
}
