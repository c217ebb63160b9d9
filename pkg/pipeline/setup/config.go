package setup

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	DefaultTextModel  = "gpt-4"
	DefaultImageModel = "dall-e-3"
	DefaultFrameCount = 5
)

type Config struct {
	OpenAiApiKey     string
	OpenAiTextModel  string
	OpenAiImageModel string
	FrameCount       int
	ApiIpPort        string
	PinataJwtKey     string
}

func NewConfigFromEnv() (*Config, error) {
	config := &Config{
		OpenAiApiKey:     os.Getenv(EnvOpenAiApiKey),
		OpenAiTextModel:  os.Getenv(EnvOpenAiTextModel),
		OpenAiImageModel: os.Getenv(EnvOpenAiImageModel),
		FrameCount:       DefaultFrameCount,
		ApiIpPort:        os.Getenv(EnvApiIpPort),
		PinataJwtKey:     os.Getenv(EnvPinataJwtKey),
	}

	if config.OpenAiTextModel == "" {
		config.OpenAiTextModel = DefaultTextModel
	}
	if config.OpenAiImageModel == "" {
		config.OpenAiImageModel = DefaultImageModel
	}

	if raw := os.Getenv(EnvFrameCount); raw != "" {
		frameCount, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer: %w", EnvFrameCount, err)
		}
		config.FrameCount = frameCount
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.OpenAiApiKey == "" {
		return errors.New("OPENAI_API_KEY is required")
	}
	if c.FrameCount < 1 {
		return errors.New("FRAME_COUNT must be at least 1")
	}

	return nil
}
