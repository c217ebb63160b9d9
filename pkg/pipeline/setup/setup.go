package setup

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
)

func Setup() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	config, err := NewConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get config from env: %w", err)
	}

	return config, nil
}
