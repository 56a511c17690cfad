package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/moodify/internal/services"
	"github.com/desertthunder/moodify/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var enricher services.Enricher
	if config.Credentials.Spotify.ClientID != "" && config.Credentials.Spotify.ClientSecret != "" {
		if svc, err := services.NewSpotifyService(map[string]string{
			"client_id":     config.Credentials.Spotify.ClientID,
			"client_secret": config.Credentials.Spotify.ClientSecret,
		}, config.Enrichment.RateLimit); err == nil {
			enricher = svc
		} else {
			logger.Warn("spotify enricher unavailable", "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Enricher: enricher,
		Logger:   logger,
	})

	app := &cli.Command{
		Name:     "moodify",
		Usage:    "Mood-based music catalog and playlist manager",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
