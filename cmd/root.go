package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/movieinfo/internal/config"
	"github.com/lepinkainen/movieinfo/internal/omdb"
	"github.com/lepinkainen/movieinfo/internal/poster"
)

// CLI represents the complete command structure for the movieinfo application
type CLI struct {
	// Global flags
	APIKey  string `help:"OMDb API key (overrides OMDB_API_KEY and omdb.api_key in config)"`
	BaseURL string `help:"OMDb API base URL"`
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `help:"Write logs to this file (the interactive screen discards logs otherwise)"`

	TUI    TUICmd    `cmd:"" default:"1" help:"Look up movies interactively"`
	Search SearchCmd `cmd:"" help:"Look up a single title and print the result"`
}

// Execute runs the Kong-based CLI
func Execute() {
	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("movieinfo"),
		kong.Description("Look up movie details and posters from the OMDb API."),
		kong.UsageOnError(),
	)

	if err := initConfig(); err != nil {
		slog.Error("Fatal error config file", "error", err)
		os.Exit(1)
	}

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	if err := ctx.Run(&cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() error {
	config.SetDefaults()

	if err := viper.BindEnv(config.KeyAPIKey, "OMDB_API_KEY"); err != nil {
		return fmt.Errorf("bind OMDB_API_KEY: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/movieinfo")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, using flags and environment")
			return nil
		}
		return err
	}
	return nil
}

func updateGlobalConfig(cli *CLI) {
	if cli.APIKey != "" {
		viper.Set(config.KeyAPIKey, cli.APIKey)
	}
	if cli.BaseURL != "" {
		viper.Set(config.KeyBaseURL, cli.BaseURL)
	}
	if cli.LogFile != "" {
		viper.Set(config.KeyLogFile, cli.LogFile)
	}
	if cli.TUI.PosterWidth > 0 {
		viper.Set(config.KeyPosterWidth, cli.TUI.PosterWidth)
	}
	if cli.TUI.PosterHeight > 0 {
		viper.Set(config.KeyPosterHeight, cli.TUI.PosterHeight)
	}
}

func initLogging(w io.Writer, debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(w, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}

func newOMDbClient(cfg config.Config) *omdb.Client {
	return omdb.NewClient(cfg.APIKey, omdb.WithBaseURL(cfg.BaseURL))
}

func newPosterFetcher(cfg config.Config) *poster.Fetcher {
	return poster.NewFetcher(poster.WithBox(cfg.PosterBox()))
}

func loadConfig() (config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
