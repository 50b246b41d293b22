package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lepinkainen/movieinfo/internal/tui"
)

var runTUI = tui.Run

// TUICmd represents the interactive lookup screen
type TUICmd struct {
	PosterWidth  int `help:"Poster area width in terminal cells"`
	PosterHeight int `help:"Poster area height in terminal cells"`
}

func (t *TUICmd) Run(cli *CLI) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The screen belongs to the UI, so logs only go to a file.
	var logOutput io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		logOutput = f
	}
	initLogging(logOutput, cli.Debug)

	return runTUI(context.Background(), tui.Options{
		Searcher:     newOMDbClient(cfg),
		Posters:      newPosterFetcher(cfg),
		PosterWidth:  cfg.PosterWidth,
		PosterHeight: cfg.PosterHeight,
	})
}
