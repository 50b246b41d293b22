package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// Run shows the lookup screen until the user quits.
func Run(ctx context.Context, opts Options) error {
	if opts.Searcher == nil || opts.Posters == nil {
		return fmt.Errorf("tui: searcher and poster fetcher are required")
	}

	m := newModel(ctx, opts)
	finalModel, err := runProgram(m)
	if err != nil {
		return err
	}
	if _, ok := finalModel.(*model); !ok {
		return fmt.Errorf("unexpected program result")
	}
	return nil
}
