package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/movieinfo/internal/omdb"
	"github.com/lepinkainen/movieinfo/internal/poster"
)

// Searcher looks up metadata for a title.
type Searcher interface {
	Search(ctx context.Context, title string) (omdb.Fields, error)
}

// PosterFetcher downloads a poster. It reports failure through the Result,
// never through an error.
type PosterFetcher interface {
	Fetch(ctx context.Context, url string) poster.Result
}

type metadataMsg struct {
	title  string
	fields omdb.Fields
	err    error
}

type posterMsg struct {
	result poster.Result
}

func searchCmd(ctx context.Context, s Searcher, title string) tea.Cmd {
	return func() tea.Msg {
		fields, err := s.Search(ctx, title)
		return metadataMsg{title: title, fields: fields, err: err}
	}
}

func fetchPosterCmd(ctx context.Context, f PosterFetcher, url string) tea.Cmd {
	return func() tea.Msg {
		return posterMsg{result: f.Fetch(ctx, url)}
	}
}
