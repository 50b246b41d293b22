package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/movieinfo/internal/display"
	"github.com/lepinkainen/movieinfo/internal/omdb"
	"github.com/lepinkainen/movieinfo/internal/poster"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SearchCmd represents the one-shot lookup command
type SearchCmd struct {
	Title  string `arg:"" help:"Movie title to look up"`
	Format string `short:"F" help:"Output format" enum:"text,json,yaml" default:"text"`
	Poster bool   `help:"Render the poster below the text output"`
}

type searchOutput struct {
	Fields omdb.Fields `json:"fields" yaml:"fields"`
	Labels []string    `json:"labels" yaml:"labels"`
}

func (s *SearchCmd) Run(cli *CLI) error {
	initLogging(stderr, cli.Debug)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	fields, err := newOMDbClient(cfg).Search(ctx, s.Title)
	if err != nil {
		return fmt.Errorf("search %q: %w", s.Title, err)
	}

	var posterView string
	if s.Poster && s.Format == "text" {
		if result := newPosterFetcher(cfg).Fetch(ctx, fields.PosterURL()); result.Available() {
			posterView = poster.Render(result.Bitmap)
		}
	}

	return writeResult(stdout, s.Format, fields, posterView)
}

func writeResult(w io.Writer, format string, fields omdb.Fields, posterView string) error {
	labels := display.FromFields(fields).Lines()

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(searchOutput{Fields: fields, Labels: labels})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(searchOutput{Fields: fields, Labels: labels}); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		out := strings.Join(labels, "\n") + "\n"
		if posterView != "" {
			out += "\n" + posterView + "\n"
		}
		_, err := io.WriteString(w, out)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
