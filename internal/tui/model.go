// Package tui provides the interactive movie lookup screen.
package tui

import (
	"context"
	"image"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/movieinfo/internal/display"
	"github.com/lepinkainen/movieinfo/internal/omdb"
	"github.com/lepinkainen/movieinfo/internal/poster"
)

const (
	defaultPosterWidth  = 32
	defaultPosterHeight = 24
	defaultLabelWidth   = 60
	minLabelWidth       = 20
)

// Options configures the lookup screen.
type Options struct {
	Searcher Searcher
	Posters  PosterFetcher
	// Poster area in terminal cells.
	PosterWidth  int
	PosterHeight int
}

type focusTarget int

const (
	focusInput focusTarget = iota
	focusButton
)

// displayState is everything currently shown for the last result.
type displayState struct {
	labels     display.Labels
	poster     image.Image
	posterView string
}

func (d *displayState) clearPoster() {
	d.poster = nil
	d.posterView = ""
}

func (d *displayState) setPoster(img image.Image) {
	d.poster = img
	d.posterView = poster.Render(img)
}

type model struct {
	ctx      context.Context
	searcher Searcher
	posters  PosterFetcher

	input    textinput.Model
	focus    focusTarget
	pending  pendingIndicator
	advisory *advisory
	display  displayState

	width        int
	height       int
	posterWidth  int
	posterHeight int
}

func newModel(ctx context.Context, opts Options) *model {
	input := textinput.New()
	input.Placeholder = "Enter Movie Title Here..."
	input.Prompt = "> "
	input.Width = 40
	input.Focus()

	m := &model{
		ctx:          ctx,
		searcher:     opts.Searcher,
		posters:      opts.Posters,
		input:        input,
		pending:      newPendingIndicator(),
		posterWidth:  opts.PosterWidth,
		posterHeight: opts.PosterHeight,
	}
	if m.posterWidth <= 0 || m.posterHeight <= 0 {
		m.posterWidth, m.posterHeight = defaultPosterWidth, defaultPosterHeight
	}
	return m
}

func (m *model) Init() tea.Cmd { return textinput.Blink }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case metadataMsg:
		return m, m.handleMetadata(msg)
	case posterMsg:
		m.handlePoster(msg)
		return m, nil
	case spinner.TickMsg:
		return m, m.pending.update(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// Dialogs are modal.
	if m.advisory != nil {
		switch msg.String() {
		case "enter", "esc", " ":
			m.advisory = nil
		}
		return nil
	}
	if m.pending.visible {
		if msg.String() == "esc" {
			m.pending.close()
		}
		return nil
	}

	switch msg.String() {
	case "esc":
		return tea.Quit
	case "tab", "shift+tab":
		return m.toggleFocus()
	case "enter":
		return m.submit()
	case " ":
		if m.focus == focusButton {
			return m.submit()
		}
	}

	if m.focus != focusInput {
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusButton
		m.input.Blur()
		return nil
	}
	m.focus = focusInput
	return m.input.Focus()
}

// submit starts a search for the current input.
func (m *model) submit() tea.Cmd {
	title, err := omdb.ValidateTitle(m.input.Value())
	if err != nil {
		m.showAdvisory(advisoryFor(err))
		return nil
	}

	m.display.clearPoster()
	slog.Debug("Starting search", "title", title)
	return tea.Batch(m.pending.open(), searchCmd(m.ctx, m.searcher, title))
}

func (m *model) handleMetadata(msg metadataMsg) tea.Cmd {
	m.pending.close()
	// Some code path may already have closed it; closing again is a no-op.
	defer m.pending.close()

	m.display.clearPoster()

	if msg.err != nil {
		slog.Debug("Search failed", "title", msg.title, "error", msg.err)
		m.showAdvisory(advisoryFor(msg.err))
		return nil
	}

	m.display.labels = display.FromFields(msg.fields)
	return fetchPosterCmd(m.ctx, m.posters, msg.fields.PosterURL())
}

// handlePoster applies a poster whenever it arrives, also when a newer search
// has started since it was requested.
func (m *model) handlePoster(msg posterMsg) {
	if !msg.result.Available() {
		return
	}
	m.display.setPoster(msg.result.Bitmap)
}

func (m *model) showAdvisory(a advisory) {
	m.advisory = &a
}
