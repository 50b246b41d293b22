package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// pendingIndicator is the "Searching" dialog shown while a metadata request
// is outstanding. close is idempotent: only the first call after open counts
// as a dismissal.
type pendingIndicator struct {
	spinner spinner.Model
	visible bool
	// dismissals counts open-to-closed transitions over the model's lifetime.
	// It must equal the number of searches that reached the network.
	dismissals int
}

func newPendingIndicator() pendingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return pendingIndicator{spinner: s}
}

func (p *pendingIndicator) open() tea.Cmd {
	p.visible = true
	return p.spinner.Tick
}

func (p *pendingIndicator) close() {
	if !p.visible {
		return
	}
	p.visible = false
	p.dismissals++
	slog.Debug("Search dialog dismissed", "dismissals", p.dismissals)
}

func (p *pendingIndicator) update(msg spinner.TickMsg) tea.Cmd {
	if !p.visible {
		return nil
	}
	var cmd tea.Cmd
	p.spinner, cmd = p.spinner.Update(msg)
	return cmd
}
