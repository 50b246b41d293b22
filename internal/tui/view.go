package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	focusedButtonStyle = buttonStyle.Copy().
				Background(lipgloss.Color("178")).
				Foreground(lipgloss.Color("0"))

	posterStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	titleLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(1, 3)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

func (m *model) View() string {
	header := headerStyle.Render("Movie Info")

	button := buttonStyle.Render("Search")
	if m.focus == focusButton {
		button = focusedButtonStyle.Render("Search")
	}
	search := lipgloss.JoinHorizontal(lipgloss.Center, inputStyle.Render(m.input.View()), "  ", button)

	posterBox := posterStyle.
		Width(m.posterWidth).
		Height(m.posterHeight).
		Render(m.display.posterView)
	body := lipgloss.JoinHorizontal(lipgloss.Top, posterBox, "  ", m.labelsView())

	if dialog := m.dialogView(); dialog != "" {
		body = lipgloss.Place(lipgloss.Width(body), lipgloss.Height(body), lipgloss.Center, lipgloss.Center, dialog)
	}

	help := helpStyle.Render("Enter search | Tab focus Search button | Esc quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, search, body, help)
}

func (m *model) labelsView() string {
	labels := m.display.labels
	if labels.IsZero() {
		return ""
	}

	width := m.labelWidth()
	lines := labels.Lines()
	rendered := make([]string, 0, len(lines))
	rendered = append(rendered, titleLabelStyle.Width(width).Render(lines[0]))
	for _, line := range lines[1:] {
		rendered = append(rendered, labelStyle.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

func (m *model) labelWidth() int {
	if m.width <= 0 {
		return defaultLabelWidth
	}
	// poster border (2) + gap (2) + slack (2)
	width := m.width - m.posterWidth - 6
	if width < minLabelWidth {
		return minLabelWidth
	}
	return width
}

func (m *model) dialogView() string {
	switch {
	case m.advisory != nil:
		return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			dialogTitleStyle.Render(m.advisory.title),
			"",
			m.advisory.text,
			"",
			helpStyle.Render("Enter OK"),
		))
	case m.pending.visible:
		return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			dialogTitleStyle.Render("Searching"),
			"",
			m.pending.spinner.View()+" Please Wait!",
			"",
			helpStyle.Render("Esc close"),
		))
	}
	return ""
}
