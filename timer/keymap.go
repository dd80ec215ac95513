package timer

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

type keymap struct {
	startBreak key.Binding
	stopBreak  key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	startBreak: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "start break"),
	),
	stopBreak: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop break"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type style struct {
	base      lipgloss.Style
	title     lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	onBreak   lipgloss.Style
	loggedIn  lipgloss.Style
	warning   lipgloss.Style
	err       lipgloss.Style
}

func newStyle(dark bool) style {
	text, dim := lipgloss.Color("#1F2933"), lipgloss.Color("#616E7C")
	if dark {
		text, dim = lipgloss.Color("#F5F7FA"), lipgloss.Color("#9AA5B1")
	}

	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#1F2933"))

	return style{
		base:      lipgloss.NewStyle().Padding(1, padding),
		title:     lipgloss.NewStyle().Bold(true).Foreground(text).MarginRight(1),
		main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		secondary: lipgloss.NewStyle().Foreground(text),
		hint:      lipgloss.NewStyle().Foreground(dim),
		onBreak:   badge.Background(lipgloss.Color("#F7C948")),
		loggedIn:  badge.Background(lipgloss.Color("#B0DB43")),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F7C948")),
		err:       lipgloss.NewStyle().Foreground(lipgloss.Color("#E12D39")),
	}
}
