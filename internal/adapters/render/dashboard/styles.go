package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	box     lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	notice  lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	confirm lipgloss.Style
	spinner lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		focused: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		danger:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
	}
}
