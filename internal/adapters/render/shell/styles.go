package shell

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	topBar    lipgloss.Style
	navActive lipgloss.Style
	navIdle   lipgloss.Style
	sidebar   lipgloss.Style
	card      lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	faint     lipgloss.Style
	notice    lipgloss.Style
	badge     lipgloss.Style
	prompt    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		topBar:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")).Background(lipgloss.Color("54")).Padding(0, 1),
		navActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		navIdle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		sidebar:   lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderRight(true).BorderForeground(lipgloss.Color("240")).PaddingRight(2),
		card:      lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:     lipgloss.NewStyle().Faint(true),
		notice:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("63")).Padding(0, 1),
		prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
