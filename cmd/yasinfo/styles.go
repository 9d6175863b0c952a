package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	bits  lipgloss.Style
	err   lipgloss.Style
	help  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, label: plain, value: plain, bits: plain, err: plain, help: plain}
	}
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")),
		value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98")),
		bits: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD580")),
		err: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")),
	}
}
