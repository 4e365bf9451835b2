package main

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#3b82f6") // blue-500
	colorError  = lipgloss.Color("#ef4444") // red-500
	colorDim    = lipgloss.Color("#6b7280") // gray-500
	colorMuted  = lipgloss.Color("#9ca3af") // gray-400
)

type styles struct {
	Class    lipgloss.Style
	Image    lipgloss.Style
	Position lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Class:    lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Image:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f8fafc")),
		Position: lipgloss.NewStyle().Foreground(colorDim),
		Error:    lipgloss.NewStyle().Foreground(colorError).Bold(true),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("#1e293b")),
		Help:     lipgloss.NewStyle().Foreground(colorMuted),
	}
}
