package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#E5A00D")
	dim    = lipgloss.Color("#6B7280")
	light  = lipgloss.Color("#9CA3AF")
	red    = lipgloss.Color("#EF4444")
	green  = lipgloss.Color("#10B981")
	yellow = lipgloss.Color("#F59E0B")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	statusStyle = lipgloss.NewStyle().Foreground(light)

	dimStyle = lipgloss.NewStyle().Foreground(dim)

	errorStyle = lipgloss.NewStyle().Foreground(red)

	okStyle = lipgloss.NewStyle().Foreground(green)

	sampleStyle = lipgloss.NewStyle().Foreground(yellow).Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(red).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(red).
			Padding(0, 1)

	bodyStyle = lipgloss.NewStyle().Padding(1, 0)
)
