package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("69")
	colorMuted   = lipgloss.Color("241")
	colorSuccess = lipgloss.Color("42")
	colorWarning = lipgloss.Color("214")

	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	subtitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	messageStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	bannerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	doneStyle     = lipgloss.NewStyle().Foreground(colorMuted).Strikethrough(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWarning).
			Padding(1, 3)
	pickerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
)
