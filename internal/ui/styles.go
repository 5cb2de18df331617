package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorSuccess = lipgloss.Color("#10B981")
	ColorFailure = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorInfo    = lipgloss.Color("#3B82F6")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorAccent  = lipgloss.Color("#06B6D4")

	StyleProject = lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess)
	StylePath    = lipgloss.NewStyle().Foreground(ColorAccent)
	StyleLineNo  = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleQuery   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StyleError   = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
)
