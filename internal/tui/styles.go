package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("69")
	colorMuted   = lipgloss.Color("240")
	colorError   = lipgloss.Color("196")
	colorSuccess = lipgloss.Color("42")
	colorCodeBg  = lipgloss.Color("236")
)
