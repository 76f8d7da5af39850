package tui

import "github.com/charmbracelet/lipgloss"

// ActionOutput is the message box content: a status line with an error or
// success palette.
type ActionOutput struct {
	Message string
	IsError bool
}

func errorOutput(message string) *ActionOutput {
	return &ActionOutput{Message: message, IsError: true}
}

func successOutput(message string) *ActionOutput {
	return &ActionOutput{Message: message}
}

func RenderActionOutput(output *ActionOutput, width int) string {
	if output == nil {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	if output.IsError {
		style = style.BorderForeground(colorError).Foreground(colorError)
	} else {
		style = style.BorderForeground(colorSuccess).Foreground(colorSuccess)
	}

	if width > 4 {
		style = style.Width(width - 4)
	}

	return style.Render(output.Message)
}
