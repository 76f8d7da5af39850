package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const completionVisibleRows = 8

// RenderForm renders the upload form: title, file input, completion list
// and the submit control.
func RenderForm(m Model) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle := lipgloss.NewStyle().Foreground(colorMuted)

	lines := []string{
		titleStyle.Render("Code Review"),
		m.pathInput.View(),
	}
	if m.completion.Open {
		lines = append(lines, renderCompletion(m.completion))
	}
	lines = append(lines, renderSubmitControl(m.submit))
	if m.focus == FocusReport {
		lines[1] = mutedStyle.Render(m.pathInput.Prompt + m.pathInput.Value())
	}
	return strings.Join(lines, "\n")
}

func renderSubmitControl(c submitControl) string {
	style := lipgloss.NewStyle().Padding(0, 2).Bold(true)
	if c.disabled {
		style = style.Foreground(colorMuted).Background(lipgloss.Color("237"))
	} else {
		style = style.Foreground(lipgloss.Color("231")).Background(colorAccent)
	}
	return style.Render(c.Label())
}

func renderCompletion(c PathCompletion) string {
	selectedStyle := lipgloss.NewStyle().Reverse(true)
	mutedStyle := lipgloss.NewStyle().Foreground(colorMuted)

	start := 0
	if c.Selected >= completionVisibleRows {
		start = c.Selected - completionVisibleRows + 1
	}
	end := min(start+completionVisibleRows, len(c.Matches))

	lines := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		line := "  " + c.Matches[i]
		if i == c.Selected {
			line = selectedStyle.Render("> " + c.Matches[i])
		}
		lines = append(lines, line)
	}
	if hidden := len(c.Matches) - end; hidden > 0 {
		lines = append(lines, mutedStyle.Render("  ..."))
	}
	return strings.Join(lines, "\n")
}

// resolvePath maps the input value to a filesystem path. Relative paths are
// taken from the workspace root; an empty value stays empty.
func (m Model) resolvePath(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(m.workspaceRoot, filepath.FromSlash(value))
}
