package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const fetchingLabel = "Loading report..."

var spinnerFrames = []string{"|", "/", "-", "\\"}

func RenderBottomBar(model Model) string {
	left := strings.Join(actionHints(model), " ")

	if model.busy() {
		frame := spinnerFrames[model.spinnerIndex%len(spinnerFrames)]
		label := model.submit.Label()
		if !model.submit.disabled {
			label = fetchingLabel
		}
		left = fmt.Sprintf("%s | %s %s", left, frame, label)
	}

	right := model.baseURL
	contentWidth := model.windowWidth
	padding := 1
	if contentWidth > 0 {
		contentWidth = max(contentWidth-padding*2, 0)
	}
	bar := layoutBar(left, right, contentWidth)

	style := lipgloss.NewStyle().Reverse(true).Padding(0, padding)
	return style.Render(bar)
}

func actionHints(model Model) []string {
	if model.focus == FocusReport {
		return []string{"[↑/↓]scroll", "[r]aw-code", "[tab]form", "[ctrl+c]quit"}
	}
	actions := make([]string, 0, 4)
	if !model.submit.disabled {
		actions = append(actions, "[enter]submit")
	}
	actions = append(actions, "[tab]complete")
	if model.report != nil {
		actions = append(actions, "[ctrl+r]raw-code")
	}
	return append(actions, "[ctrl+c]quit")
}

func layoutBar(left string, right string, width int) string {
	if width <= 0 {
		return left + " " + right
	}
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := width - leftWidth - rightWidth
	if gap < 1 {
		availableLeft := width - rightWidth - 1
		if availableLeft < 0 {
			return truncate(right, width)
		}
		left = truncate(left, availableLeft)
		leftWidth = lipgloss.Width(left)
		gap = max(width-leftWidth-rightWidth, 1)
	}
	bar := left + strings.Repeat(" ", gap) + right
	return truncate(bar, width)
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
