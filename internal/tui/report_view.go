package tui

import (
	"strings"

	"github.com/Harshitr03/Code-Reviewer/internal/report"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// RenderReport renders the report section body (before scrolling).
func RenderReport(v report.View, rawCodeVisible bool, width int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle := lipgloss.NewStyle().Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(colorMuted)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Report: " + v.Filename))
	b.WriteString("\n")
	if v.SubmittedAt != "" {
		b.WriteString(mutedStyle.Render("Submitted " + v.SubmittedAt))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderScores(v, width))
	b.WriteString("\n\n")

	writeSectionHeader(&b, headerStyle, "Summary")
	b.WriteString(wrap(v.Summary, width))
	b.WriteString("\n\n")

	writeSectionHeader(&b, headerStyle, "Best practices")
	b.WriteString(wrap(v.BestPractices, width))
	b.WriteString("\n\n")

	writeSectionHeader(&b, headerStyle, "Suggestions")
	if v.SuggestionsNote != "" {
		b.WriteString(mutedStyle.Italic(true).Render(v.SuggestionsNote))
		b.WriteString("\n")
	}
	for _, card := range v.Suggestions {
		b.WriteString(renderSuggestionCard(card, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	writeSectionHeader(&b, headerStyle, "Potential bugs")
	b.WriteString(renderBugs(v, width))
	b.WriteString("\n\n")

	writeSectionHeader(&b, headerStyle, "Raw code")
	if rawCodeVisible {
		b.WriteString(renderCodeBlock(v.RawCode, width))
	} else {
		b.WriteString(labelStyle.Render("[r]") + mutedStyle.Render(" show raw code"))
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderScores(v report.View, width int) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 2).
		Align(lipgloss.Center)
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle := lipgloss.NewStyle().Foreground(colorMuted)

	readability := boxStyle.Render(valueStyle.Render(v.Readability) + "\n" + labelStyle.Render("Readability"))
	modularity := boxStyle.Render(valueStyle.Render(v.Modularity) + "\n" + labelStyle.Render("Modularity"))
	return lipgloss.JoinHorizontal(lipgloss.Top, readability, " ", modularity)
}

func renderSuggestionCard(card report.Card, width int) string {
	areaStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(colorAccent).
		PaddingLeft(1).
		MarginTop(1)

	inner := width - 2
	lines := []string{
		areaStyle.Render(card.Area),
		wrap(card.Detail, inner),
	}
	if card.HasExample {
		lines = append(lines, renderCodeBlock(card.Example, inner))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// bugPaletteStyle returns the bug container style: warning (red) while
// there are bugs, success (green) when none were reported.
func bugPaletteStyle(p report.Palette) lipgloss.Style {
	color := colorError
	if p == report.PaletteSuccess {
		color = colorSuccess
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Padding(0, 1)
}

func renderBugs(v report.View, width int) string {
	style := bugPaletteStyle(v.BugPalette)
	if width > 4 {
		style = style.Width(width - 4)
	}
	if v.BugsNote != "" {
		return style.Render(v.BugsNote)
	}
	items := make([]string, 0, len(v.Bugs))
	for _, bug := range v.Bugs {
		items = append(items, "• "+bug)
	}
	return style.Render(strings.Join(items, "\n"))
}

func renderCodeBlock(code string, width int) string {
	style := lipgloss.NewStyle().
		Background(colorCodeBg).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1).
		MarginTop(1)
	inner := width - style.GetHorizontalFrameSize()
	return style.Render(wrapCode(strings.TrimRight(code, "\n"), inner))
}

// wrapCode hard-wraps every line of code at width cells. Tabs are expanded
// first so the cell count matches what the terminal draws.
func wrapCode(code string, width int) string {
	code = strings.ReplaceAll(code, "\t", "    ")
	if width <= 0 {
		return code
	}
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	if lipgloss.Width(line) <= width {
		return []string{line}
	}
	var parts []string
	var b strings.Builder
	cells := 0
	for _, r := range line {
		w := lipgloss.Width(string(r))
		if cells > 0 && cells+w > width {
			parts = append(parts, b.String())
			b.Reset()
			cells = 0
		}
		b.WriteRune(r)
		cells += w
	}
	return append(parts, b.String())
}

func writeSectionHeader(b *strings.Builder, style lipgloss.Style, title string) {
	b.WriteString(style.Render(title))
	b.WriteString("\n")
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// applyViewport renders content scrolled to offset within a width x height
// window. Offsets past the end are clamped.
func applyViewport(content string, width, height, offset int) string {
	if height <= 0 || width <= 0 {
		return content
	}
	view := viewport.New(width, height)
	view.SetContent(content)
	view.SetYOffset(clampOffset(content, height, offset))
	return view.View()
}

func clampOffset(content string, height, offset int) int {
	if offset < 0 {
		return 0
	}
	maxOffset := lipgloss.Height(content) - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
