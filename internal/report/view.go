// Package report turns a fetched review into what the user sees: header
// fields with fallbacks, suggestion cards, the bug list and its palette,
// and the raw source kept aside for on-demand display.
package report

import (
	"strconv"
	"strings"

	"github.com/Harshitr03/Code-Reviewer/internal/reviewapi"
)

const (
	ScoreFallback         = "--"
	SummaryFallback       = "No summary provided by LLM."
	BestPracticesFallback = "No comment provided by LLM."
	NoSuggestionsNote     = "No specific improvement suggestions were generated."
	NoBugsNote            = "No critical bugs or vulnerabilities were immediately identified."
)

// Palette selects the styling of the bug container.
type Palette int

const (
	PaletteWarning Palette = iota
	PaletteSuccess
)

func (p Palette) String() string {
	if p == PaletteSuccess {
		return "success"
	}
	return "warning"
}

// Card is one rendered suggestion. Example is only meaningful when
// HasExample is set.
type Card struct {
	Area       string
	Detail     string
	Example    string
	HasExample bool
}

type View struct {
	Filename        string
	SubmittedAt     string
	Readability     string
	Modularity      string
	Summary         string
	BestPractices   string
	Suggestions     []Card
	SuggestionsNote string
	Bugs            []string
	BugsNote        string
	BugPalette      Palette
	RawCode         string
}

// Build produces a fresh View from a fetched report. Nothing is carried
// over from a previous render.
func Build(data reviewapi.ReportData) View {
	review := data.Review
	v := View{
		Filename:      data.Filename,
		SubmittedAt:   data.SubmittedAt,
		Readability:   formatScore(review.ReadabilityScore),
		Modularity:    formatScore(review.ModularityScore),
		Summary:       textOr(review.ReviewSummary, SummaryFallback),
		BestPractices: textOr(review.BestPracticesAdherence, BestPracticesFallback),
		RawCode:       data.RawCode,
	}

	v.Suggestions = make([]Card, 0, len(review.Suggestions))
	for _, s := range review.Suggestions {
		card := Card{Area: s.Area, Detail: s.Detail}
		if s.HasExample() {
			card.Example = *s.ExampleCode
			card.HasExample = true
		}
		v.Suggestions = append(v.Suggestions, card)
	}
	if len(v.Suggestions) == 0 {
		v.SuggestionsNote = NoSuggestionsNote
	}

	v.Bugs = make([]string, 0, len(review.PotentialBugs))
	v.Bugs = append(v.Bugs, review.PotentialBugs...)
	if len(v.Bugs) == 0 {
		v.BugsNote = NoBugsNote
		v.BugPalette = PaletteSuccess
	} else {
		v.BugPalette = PaletteWarning
	}
	return v
}

func formatScore(score *float64) string {
	if score == nil {
		return ScoreFallback
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}

func textOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
