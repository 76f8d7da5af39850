package report

import (
	"fmt"
	"io"
	"strings"
)

type TextOptions struct {
	ShowRawCode bool
}

// WriteText renders a View as plain text for non-interactive output.
func WriteText(w io.Writer, v View, opts TextOptions) error {
	ew := &errWriter{w: w}

	ew.printf("Code Review: %s\n", v.Filename)
	if v.SubmittedAt != "" {
		ew.printf("Submitted: %s\n", v.SubmittedAt)
	}
	ew.println(strings.Repeat("─", 60))
	ew.printf("Readability: %s   Modularity: %s\n", v.Readability, v.Modularity)
	ew.println(strings.Repeat("─", 60))

	ew.println("\nSummary")
	ew.println(v.Summary)

	ew.println("\nBest practices")
	ew.println(v.BestPractices)

	ew.println("\nSuggestions")
	if v.SuggestionsNote != "" {
		ew.println("  " + v.SuggestionsNote)
	}
	for i, card := range v.Suggestions {
		ew.printf("\n  %d. %s\n", i+1, card.Area)
		ew.printf("     %s\n", card.Detail)
		if card.HasExample {
			ew.println("     ```")
			for _, line := range strings.Split(strings.TrimRight(card.Example, "\n"), "\n") {
				ew.printf("     %s\n", line)
			}
			ew.println("     ```")
		}
	}

	ew.printf("\nPotential bugs [%s]\n", v.BugPalette)
	if v.BugsNote != "" {
		ew.println("  " + v.BugsNote)
	}
	for _, bug := range v.Bugs {
		ew.printf("  - %s\n", bug)
	}

	if opts.ShowRawCode {
		ew.println("\nRaw code")
		ew.println(strings.Repeat("─", 60))
		ew.println(strings.TrimRight(v.RawCode, "\n"))
	}
	return ew.err
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
