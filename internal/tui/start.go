package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Start runs the interactive client until the user quits.
func Start(opts Options) error {
	model := NewModel(opts)
	programOpts := []tea.ProgramOption{}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, programOpts...)
	_, err := program.Run()
	model.actionCancel()
	return err
}
