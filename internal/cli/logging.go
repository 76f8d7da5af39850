package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Harshitr03/Code-Reviewer/internal/reviewapi"
	tea "github.com/charmbracelet/bubbletea"
)

const logPrefix = "reviewer"

func noopClose() {}

// tuiLogger routes the standard logger to path while the interactive client
// owns the terminal. With no path, logs are discarded.
func tuiLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), noopClose, nil
	}
	f, err := tea.LogToFile(path, logPrefix)
	if err != nil {
		return nil, noopClose, fmt.Errorf("open log file: %w", err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}

// commandLogger picks the logger for non-interactive commands: stderr when
// verbose, the configured log file otherwise, or nothing.
func commandLogger(stderr io.Writer, path string, verbose bool) (*log.Logger, func(), error) {
	if verbose {
		return log.New(stderr, logPrefix+" ", log.LstdFlags), noopClose, nil
	}
	if path == "" {
		return log.New(io.Discard, "", 0), noopClose, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noopClose, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, logPrefix+" ", log.LstdFlags), func() { _ = f.Close() }, nil
}

func (a *app) newClient(logger *log.Logger) (*reviewapi.Client, error) {
	opts := []reviewapi.Option{reviewapi.WithLogger(logger)}
	if a.env.HTTPClient != nil {
		opts = append(opts, reviewapi.WithHTTPClient(a.env.HTTPClient))
	}
	client, err := reviewapi.New(a.cfg.API.BaseURL, opts...)
	if err != nil {
		return nil, UsageError{Message: err.Error()}
	}
	return client, nil
}
