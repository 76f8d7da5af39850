package reviewapi

import (
	"errors"
	"fmt"
)

const (
	MsgNoFile       = "Please select a file to upload."
	MsgFileTooLarge = "File too large. Please select a file under 1MB."

	fallbackSubmitError = "Unknown API error occurred."
	fallbackReportError = "Report not found."
)

// SubmitErrorMessage is the text shown when a submission fails.
func SubmitErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoFile):
		return MsgNoFile
	case errors.Is(err, ErrFileTooLarge):
		return MsgFileTooLarge
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "Review Failed: " + orDefault(apiErr.Message, fallbackSubmitError)
	}
	return "Network or server error: " + transportCause(err)
}

// SubmittedMessage confirms a submission and announces the report fetch.
func SubmittedMessage(reportID string) string {
	return fmt.Sprintf("Review complete! Report ID: %s. Now loading report...", reportID)
}

// ReportErrorMessage is the text shown when a report cannot be loaded.
func ReportErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return "Failed to load report: " + orDefault(apiErr.Message, fallbackReportError)
	}
	return "Error fetching report: " + transportCause(err)
}

func transportCause(err error) string {
	if err == nil {
		return "unknown error"
	}
	var tErr *TransportError
	if errors.As(err, &tErr) && tErr.Err != nil {
		return tErr.Err.Error()
	}
	return err.Error()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
