package cli

import (
	"fmt"
	"io"

	"github.com/Harshitr03/Code-Reviewer/internal/report"
	"github.com/Harshitr03/Code-Reviewer/internal/reviewapi"
	"github.com/spf13/cobra"
)

// MessageError carries the user-facing text for a failed operation while
// keeping the underlying error reachable through errors.Is/As.
type MessageError struct {
	Message string
	Err     error
}

func (e *MessageError) Error() string { return e.Message }

func (e *MessageError) Unwrap() error { return e.Err }

func (a *app) reviewCmd() *cobra.Command {
	var showRaw bool
	cmd := &cobra.Command{
		Use:   "review <file>",
		Short: "Upload a file for review and print the report",
		Args:  exactArgs(1, "review requires exactly 1 argument: <file>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			upload, err := reviewapi.LoadUpload(args[0])
			if err != nil {
				return &MessageError{Message: reviewapi.SubmitErrorMessage(err), Err: err}
			}

			logger, closeLog, err := commandLogger(a.env.Stderr, a.cfg.Log.File, a.verbose)
			if err != nil {
				return err
			}
			defer closeLog()
			client, err := a.newClient(logger)
			if err != nil {
				return err
			}

			result, err := client.Submit(cmd.Context(), upload)
			if err != nil {
				return &MessageError{Message: reviewapi.SubmitErrorMessage(err), Err: err}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, reviewapi.SubmittedMessage(result.ReportID))

			data, err := client.Report(cmd.Context(), result.ReportID)
			if err != nil {
				return &MessageError{Message: reviewapi.ReportErrorMessage(err), Err: err}
			}
			return printReport(out, data, showRaw)
		},
	}
	cmd.Flags().BoolVar(&showRaw, "raw", false, "Include the submitted source in the output")
	return cmd
}

func (a *app) reportCmd() *cobra.Command {
	var showRaw bool
	cmd := &cobra.Command{
		Use:   "report <id>",
		Short: "Fetch and print an existing report",
		Args:  exactArgs(1, "report requires exactly 1 argument: <id>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := commandLogger(a.env.Stderr, a.cfg.Log.File, a.verbose)
			if err != nil {
				return err
			}
			defer closeLog()
			client, err := a.newClient(logger)
			if err != nil {
				return err
			}

			data, err := client.Report(cmd.Context(), args[0])
			if err != nil {
				return &MessageError{Message: reviewapi.ReportErrorMessage(err), Err: err}
			}
			return printReport(cmd.OutOrStdout(), data, showRaw)
		},
	}
	cmd.Flags().BoolVar(&showRaw, "raw", false, "Include the submitted source in the output")
	return cmd
}

func printReport(w io.Writer, data reviewapi.ReportData, showRaw bool) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return report.WriteText(w, report.Build(data), report.TextOptions{ShowRawCode: showRaw})
}
