package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitr03/Code-Reviewer/internal/reviewapi"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoService = errors.New("review service not configured")

// ReviewService is the part of reviewapi.Client the TUI drives.
type ReviewService interface {
	Submit(ctx context.Context, upload reviewapi.Upload) (reviewapi.SubmitResult, error)
	Report(ctx context.Context, reportID string) (reviewapi.ReportData, error)
}

// submitSettledMsg is produced exactly once per submitCmd, however the
// request ends.
type submitSettledMsg struct {
	Seq    int
	Result reviewapi.SubmitResult
	Err    error
}

type reportLoadedMsg struct {
	Seq      int
	ReportID string
	Data     reviewapi.ReportData
	Err      error
}

func submitCmd(ctx context.Context, svc ReviewService, seq int, upload reviewapi.Upload) tea.Cmd {
	return func() (msg tea.Msg) {
		settled := submitSettledMsg{Seq: seq}
		defer func() {
			if r := recover(); r != nil {
				settled = submitSettledMsg{
					Seq: seq,
					Err: &reviewapi.TransportError{Op: "submit", Err: fmt.Errorf("panic: %v", r)},
				}
			}
			msg = settled
		}()
		settled.Result, settled.Err = svc.Submit(ctx, upload)
		return settled
	}
}

func fetchReportCmd(ctx context.Context, svc ReviewService, seq int, reportID string) tea.Cmd {
	return func() (msg tea.Msg) {
		loaded := reportLoadedMsg{Seq: seq, ReportID: reportID}
		defer func() {
			if r := recover(); r != nil {
				loaded = reportLoadedMsg{
					Seq:      seq,
					ReportID: reportID,
					Err:      &reviewapi.TransportError{Op: "report", Err: fmt.Errorf("panic: %v", r)},
				}
			}
			msg = loaded
		}()
		loaded.Data, loaded.Err = svc.Report(ctx, reportID)
		return loaded
	}
}
