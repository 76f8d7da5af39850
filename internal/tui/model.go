package tui

import (
	"context"
	"strings"
	"time"

	"github.com/Harshitr03/Code-Reviewer/internal/report"
	"github.com/Harshitr03/Code-Reviewer/internal/reviewapi"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type Focus int

const (
	FocusForm Focus = iota
	FocusReport
)

// Options configures a Model.
type Options struct {
	Service       ReviewService
	BaseURL       string
	WorkspaceRoot string
	AltScreen     bool
}

type Model struct {
	service       ReviewService
	baseURL       string
	workspaceRoot string

	ctx          context.Context
	actionCancel context.CancelFunc

	pathInput      textinput.Model
	submit         submitControl
	message        *ActionOutput
	report         *report.View
	rawCodeVisible bool
	reportOffset   int
	focus          Focus
	completion     PathCompletion

	windowWidth  int
	windowHeight int
	spinnerIndex int

	// seq identifies the current submission; report loads carrying an older
	// seq are dropped.
	seq      int
	fetching bool
}

func NewModel(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "path/to/file.py"
	input.Prompt = "File: "
	input.CharLimit = 4096
	input.Focus()

	root := opts.WorkspaceRoot
	if root == "" {
		root = "."
	}

	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		service:       opts.Service,
		baseURL:       opts.BaseURL,
		workspaceRoot: root,
		ctx:           ctx,
		actionCancel:  cancel,
		pathInput:     input,
		focus:         FocusForm,
		completion:    PathCompletion{Selected: -1},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

type spinnerTickMsg struct{}

func spinnerTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

func (m Model) busy() bool {
	return m.submit.disabled || m.fetching
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = typed.Width
		m.windowHeight = typed.Height
		m.pathInput.Width = max(typed.Width-len(m.pathInput.Prompt)-2, 10)
		return m, nil
	case spinnerTickMsg:
		if !m.busy() {
			return m, nil
		}
		m.spinnerIndex = (m.spinnerIndex + 1) % len(spinnerFrames)
		return m, spinnerTickCmd()
	case submitSettledMsg:
		return m.handleSubmitSettled(typed)
	case reportLoadedMsg:
		return m.handleReportLoaded(typed)
	case tea.KeyMsg:
		return m.handleKey(typed)
	}

	if m.focus == FocusForm {
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.actionCancel != nil {
			m.actionCancel()
		}
		return m, tea.Quit
	case "ctrl+r":
		return m.toggleRawCode(), nil
	case "tab":
		if m.focus == FocusForm {
			if next, completed := m.completePathInput(); completed {
				return next, nil
			}
			if m.report == nil {
				return m, nil
			}
			m.focus = FocusReport
			m.pathInput.Blur()
			m.completion.Close()
			return m, nil
		}
		m.focus = FocusForm
		return m, m.pathInput.Focus()
	case "esc":
		if m.completion.Open {
			m.completion.Close()
		}
		return m, nil
	}

	if m.focus == FocusReport {
		return m.handleReportKey(msg)
	}
	return m.handleFormKey(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.completion.Open {
			if match, ok := m.completion.SelectedMatch(); ok {
				m.pathInput.SetValue(match)
				m.pathInput.CursorEnd()
				m.completion.Close()
				return m, nil
			}
		}
		return m.startSubmit()
	case "up":
		if m.completion.Open {
			m.completion.MoveSelection(-1)
		}
		return m, nil
	case "down":
		if m.completion.Open {
			m.completion.MoveSelection(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	if m.completion.Open {
		m.completion.Close()
	}
	return m, cmd
}

func (m Model) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	page := m.reportPageSize()
	switch msg.String() {
	case "r":
		return m.toggleRawCode(), nil
	case "up", "k":
		m.reportOffset--
	case "down", "j":
		m.reportOffset++
	case "pgup", "pageup":
		m.reportOffset -= page
	case "pgdown", "pagedown", " ":
		m.reportOffset += page
	case "home", "g":
		m.reportOffset = 0
	case "end", "G":
		m.reportOffset = m.maxReportOffset()
	default:
		return m, nil
	}
	if m.reportOffset < 0 {
		m.reportOffset = 0
	}
	if maxOffset := m.maxReportOffset(); m.reportOffset > maxOffset {
		m.reportOffset = maxOffset
	}
	return m, nil
}

// startSubmit is the Submit operation. The control is acquired before
// anything else and released on every path that does not issue submitCmd.
func (m Model) startSubmit() (tea.Model, tea.Cmd) {
	if !m.submit.acquire() {
		return m, nil
	}
	m.message = nil
	m.report = nil
	m.rawCodeVisible = false
	m.reportOffset = 0
	m.fetching = false
	m.seq++

	upload, err := reviewapi.LoadUpload(m.resolvePath(m.pathInput.Value()))
	if err != nil {
		m.submit.release()
		m.message = errorOutput(reviewapi.SubmitErrorMessage(err))
		return m, nil
	}
	if m.service == nil {
		m.submit.release()
		m.message = errorOutput(reviewapi.SubmitErrorMessage(&reviewapi.TransportError{Op: "submit", Err: errNoService}))
		return m, nil
	}
	return m, tea.Batch(submitCmd(m.ctx, m.service, m.seq, upload), spinnerTickCmd())
}

func (m Model) handleSubmitSettled(msg submitSettledMsg) (tea.Model, tea.Cmd) {
	m.submit.release()
	if msg.Seq != m.seq {
		return m, nil
	}
	if msg.Err != nil {
		m.message = errorOutput(reviewapi.SubmitErrorMessage(msg.Err))
		return m, nil
	}
	reportID := msg.Result.ReportID
	m.message = successOutput(reviewapi.SubmittedMessage(reportID))
	m.fetching = true
	return m, tea.Batch(fetchReportCmd(m.ctx, m.service, msg.Seq, reportID), spinnerTickCmd())
}

func (m Model) handleReportLoaded(msg reportLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.seq {
		return m, nil
	}
	m.fetching = false
	if msg.Err != nil {
		m.message = errorOutput(reviewapi.ReportErrorMessage(msg.Err))
		return m, nil
	}
	m = m.render(msg.Data)
	return m, nil
}

// render replaces the report section with data: raw code hidden, section
// shown, scrolled to the top.
func (m Model) render(data reviewapi.ReportData) Model {
	view := report.Build(data)
	m.report = &view
	m.rawCodeVisible = false
	m.reportOffset = 0
	return m
}

func (m Model) toggleRawCode() Model {
	if m.report == nil {
		return m
	}
	m.rawCodeVisible = !m.rawCodeVisible
	return m
}

func (m Model) completePathInput() (Model, bool) {
	query := strings.TrimSpace(m.pathInput.Value())
	if m.completion.Open {
		m.completion.MoveSelection(1)
		return m, true
	}
	matches, err := completePath(m.workspaceRoot, query, pathCompletionMaxResults)
	if err != nil || len(matches) == 0 {
		return m, false
	}
	if len(matches) == 1 {
		if matches[0] == query {
			return m, false
		}
		m.pathInput.SetValue(matches[0])
		m.pathInput.CursorEnd()
		return m, true
	}
	if prefix := commonPrefix(matches); len(prefix) > len(query) {
		m.pathInput.SetValue(prefix)
		m.pathInput.CursorEnd()
	}
	m.completion.SetMatches(matches)
	return m, true
}

func (m Model) View() string {
	availableHeight := m.windowHeight - 2
	if m.windowHeight > 0 && availableHeight <= 0 {
		return RenderBottomBar(m)
	}

	var b strings.Builder
	b.WriteString(RenderForm(m))
	if m.message != nil {
		b.WriteString("\n")
		b.WriteString(RenderActionOutput(m.message, m.windowWidth))
	}
	content := b.String()

	if m.report != nil {
		body := RenderReport(*m.report, m.rawCodeVisible, m.contentWidth())
		height := 0
		if m.windowHeight > 0 {
			height = max(availableHeight-lineCount(content)-1, 1)
		}
		content += "\n\n" + applyViewport(body, m.contentWidth(), height, m.reportOffset)
	}

	if m.windowHeight > 1 {
		return content + "\n" + RenderBottomBar(m)
	}
	return content
}

func (m Model) contentWidth() int {
	return m.windowWidth
}

func (m Model) reportBodyHeight() int {
	if m.windowHeight <= 0 {
		return 0
	}
	header := RenderForm(m)
	if m.message != nil {
		header += "\n" + RenderActionOutput(m.message, m.windowWidth)
	}
	return max(m.windowHeight-2-lineCount(header)-1, 1)
}

func (m Model) reportPageSize() int {
	return max(m.reportBodyHeight()-1, 1)
}

func (m Model) maxReportOffset() int {
	if m.report == nil {
		return 0
	}
	body := RenderReport(*m.report, m.rawCodeVisible, m.contentWidth())
	return max(lineCount(body)-m.reportBodyHeight(), 0)
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
