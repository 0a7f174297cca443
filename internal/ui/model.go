package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ports"
	"github.com/contentply/contentply/internal/services"
	"github.com/contentply/contentply/internal/theme"
)

// MsgCopyFailed is shown when the clipboard rejects the text
const MsgCopyFailed = "Failed to copy to clipboard"

type uiState int

const (
	stateInput uiState = iota
	stateHelp
	stateHistory
	stateLoading
	stateResults
	stateSettings
)

// Services groups the services the TUI drives
type Services struct {
	Export    *services.ExportService
	History   *services.HistoryService
	Quota     *services.QuotaService
	Repurpose *services.RepurposeService
	Settings  *services.SettingsService
}

type Model struct {
	clipboard     ports.Clipboard
	ctx           context.Context
	credits       domain.QuotaSnapshot
	creditsDone   chan struct{}
	creditUpdates chan domain.QuotaSnapshot
	devMode       bool
	errorManager  *ErrorManager
	exportDir     string
	height        int
	helpScreen    *Dialog
	historyScreen *Dialog
	inputForm     *InputForm
	keys          KeyMap
	lastInput     InputFormResult
	mockMode      bool
	previousState uiState
	results       *ResultsView
	services      Services
	settingsForm  *Dialog
	spinner       spinner.Model
	state         uiState
	width         int
}

// NewModel creates the root TUI model. ctx bounds every submission started
// from this model.
func NewModel(
	ctx context.Context,
	svcs Services,
	clipboard ports.Clipboard,
	errorClearDelay time.Duration,
	exportDir string,
	devMode bool,
) *Model {
	return &Model{
		clipboard:    clipboard,
		ctx:          ctx,
		devMode:      devMode,
		errorManager: NewErrorManager(errorClearDelay),
		exportDir:    exportDir,
		inputForm:    NewInputForm(InputFormResult{}),
		keys:         NewKeyMap(),
		services:     svcs,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.SpinnerStyle),
		),
		state: stateInput,
	}
}

// WatchCredits keeps the header in sync with quota changes made anywhere in
// the process, including other SSH sessions. Call it before the program starts
// and call stop once it has exited.
func (m *Model) WatchCredits() (stop func()) {
	updates := make(chan domain.QuotaSnapshot, 1)
	done := make(chan struct{})
	m.creditUpdates = updates
	m.creditsDone = done

	unsubscribe := m.services.Quota.Subscribe(func(snapshot domain.QuotaSnapshot) {
		for {
			select {
			case updates <- snapshot:
				return
			case <-done:
				return
			default:
			}
			// Keep only the latest snapshot
			select {
			case <-updates:
			default:
			}
		}
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			close(done)
		})
	}
}

// waitForCredits blocks until the quota changes or the watch stops
func (m *Model) waitForCredits() tea.Cmd {
	if m.creditUpdates == nil {
		return nil
	}
	updates := m.creditUpdates
	done := m.creditsDone
	return func() tea.Msg {
		select {
		case snapshot := <-updates:
			return creditsChangedMsg{snapshot: snapshot}
		case <-done:
			return nil
		}
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.inputForm.Init(), m.loadCredits(), m.loadMode(), m.waitForCredits())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.results != nil {
			m.results.SetSize(msg.Width, msg.Height)
		}
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Application.ForceQuit) && m.state != stateSettings {
			return m, tea.Quit
		}
	case CreditsUpdatedMsg:
		m.credits = msg.Snapshot
		return m, nil
	case creditsChangedMsg:
		m.credits = msg.snapshot
		return m, m.waitForCredits()
	case creditsLoadFailedMsg:
		m.errorManager.SetError(msg.err)
		return m, m.errorManager.ClearAfterDelay()
	case modeLoadedMsg:
		m.mockMode = msg.mockMode
		return m, nil
	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil
	case submitFinishedMsg:
		return m.handleSubmitFinished(msg)
	case copyVariantMsg:
		return m.handleCopy(msg.text)
	case exportResultsMsg:
		return m, m.exportResults()
	case exportFinishedMsg:
		if msg.err != nil {
			m.errorManager.SetError(msg.err)
		} else {
			m.errorManager.SetNotice("Exported to " + msg.path)
		}
		return m, m.errorManager.ClearAfterDelay()
	case newContentMsg:
		return m.resetToInput(InputFormResult{})
	case historyLoadedMsg:
		if msg.err != nil {
			m.errorManager.SetError(msg.err)
			return m, m.errorManager.ClearAfterDelay()
		}
		return m.openDialog(stateHistory, "Recent repurposes", NewHistoryScreen(msg.entries, msg.stats, &m.keys))
	}

	switch m.state {
	case stateInput:
		return m.updateInput(msg)
	case stateLoading:
		return m.updateLoading(msg)
	case stateResults:
		return m.updateResults(msg)
	case stateSettings:
		return m.updateSettings(msg)
	case stateHistory:
		return m.updateHistory(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Application.Settings):
			return m.openDialog(stateSettings, "Settings", NewSettingsForm(m.services.Settings))
		case key.Matches(keyMsg, m.keys.Application.History):
			return m, m.loadHistory()
		case keyMsg.Type == tea.KeyF1:
			return m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))
		}
	}

	_, cmd := m.inputForm.Update(msg)
	if !m.inputForm.Completed {
		return m, cmd
	}

	m.lastInput = m.inputForm.Result()
	m.errorManager.ClearError()
	m.state = stateLoading
	logging.Logger.Info("Starting submission", "is_url", m.lastInput.IsURL)
	return m, tea.Batch(m.spinner.Tick, m.submit(m.lastInput))
}

func (m *Model) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Application.Quit):
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Application.Settings):
			return m.openDialog(stateSettings, "Settings", NewSettingsForm(m.services.Settings))
		case key.Matches(keyMsg, m.keys.Application.History):
			return m, m.loadHistory()
		case key.Matches(keyMsg, m.keys.Application.Help):
			return m.openDialog(stateHelp, "Help", NewHelpScreen(&m.keys))
		}
	}

	_, cmd := m.results.Update(msg)
	return m, cmd
}

func (m *Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.settingsForm.Update(msg)
	m.settingsForm = updated.(*Dialog)

	form, ok := m.settingsForm.Content().(*SettingsForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.state = m.previousState
	m.settingsForm = nil

	result := form.Result()
	switch {
	case result.Cancelled:
		return m, nil
	case result.Error != nil:
		m.errorManager.SetError(result.Error)
	default:
		m.mockMode = result.MockMode
		m.errorManager.SetNotice(MsgSettingsSaved)
	}
	return m, m.errorManager.ClearAfterDelay()
}

func (m *Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.historyScreen.Update(msg)
	m.historyScreen = updated.(*Dialog)

	if screen, ok := m.historyScreen.Content().(*HistoryScreen); ok && screen.Completed {
		m.state = m.previousState
		m.historyScreen = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if screen, ok := m.helpScreen.Content().(*HelpScreen); ok && screen.Completed {
		m.state = m.previousState
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

// openDialog wraps content in a Dialog, remembers where to return to and
// sends the current size so viewports can initialize.
func (m *Model) openDialog(state uiState, title string, content tea.Model) (tea.Model, tea.Cmd) {
	if m.state != stateInput && m.state != stateResults {
		return m, nil
	}

	dialog := NewDialog(title, content, m.devMode)
	initCmd := dialog.Init()
	_, sizeCmd := dialog.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})

	switch state {
	case stateSettings:
		m.settingsForm = dialog
	case stateHistory:
		m.historyScreen = dialog
	case stateHelp:
		m.helpScreen = dialog
	}
	m.previousState = m.state
	m.state = state
	return m, tea.Batch(initCmd, sizeCmd)
}

func (m *Model) handleSubmitFinished(msg submitFinishedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logging.Logger.Warn("Submission failed", "error", msg.err)
		_, cmd := m.resetToInput(m.lastInput)
		m.errorManager.SetError(msg.err)
		return m, tea.Batch(cmd, m.errorManager.ClearAfterDelay())
	}

	m.results = NewResultsView(msg.result, &m.keys)
	m.results.SetSize(m.width, m.height)
	m.state = stateResults
	return m, m.loadCredits()
}

func (m *Model) handleCopy(text string) (tea.Model, tea.Cmd) {
	if err := m.clipboard.Copy(text); err != nil {
		logging.Logger.Error("Failed to copy to clipboard", "error", err)
		m.errorManager.SetError(errors.New(MsgCopyFailed))
	} else {
		m.errorManager.SetNotice("Copied!")
	}
	return m, m.errorManager.ClearAfterDelay()
}

// resetToInput discards any result and shows a new input form pre-filled with previous
func (m *Model) resetToInput(previous InputFormResult) (tea.Model, tea.Cmd) {
	m.results = nil
	m.inputForm = NewInputForm(previous)
	m.state = stateInput
	return m, m.inputForm.Init()
}

func (m *Model) submit(input InputFormResult) tea.Cmd {
	ctx := m.ctx
	repurpose := m.services.Repurpose
	return func() tea.Msg {
		result, err := repurpose.Submit(ctx, input.Content, input.IsURL)
		return submitFinishedMsg{err: err, result: result}
	}
}

func (m *Model) exportResults() tea.Cmd {
	if m.results == nil {
		return nil
	}
	result := m.results.result
	dir := m.exportDir
	exporter := m.services.Export
	return func() tea.Msg {
		path, err := exporter.Export(result, dir)
		if err != nil {
			return exportFinishedMsg{err: fmt.Errorf("failed to export results: %w", err)}
		}
		return exportFinishedMsg{path: path}
	}
}

func (m *Model) loadCredits() tea.Cmd {
	quota := m.services.Quota
	ctx := m.ctx
	return func() tea.Msg {
		snapshot, err := quota.Snapshot(ctx)
		if err != nil {
			return creditsLoadFailedMsg{err: fmt.Errorf("failed to load credits: %w", err)}
		}
		return CreditsUpdatedMsg{Snapshot: snapshot}
	}
}

func (m *Model) loadMode() tea.Cmd {
	settings := m.services.Settings
	ctx := m.ctx
	return func() tea.Msg {
		mockMode, err := settings.IsMockMode(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to read webhook mode", "error", err)
		}
		return modeLoadedMsg{mockMode: mockMode}
	}
}

func (m *Model) loadHistory() tea.Cmd {
	history := m.services.History
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := history.List(ctx)
		if err != nil {
			return historyLoadedMsg{err: fmt.Errorf("failed to load history: %w", err)}
		}
		stats, err := history.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{err: fmt.Errorf("failed to load stats: %w", err)}
		}
		return historyLoadedMsg{entries: entries, stats: stats}
	}
}

func (m *Model) View() string {
	switch m.state {
	case stateInput:
		return m.renderMainHeader() + "\n" + m.inputForm.View() + "\n" +
			theme.HelpStyle.Render("ctrl+s settings • ctrl+r history • f1 help • ctrl+c quit") + "\n" +
			m.renderStatusLine()
	case stateLoading:
		return m.renderMainHeader() + "\n" + m.spinner.View() + " " + loadingLabel(m.services.Repurpose.State()) + "\n"
	case stateResults:
		return m.renderMainHeader() + "\n" + m.results.View() + "\n" + m.renderStatusLine()
	case stateSettings:
		if m.settingsForm != nil {
			return m.settingsForm.View()
		}
	case stateHistory:
		if m.historyScreen != nil {
			return m.historyScreen.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	}
	return ""
}

func (m *Model) renderMainHeader() string {
	return renderHeader(m.devMode, "") + renderCredits(m.credits, m.mockMode) + "\n"
}

// renderStatusLine shows the current error or notice. The error takes priority.
func (m *Model) renderStatusLine() string {
	if m.errorManager.HasError() {
		return theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	}
	if notice := m.errorManager.Notice(); notice != "" {
		return theme.SuccessStyle.Render(notice)
	}
	return " "
}

// loadingLabel describes the submission phase shown next to the spinner
func loadingLabel(state domain.SubmissionState) string {
	switch state {
	case domain.SubmissionValidating:
		return "Checking your input..."
	case domain.SubmissionCheckingQuota:
		return "Checking your credits..."
	default:
		return "Repurposing your content..."
	}
}
