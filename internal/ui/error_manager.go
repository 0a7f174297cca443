package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg is sent after the clear delay to hide the current error or notice
type clearErrorMsg struct {
	generation int
}

// ErrorManager holds the error or confirmation notice shown at the bottom of
// the screen and clears it after a delay.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	generation      int
	notice          string
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{
		errorClearDelay: errorClearDelay,
	}
}

// SetError replaces any current error or notice with err
func (em *ErrorManager) SetError(err error) {
	em.currentError = err
	em.notice = ""
	em.generation++
}

// SetNotice replaces any current error or notice with a confirmation message
func (em *ErrorManager) SetNotice(notice string) {
	em.currentError = nil
	em.notice = notice
	em.generation++
}

// ClearError clears the current error and notice
func (em *ErrorManager) ClearError() {
	em.currentError = nil
	em.notice = ""
}

// GetError returns the current error
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// Notice returns the current confirmation notice
func (em *ErrorManager) Notice() string {
	return em.notice
}

// ClearAfterDelay returns a tea.Cmd that sends clearErrorMsg after the
// configured delay. A zero delay disables auto-clearing.
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	if em.errorClearDelay <= 0 {
		return nil
	}
	generation := em.generation
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{generation: generation}
	})
}

// HandleClear clears the message only if nothing newer was set since the
// tick was scheduled.
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.generation == em.generation {
		em.ClearError()
	}
}
