package ui

import (
	"github.com/contentply/contentply/internal/domain"
)

// CreditsUpdatedMsg carries a quota snapshot read by the model
type CreditsUpdatedMsg struct {
	Snapshot domain.QuotaSnapshot
}

// creditsChangedMsg carries a snapshot pushed by the quota subscription
type creditsChangedMsg struct {
	snapshot domain.QuotaSnapshot
}

// creditsLoadFailedMsg reports that the quota could not be read
type creditsLoadFailedMsg struct {
	err error
}

// modeLoadedMsg reports whether the webhook is unconfigured
type modeLoadedMsg struct {
	mockMode bool
}

// submitFinishedMsg carries the outcome of a submission
type submitFinishedMsg struct {
	err    error
	result *domain.RepurposeResult
}

// copyVariantMsg asks the model to copy text to the clipboard
type copyVariantMsg struct {
	text string
}

// exportResultsMsg asks the model to export the current result
type exportResultsMsg struct{}

// exportFinishedMsg carries the written file path or the failure
type exportFinishedMsg struct {
	err  error
	path string
}

// newContentMsg asks the model to discard the result and show the input form
type newContentMsg struct{}

// historyLoadedMsg carries the history and stats for the history screen
type historyLoadedMsg struct {
	entries []domain.HistoryEntry
	err     error
	stats   domain.UsageStats
}
