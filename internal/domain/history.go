package domain

import (
	"time"
	"unicode/utf8"
)

// MaxHistoryEntries bounds the persisted history
const MaxHistoryEntries = 50

// PreviewLength is the number of characters kept from submitted content
const PreviewLength = 100

// Per-repurpose increments applied to UsageStats
const (
	PostsPerRepurpose      = 25
	HoursSavedPerRepurpose = 2
)

// InputMode says whether the submitted content is a URL or pasted text
type InputMode string

const (
	ModeText InputMode = "text"
	ModeURL  InputMode = "url"
)

// ModeFor maps the isURL flag to an InputMode
func ModeFor(isURL bool) InputMode {
	if isURL {
		return ModeURL
	}
	return ModeText
}

// HistoryEntry records one successful repurpose. Entries are never modified.
type HistoryEntry struct {
	ContentPreview string     `json:"content" yaml:"content"`
	ID             string     `json:"id" yaml:"id"`
	Mode           InputMode  `json:"type" yaml:"type"`
	Platforms      []Platform `json:"platforms" yaml:"platforms"`
	Timestamp      time.Time  `json:"timestamp" yaml:"timestamp"`
}

// UsageStats are lifetime counters, only ever incremented
type UsageStats struct {
	EstimatedHoursSaved     int `json:"hours" yaml:"hours"`
	EstimatedPostsGenerated int `json:"posts" yaml:"posts"`
	TotalRepurposes         int `json:"total" yaml:"total"`
}

// RecordRepurpose applies the fixed per-repurpose increments
func (s *UsageStats) RecordRepurpose() {
	s.TotalRepurposes++
	s.EstimatedPostsGenerated += PostsPerRepurpose
	s.EstimatedHoursSaved += HoursSavedPerRepurpose
}

// Preview returns the first n characters of content
func Preview(content string, n int) string {
	if utf8.RuneCountInString(content) <= n {
		return content
	}
	runes := []rune(content)
	return string(runes[:n])
}

// PrependHistory inserts entry at the head and drops the oldest entries
// beyond MaxHistoryEntries. The input slice is not modified.
func PrependHistory(history []HistoryEntry, entry HistoryEntry) []HistoryEntry {
	updated := make([]HistoryEntry, 0, len(history)+1)
	updated = append(updated, entry)
	updated = append(updated, history...)
	if len(updated) > MaxHistoryEntries {
		updated = updated[:MaxHistoryEntries]
	}
	return updated
}
