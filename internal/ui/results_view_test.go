package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentply/contentply/internal/domain"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleResult() *domain.RepurposeResult {
	email := domain.NewFlatVariant(domain.LabelPositional, "", "Dear reader")
	email.Subject = "Weekly notes"
	return &domain.RepurposeResult{
		Success: true,
		Results: map[domain.Platform][]domain.Variant{
			domain.PlatformLinkedIn: {
				domain.NewFlatVariant(domain.LabelType, "Insight", "first post"),
				domain.NewFlatVariant(domain.LabelType, "Story", "second post"),
			},
			domain.PlatformTwitter: {
				domain.NewThreadVariant(domain.LabelHook, "Hook", []string{"one", "two"}),
			},
			domain.PlatformEmail: {email},
			"threads":            {domain.NewFlatVariant(domain.LabelPositional, "", "extra")},
		},
	}
}

func TestResultsView_TabsListKnownPlatformsThenExtras(t *testing.T) {
	keys := NewKeyMap()
	view := NewResultsView(sampleResult(), &keys)

	assert.Equal(t, []domain.Platform{
		domain.PlatformLinkedIn,
		domain.PlatformTwitter,
		domain.PlatformInstagram,
		domain.PlatformEmail,
		domain.PlatformSummary,
		"threads",
	}, view.tabs)
	assert.Equal(t, domain.PlatformLinkedIn, view.Platform())
}

func TestResultsView_TabNavigationWraps(t *testing.T) {
	keys := NewKeyMap()
	view := NewResultsView(sampleResult(), &keys)

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.PlatformTwitter, view.Platform())

	view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.Platform("threads"), view.Platform())
}

func TestResultsView_VariantSelectionStaysInBounds(t *testing.T) {
	keys := NewKeyMap()
	view := NewResultsView(sampleResult(), &keys)
	view.SetSize(100, 40)

	view.Update(keyRunes("["))
	variant, ok := view.SelectedVariant()
	require.True(t, ok)
	assert.Equal(t, "first post", variant.Text())

	view.Update(keyRunes("]"))
	view.Update(keyRunes("]"))
	variant, ok = view.SelectedVariant()
	require.True(t, ok)
	assert.Equal(t, "second post", variant.Text())
}

func TestResultsView_CopySendsSelectedBody(t *testing.T) {
	keys := NewKeyMap()
	view := NewResultsView(sampleResult(), &keys)
	view.Update(tea.KeyMsg{Type: tea.KeyTab})

	_, cmd := view.Update(keyRunes("c"))
	require.NotNil(t, cmd)
	assert.Equal(t, copyVariantMsg{text: "one\n\ntwo"}, cmd())
}

func TestResultsView_CopyOnEmptyPlatformDoesNothing(t *testing.T) {
	keys := NewKeyMap()
	view := NewResultsView(sampleResult(), &keys)
	view.SetSize(100, 40)
	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, domain.PlatformInstagram, view.Platform())

	_, cmd := view.Update(keyRunes("c"))
	assert.Nil(t, cmd)
	assert.Contains(t, view.View(), "No content generated for Instagram")
}

func TestResultsView_ViewShowsSubjectAndThreadSize(t *testing.T) {
	keys := NewKeyMap()
	view := NewResultsView(sampleResult(), &keys)
	view.SetSize(100, 40)

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, view.View(), "2 tweets in thread")

	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	view.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, domain.PlatformEmail, view.Platform())
	assert.Contains(t, view.View(), "Subject: Weekly notes")
	assert.Contains(t, view.View(), "Variation 1")
}

func TestResultsView_ActionKeysEmitMessages(t *testing.T) {
	keys := NewKeyMap()
	view := NewResultsView(sampleResult(), &keys)

	_, cmd := view.Update(keyRunes("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, exportResultsMsg{}, cmd())

	_, cmd = view.Update(keyRunes("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, newContentMsg{}, cmd())
}
