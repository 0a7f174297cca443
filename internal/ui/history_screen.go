package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/theme"
)

// HistoryScreen lists recent repurposes and the lifetime usage stats
type HistoryScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// buildHistoryContent renders stats followed by one block per entry, newest first
func buildHistoryContent(entries []domain.HistoryEntry, stats domain.UsageStats) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Your stats") + "\n")
	b.WriteString(renderShortcut(fmt.Sprintf("%d", stats.TotalRepurposes), "pieces of content repurposed"))
	b.WriteString(renderShortcut(fmt.Sprintf("%d", stats.EstimatedPostsGenerated), "posts generated"))
	b.WriteString(renderShortcut(fmt.Sprintf("%dh", stats.EstimatedHoursSaved), "hours saved"))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Recent repurposes") + "\n")
	if len(entries) == 0 {
		b.WriteString(theme.MutedStyle.Render("Nothing repurposed yet") + "\n")
		return b.String()
	}

	for _, entry := range entries {
		platforms := make([]string, len(entry.Platforms))
		for i, p := range entry.Platforms {
			platforms[i] = p.Title()
		}
		when := humanize.Time(entry.Timestamp)
		b.WriteString(theme.LabelStyle.Render(string(entry.Mode)) + " " + theme.MutedStyle.Render(when) + "\n")
		b.WriteString(strings.ReplaceAll(entry.ContentPreview, "\n", " ") + "\n")
		b.WriteString(theme.MutedStyle.Render(strings.Join(platforms, ", ")) + "\n\n")
	}
	return b.String()
}

// NewHistoryScreen creates a history screen for the given entries and stats
func NewHistoryScreen(entries []domain.HistoryEntry, stats domain.UsageStats, keys *KeyMap) *HistoryScreen {
	return &HistoryScreen{
		content:  buildHistoryContent(entries, stats),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HistoryScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HistoryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.History) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HistoryScreen) View() string {
	if !h.initialized {
		return "Loading history..."
	}
	footer := theme.HelpStyle.Render("Press esc or q to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
