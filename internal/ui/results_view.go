package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/theme"
)

// resultsChromeHeight is the space taken by the header, credits, tabs and footer
const resultsChromeHeight = 11

// ResultsView shows the variants of one platform at a time as cards.
// One variant is selected; it is the one copied.
type ResultsView struct {
	cardOffsets []int
	height      int
	help        help.Model
	keys        *KeyMap
	result      *domain.RepurposeResult
	selected    map[domain.Platform]int
	tab         int
	tabs        []domain.Platform
	viewport    viewport.Model
	width       int
}

// NewResultsView creates a results view starting on the first platform
func NewResultsView(result *domain.RepurposeResult, keys *KeyMap) *ResultsView {
	tabs := slices.Clone(domain.KnownPlatforms)
	for _, p := range result.Platforms() {
		if !p.IsKnown() {
			tabs = append(tabs, p)
		}
	}

	r := &ResultsView{
		help:     help.New(),
		keys:     keys,
		result:   result,
		selected: make(map[domain.Platform]int),
		tabs:     tabs,
		viewport: viewport.New(0, 0),
	}
	r.refresh()
	return r
}

func (r *ResultsView) Init() tea.Cmd {
	return nil
}

func (r *ResultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.SetSize(msg.Width, msg.Height)
		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, r.keys.Results.NextTab):
			r.switchTab(1)
			return r, nil
		case key.Matches(msg, r.keys.Results.PrevTab):
			r.switchTab(-1)
			return r, nil
		case key.Matches(msg, r.keys.Results.NextVariant):
			r.moveSelection(1)
			return r, nil
		case key.Matches(msg, r.keys.Results.PrevVariant):
			r.moveSelection(-1)
			return r, nil
		case key.Matches(msg, r.keys.Results.Copy):
			variant, ok := r.SelectedVariant()
			if !ok {
				return r, nil
			}
			text := variant.Text()
			return r, func() tea.Msg { return copyVariantMsg{text: text} }
		case key.Matches(msg, r.keys.Results.Export):
			return r, func() tea.Msg { return exportResultsMsg{} }
		case key.Matches(msg, r.keys.Results.NewContent):
			return r, func() tea.Msg { return newContentMsg{} }
		}
	}

	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

func (r *ResultsView) View() string {
	footer := r.help.View(r.keys)
	return r.renderTabs() + "\n\n" + r.viewport.View() + "\n" + footer
}

// SetSize resizes the viewport and re-renders the cards for the new width
func (r *ResultsView) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.help.Width = width
	r.viewport.Width = width
	r.viewport.Height = max(height-resultsChromeHeight, 5)
	r.refresh()
}

// Platform returns the platform of the active tab
func (r *ResultsView) Platform() domain.Platform {
	return r.tabs[r.tab]
}

// SelectedVariant returns the selected variant of the active tab
func (r *ResultsView) SelectedVariant() (domain.Variant, bool) {
	variants := r.result.Variants(r.Platform())
	index := r.selected[r.Platform()]
	if index >= len(variants) {
		return domain.Variant{}, false
	}
	return variants[index], true
}

func (r *ResultsView) switchTab(delta int) {
	r.tab = (r.tab + delta + len(r.tabs)) % len(r.tabs)
	r.refresh()
	r.viewport.GotoTop()
}

func (r *ResultsView) moveSelection(delta int) {
	platform := r.Platform()
	count := len(r.result.Variants(platform))
	if count == 0 {
		return
	}
	next := r.selected[platform] + delta
	if next < 0 || next >= count {
		return
	}
	r.selected[platform] = next
	r.refresh()
	r.viewport.SetYOffset(r.cardOffsets[next])
}

// refresh re-renders the cards of the active tab into the viewport
func (r *ResultsView) refresh() {
	platform := r.Platform()
	variants := r.result.Variants(platform)
	r.cardOffsets = r.cardOffsets[:0]

	if len(variants) == 0 {
		r.viewport.SetContent(theme.MutedStyle.Render("No content generated for " + platform.Title()))
		return
	}

	var b strings.Builder
	line := 0
	for i, variant := range variants {
		r.cardOffsets = append(r.cardOffsets, line)
		card := r.renderCard(platform, variant, i, i == r.selected[platform])
		b.WriteString(card)
		b.WriteString("\n")
		line += lipgloss.Height(card)
	}
	r.viewport.SetContent(b.String())
}

func (r *ResultsView) renderCard(platform domain.Platform, variant domain.Variant, index int, selected bool) string {
	var b strings.Builder
	b.WriteString(theme.LabelStyle.Render(variant.DisplayLabel(index)))
	if variant.Subject != "" {
		b.WriteString("\n" + theme.SubjectStyle.Render("Subject: "+variant.Subject))
	}
	b.WriteString("\n\n" + variant.Text())
	if platform == domain.PlatformTwitter && variant.Body.Kind == domain.BodyThread {
		b.WriteString("\n\n" + theme.MutedStyle.Render(fmt.Sprintf("%d tweets in thread", len(variant.Body.Parts))))
	}

	style := theme.CardStyle
	if r.width > 4 {
		style = style.Width(r.width - 2)
	}
	if selected {
		style = style.BorderForeground(theme.ColorPrimary)
	}
	return style.Render(b.String())
}

func (r *ResultsView) renderTabs() string {
	rendered := make([]string, len(r.tabs))
	for i, platform := range r.tabs {
		label := fmt.Sprintf("%s (%d)", platform.Title(), len(r.result.Variants(platform)))
		if i == r.tab {
			rendered[i] = theme.ActiveTabStyle.Render(label)
		} else {
			rendered[i] = theme.InactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
