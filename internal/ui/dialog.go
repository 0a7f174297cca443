package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps a tea.Model and prepends the application header with a title.
//
// Usage:
//
//	content := NewSettingsForm(settingsService)
//	dialog := NewDialog("Settings", content, devMode)
//	dialog.View() // header + content.View()
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper around content
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and returns the dialog itself
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View renders the header followed by the wrapped content
func (d *Dialog) View() string {
	return renderDialogHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion.
//
//	if form, ok := dialog.Content().(*SettingsForm); ok && form.Completed {
//		result := form.Result()
//	}
func (d *Dialog) Content() tea.Model {
	return d.content
}
