package ui

import "github.com/charmbracelet/bubbles/key"

// ApplicationKeys are available on every screen that has no text input
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	History   key.Binding
	Quit      key.Binding
	Settings  key.Binding
}

// ResultsKeys act on the results screen
type ResultsKeys struct {
	Copy        key.Binding
	Export      key.Binding
	NewContent  key.Binding
	NextTab     key.Binding
	NextVariant key.Binding
	PrevTab     key.Binding
	PrevVariant key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Results     ResultsKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit"),
			Help:      buildBinding("help"),
			History:   buildBinding("history"),
			Quit:      buildBinding("quit"),
			Settings:  buildBinding("settings"),
		},
		Results: ResultsKeys{
			Copy:        buildBinding("copy"),
			Export:      buildBinding("export"),
			NewContent:  buildBinding("new_content"),
			NextTab:     buildBinding("next_tab"),
			NextVariant: buildBinding("next_variant"),
			PrevTab:     buildBinding("prev_tab"),
			PrevVariant: buildBinding("prev_variant"),
		},
	}
}

// ShortHelp returns the bindings shown in the results footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Results.NextTab,
		k.Results.NextVariant,
		k.Results.Copy,
		k.Results.Export,
		k.Results.NewContent,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns all bindings grouped for the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Results.NextTab, k.Results.PrevTab, k.Results.NextVariant, k.Results.PrevVariant},
		{k.Results.Copy, k.Results.Export, k.Results.NewContent},
		{k.Application.Settings, k.Application.History, k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}
