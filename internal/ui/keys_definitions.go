package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
)

// KeyDefinition defines the metadata for a key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains every key binding of the application
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?", "f1"}, Help: "show keyboard shortcuts"},
	{Name: "history", Defaults: []string{"ctrl+r"}, Help: "show recent repurposes"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "settings", Defaults: []string{"ctrl+s"}, Help: "webhook and API key settings"},

	// Results keys
	{Name: "copy", Defaults: []string{"c", "y"}, Help: "copy selected variant"},
	{Name: "export", Defaults: []string{"e"}, Help: "export all results to a file"},
	{Name: "new_content", Defaults: []string{"n"}, Help: "repurpose new content"},
	{Name: "next_tab", Defaults: []string{"tab", "right", "l"}, Help: "next platform"},
	{Name: "next_variant", Defaults: []string{"]", "J"}, Help: "next variant"},
	{Name: "prev_tab", Defaults: []string{"shift+tab", "left", "h"}, Help: "previous platform"},
	{Name: "prev_variant", Defaults: []string{"[", "K"}, Help: "previous variant"},
}

var (
	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once
)

// GetKeyDefinition returns the definition with the given name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})

	def, ok := keyDefinitionsMap[name]
	if !ok {
		return nil
	}
	return &def
}

// buildBinding creates a key.Binding from its definition
func buildBinding(name string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	return key.NewBinding(
		key.WithKeys(def.Defaults...),
		key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
	)
}
