package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/services"
)

// MsgSettingsSaved confirms a successful settings update
const MsgSettingsSaved = "Settings saved successfully!"

// SettingsFormResult contains the result of the settings dialog
type SettingsFormResult struct {
	Cancelled bool
	Error     error
	MockMode  bool
}

// SettingsForm edits the webhook URL and the optional API key
type SettingsForm struct {
	Completed       bool
	apiKey          string
	form            *huh.Form
	result          SettingsFormResult
	settingsService *services.SettingsService
	webhookURL      string
}

// NewSettingsForm creates a settings form pre-filled with the stored values
func NewSettingsForm(settingsService *services.SettingsService) *SettingsForm {
	sf := &SettingsForm{settingsService: settingsService}

	ctx := context.Background()
	if url, err := settingsService.WebhookURL(ctx); err != nil {
		logging.Logger.Warn("Failed to load webhook URL", "error", err)
	} else if !config.IsPlaceholderWebhook(url) {
		sf.webhookURL = url
	}
	if key, err := settingsService.DirectAPIKey(ctx); err != nil {
		logging.Logger.Warn("Failed to load API key", "error", err)
	} else {
		sf.apiKey = key
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("n8n webhook URL").
				Description("Leave empty to use demo mode").
				Placeholder(config.PlaceholderWebhookURL).
				Value(&sf.webhookURL).
				Validate(services.ValidateWebhookURL),
			huh.NewInput().
				Title("API key").
				Description("Optional, sent as a bearer token").
				EchoMode(huh.EchoModePassword).
				Value(&sf.apiKey),
		),
	)

	return sf
}

func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
		if err := sf.save(); err != nil {
			logging.Logger.Error("Failed to save settings", "error", err)
			sf.result.Error = err
		}
		return sf, nil
	}

	return sf, cmd
}

func (sf *SettingsForm) View() string {
	return sf.form.View()
}

// Result returns the form result
func (sf *SettingsForm) Result() SettingsFormResult {
	return sf.result
}

func (sf *SettingsForm) save() error {
	ctx := context.Background()

	if err := sf.settingsService.SetWebhookURL(ctx, sf.webhookURL); err != nil {
		return fmt.Errorf("failed to save webhook URL: %w", err)
	}
	if err := sf.settingsService.SetDirectAPIKey(ctx, sf.apiKey); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}

	sf.result.MockMode = config.IsPlaceholderWebhook(sf.webhookURL)
	return nil
}
