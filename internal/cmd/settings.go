package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/contentply/contentply/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Init       SettingsInitCmd       `cmd:"init" help:"Write settings.json with the default values"`
	Meta       SettingsMetaCmd       `cmd:"meta" help:"Show settings file location and available options" default:"1"`
	SetAPIKey  SettingsSetAPIKeyCmd  `cmd:"set-api-key" help:"Set the API key sent to the webhook (empty clears it)"`
	SetWebhook SettingsSetWebhookCmd `cmd:"set-webhook" help:"Set the n8n webhook URL (empty switches to demo mode)"`
	Show       SettingsShowCmd       `cmd:"show" help:"Show the webhook configuration"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format != "table" {
		return writeStructured(cli.stdout(), s.Format, map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	out := cli.stdout()
	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure contentply.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	return nil
}

// SettingsInitCmd writes a settings.json holding the defaults
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings.json"`
}

// Run executes the init command
func (s *SettingsInitCmd) Run(cli *CLI) error {
	path := config.GetSettingsPath()
	if _, err := os.Stat(path); err == nil && !s.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.SaveSettings(config.DefaultSettings()); err != nil {
		return err
	}

	fmt.Fprintf(cli.stdout(), "Settings written to %s\n", path)
	return nil
}

// SettingsShowCmd shows the stored webhook configuration
type SettingsShowCmd struct {
	Format string `help:"Output format: table, json or yaml" enum:"table,json,yaml" default:"table"`
}

type webhookSettingsOutput struct {
	APIKey     string `json:"api_key" yaml:"api_key"`
	MockMode   bool   `json:"mock_mode" yaml:"mock_mode"`
	WebhookURL string `json:"webhook_url" yaml:"webhook_url"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	ctx := context.Background()
	settings := cli.Container.SettingsService

	url, err := settings.WebhookURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to load webhook URL: %w", err)
	}
	key, err := settings.DirectAPIKey(ctx)
	if err != nil {
		return fmt.Errorf("failed to load API key: %w", err)
	}

	output := webhookSettingsOutput{
		APIKey:     maskSecret(key),
		MockMode:   config.IsPlaceholderWebhook(url),
		WebhookURL: url,
	}

	if s.Format != "table" {
		return writeStructured(cli.stdout(), s.Format, output)
	}

	out := cli.stdout()
	if output.MockMode {
		fmt.Fprintln(out, "Webhook URL: <not set> (demo mode)")
	} else {
		fmt.Fprintf(out, "Webhook URL: %s\n", output.WebhookURL)
	}
	if output.APIKey == "" {
		fmt.Fprintln(out, "API key: <not set>")
	} else {
		fmt.Fprintf(out, "API key: %s\n", output.APIKey)
	}
	return nil
}

// SettingsSetWebhookCmd stores the webhook URL
type SettingsSetWebhookCmd struct {
	URL string `arg:"" optional:"" help:"Webhook URL (omit to switch back to demo mode)"`
}

// Run executes the set-webhook command
func (s *SettingsSetWebhookCmd) Run(cli *CLI) error {
	if err := cli.Container.SettingsService.SetWebhookURL(context.Background(), s.URL); err != nil {
		return err
	}
	fmt.Fprintln(cli.stdout(), "Settings saved successfully!")
	return nil
}

// SettingsSetAPIKeyCmd stores the API key
type SettingsSetAPIKeyCmd struct {
	Key string `arg:"" optional:"" help:"API key (omit to remove it)"`
}

// Run executes the set-api-key command
func (s *SettingsSetAPIKeyCmd) Run(cli *CLI) error {
	if err := cli.Container.SettingsService.SetDirectAPIKey(context.Background(), s.Key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	fmt.Fprintln(cli.stdout(), "Settings saved successfully!")
	return nil
}

// maskSecret keeps the last four characters of secret
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-4:])
}
