package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/domain"
)

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()

	container, err := NewContainer(ContainerOptions{
		DBPath:         filepath.Join(t.TempDir(), "state.db"),
		MonthlyLimit:   20,
		RequestTimeout: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Close() })

	out := &bytes.Buffer{}
	return &CLI{
		Container: container,
		out:       out,
		settings:  &config.Settings{},
	}, out
}

func TestRepurposeCmd_TextOutput(t *testing.T) {
	cli, out := newTestCLI(t)

	cmd := &RepurposeCmd{Content: "Deep work beats busy work", Format: "text"}
	require.NoError(t, cmd.Run(cli))

	output := out.String()
	assert.True(t, strings.HasPrefix(output, "CONTENTPLY - REPURPOSED CONTENT"))
	assert.Contains(t, output, "LINKEDIN")
	assert.True(t, strings.HasSuffix(output, "19/20 credits left this month\n"))
}

func TestRepurposeCmd_JSONFromStdin(t *testing.T) {
	cli, out := newTestCLI(t)
	cli.in = strings.NewReader("Content piped from another tool")

	cmd := &RepurposeCmd{Format: "json"}
	require.NoError(t, cmd.Run(cli))

	var result domain.RepurposeResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 22, result.VariantCount())
}

func TestRepurposeCmd_RejectsEmptyContent(t *testing.T) {
	cli, out := newTestCLI(t)
	cli.in = strings.NewReader("   \n")

	err := (&RepurposeCmd{Format: "text"}).Run(cli)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, out.String())
}

func TestRepurposeCmd_Export(t *testing.T) {
	cli, out := newTestCLI(t)
	dir := t.TempDir()

	cmd := &RepurposeCmd{Content: "Ship small changes", Export: true, ExportDir: dir, Format: "json"}
	require.NoError(t, cmd.Run(cli))

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, out.String(), "Exported to "+filepath.Join(dir, files[0].Name()))
}

func TestCreditsCmd_Formats(t *testing.T) {
	cli, out := newTestCLI(t)
	require.NoError(t, (&RepurposeCmd{Content: "one", Format: "json"}).Run(cli))
	out.Reset()

	require.NoError(t, (&CreditsCmd{Format: "json"}).Run(cli))

	var credits creditsOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &credits))
	assert.Equal(t, 20, credits.Limit)
	assert.Equal(t, 19, credits.Remaining)
	assert.Equal(t, 1, credits.Used)

	out.Reset()
	require.NoError(t, (&CreditsCmd{Format: "table"}).Run(cli))
	assert.Contains(t, out.String(), "Used: 1\n")
	assert.Contains(t, out.String(), "19/20 credits left this month")
}

func TestStatsCmd_CountsRepurposes(t *testing.T) {
	cli, out := newTestCLI(t)
	require.NoError(t, (&RepurposeCmd{Content: "first", Format: "json"}).Run(cli))
	require.NoError(t, (&RepurposeCmd{Content: "second", Format: "json"}).Run(cli))
	out.Reset()

	require.NoError(t, (&StatsCmd{Format: "json"}).Run(cli))

	var stats domain.UsageStats
	require.NoError(t, json.Unmarshal(out.Bytes(), &stats))
	assert.Equal(t, domain.UsageStats{TotalRepurposes: 2, EstimatedPostsGenerated: 50, EstimatedHoursSaved: 4}, stats)
}

func TestHistoryCmds(t *testing.T) {
	cli, out := newTestCLI(t)

	require.NoError(t, (&HistoryListCmd{Format: "table"}).Run(cli))
	assert.Equal(t, "No history yet.\n", out.String())

	require.NoError(t, (&RepurposeCmd{Content: "older post", Format: "json"}).Run(cli))
	require.NoError(t, (&RepurposeCmd{Content: "https://example.com/article", URL: true, Format: "json"}).Run(cli))
	out.Reset()

	require.NoError(t, (&HistoryListCmd{Format: "table"}).Run(cli))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PLATFORMS")
	assert.Contains(t, lines[1], "https://example.com/article")
	assert.Contains(t, lines[2], "older post")

	out.Reset()
	require.NoError(t, (&HistoryListCmd{Format: "json", Limit: 1}).Run(cli))
	var entries []domain.HistoryEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, domain.ModeURL, entries[0].Mode)

	out.Reset()
	require.NoError(t, (&HistoryClearCmd{Yes: true}).Run(cli))
	assert.Equal(t, "History cleared.\n", out.String())

	out.Reset()
	require.NoError(t, (&HistoryListCmd{Format: "json"}).Run(cli))
	assert.JSONEq(t, "[]", out.String())
}

func TestSettingsCmds(t *testing.T) {
	cli, out := newTestCLI(t)

	err := (&SettingsSetWebhookCmd{URL: "not a url"}).Run(cli)
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, (&SettingsSetWebhookCmd{URL: "https://n8n.example.com/webhook/repurpose"}).Run(cli))
	require.NoError(t, (&SettingsSetAPIKeyCmd{Key: "sk-secret-1234"}).Run(cli))
	out.Reset()

	require.NoError(t, (&SettingsShowCmd{Format: "json"}).Run(cli))
	var shown webhookSettingsOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &shown))
	assert.Equal(t, webhookSettingsOutput{
		APIKey:     "**********1234",
		MockMode:   false,
		WebhookURL: "https://n8n.example.com/webhook/repurpose",
	}, shown)

	require.NoError(t, (&SettingsSetWebhookCmd{}).Run(cli))
	out.Reset()
	require.NoError(t, (&SettingsShowCmd{Format: "table"}).Run(cli))
	assert.Contains(t, out.String(), "Webhook URL: <not set> (demo mode)")
}

func TestSettingsMetaCmd_ListsSortedKeys(t *testing.T) {
	cli, out := newTestCLI(t)

	require.NoError(t, (&SettingsMetaCmd{Format: "table"}).Run(cli))

	output := out.String()
	assert.Contains(t, output, config.GetSettingsPath())
	assert.Less(t, strings.Index(output, "debug"), strings.Index(output, "monthly_limit"))
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "****"},
		{"abcdef", "**cdef"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, maskSecret(tt.input))
		})
	}
}

func TestWriteStructured_YAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeStructured(&out, "yaml", creditsOutput{Limit: 20, Period: "October 2026", Remaining: 18, Used: 2}))

	assert.YAMLEq(t, "limit: 20\nperiod: October 2026\nremaining: 18\nused: 2\n", out.String())
	assert.Error(t, writeStructured(&out, "xml", nil))
}

func TestSettingsInitCmd(t *testing.T) {
	t.Setenv(config.HomeEnvVar, t.TempDir())
	cli, out := newTestCLI(t)

	require.NoError(t, (&SettingsInitCmd{}).Run(cli))
	assert.Contains(t, out.String(), config.GetSettingsPath())

	loaded, err := config.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), loaded)

	assert.Error(t, (&SettingsInitCmd{}).Run(cli))
	assert.NoError(t, (&SettingsInitCmd{Force: true}).Run(cli))
}

func TestRepurposeCmd_ProgressGoesToStderr(t *testing.T) {
	cli, out := newTestCLI(t)
	var progress bytes.Buffer
	cli.errOut = &progress

	require.NoError(t, (&RepurposeCmd{Content: "progress please", Format: "json", Progress: true}).Run(cli))

	assert.Equal(t, "validating\nchecking_quota\ncalling\nsucceeded\n", progress.String())
	assert.NotContains(t, out.String(), "validating")
}
