package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/logging"
)

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func TestApplyInt_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		flag     int
		env      string
		setting  *int
		expected int
	}{
		{"default without setting", 20, "", nil, 20},
		{"setting overrides default", 20, "", intPtr(50), 50},
		{"flag beats setting", 30, "", intPtr(50), 30},
		{"env beats setting", 20, "20", intPtr(50), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv(envMonthlyLimit, tt.env)
			}
			flag := tt.flag
			applyInt(&flag, config.DefaultMonthlyLimit, envMonthlyLimit, tt.setting)
			assert.Equal(t, tt.expected, flag)
		})
	}
}

func TestApplySettings(t *testing.T) {
	cli := &CLI{
		MaxLogFiles:           config.DefaultMaxLogFiles,
		MockDelayMs:           config.DefaultMockDelayMs,
		MonthlyLimit:          config.DefaultMonthlyLimit,
		RequestTimeoutSeconds: config.DefaultRequestTimeoutSeconds,
		settings: &config.Settings{
			Debug:        boolPtr(true),
			MockDelayMs:  intPtr(0),
			MonthlyLimit: intPtr(100),
		},
	}

	cli.applySettings()

	assert.True(t, cli.Debug)
	assert.Equal(t, 0, cli.MockDelayMs)
	assert.Equal(t, 100, cli.MonthlyLimit)
	assert.Equal(t, config.DefaultRequestTimeoutSeconds, cli.RequestTimeoutSeconds)
}

func TestApplySettings_DebugEnvWins(t *testing.T) {
	t.Setenv(logging.EnvDebug, "false")
	cli := &CLI{settings: &config.Settings{Debug: boolPtr(true)}}

	cli.applySettings()

	assert.False(t, cli.Debug)
}

func TestExportDir(t *testing.T) {
	cli := &CLI{settings: &config.Settings{ExportDir: "/srv/exports"}}
	assert.Equal(t, "/tmp/out", cli.exportDir("/tmp/out"))
	assert.Equal(t, "/srv/exports", cli.exportDir(""))

	cli.settings = nil
	assert.Equal(t, ".", cli.exportDir(""))
}
