package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestLoadSettings_MissingFileReturnsEmpty(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested")
	t.Setenv(HomeEnvVar, home)

	debug := true
	original := &Settings{
		Debug:                 &debug,
		MockDelayMs:           intPtr(0),
		MonthlyLimit:          intPtr(50),
		RequestTimeoutSeconds: intPtr(15),
	}

	require.NoError(t, SaveSettings(original))
	loaded, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, original, loaded)
	assert.FileExists(t, filepath.Join(home, "settings.json"))
}

func TestSaveSettings_TruncatesPreviousContent(t *testing.T) {
	t.Setenv(HomeEnvVar, t.TempDir())

	require.NoError(t, SaveSettings(&Settings{ExportDir: "/a/very/long/export/directory/path"}))
	require.NoError(t, SaveSettings(&Settings{MonthlyLimit: intPtr(5)}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Empty(t, loaded.ExportDir)
	assert.Equal(t, 5, *loaded.MonthlyLimit)
}

func TestLoadSettings_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `{"debug":`},
		{"negative limit", `{"monthly_limit":-1}`},
		{"zero timeout", `{"request_timeout_seconds":0}`},
		{"negative mock delay", `{"mock_delay_ms":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv(HomeEnvVar, home)
			require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(tt.content), 0644))

			_, err := LoadSettings()
			assert.Error(t, err)
		})
	}
}

func TestLoadSettings_ExpandsExportDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnvVar, home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{"export_dir":"~/exports"}`), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	userHome, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(userHome, "exports"), settings.ExportDir)
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, example, 7)
	assert.Equal(t, DefaultMonthlyLimit, example["monthly_limit"])
	assert.Equal(t, DefaultMockDelayMs, example["mock_delay_ms"])
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, "~/Documents/contentply", example["export_dir"])
}

func TestGetHome(t *testing.T) {
	t.Setenv(HomeEnvVar, "/tmp/contentply-test")
	assert.Equal(t, "/tmp/contentply-test", GetHome())
	assert.Equal(t, "/tmp/contentply-test/state.db", GetDBPath())
	assert.Equal(t, "/tmp/contentply-test/settings.json", GetSettingsPath())
}
