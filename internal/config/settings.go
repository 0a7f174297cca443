package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults applied when neither flags, env vars nor settings.json set a value
const (
	DefaultErrorClearDelay       = 10
	DefaultMaxLogFiles           = 1000
	DefaultMockDelayMs           = 2000
	DefaultMonthlyLimit          = 20
	DefaultRequestTimeoutSeconds = 60
)

// Settings represents the structure of ~/.contentply/settings.json
type Settings struct {
	Debug                 *bool  `json:"debug,omitempty"`
	ErrorClearDelay       *int   `json:"error_clear_delay,omitempty"`
	ExportDir             string `json:"export_dir,omitempty"`
	MaxLogFiles           *int   `json:"max_log_files,omitempty"`
	MockDelayMs           *int   `json:"mock_delay_ms,omitempty"`
	MonthlyLimit          *int   `json:"monthly_limit,omitempty"`
	RequestTimeoutSeconds *int   `json:"request_timeout_seconds,omitempty"`
}

// DefaultSettings returns settings with every default spelled out
func DefaultSettings() *Settings {
	debug := false
	errorClearDelay := DefaultErrorClearDelay
	maxLogFiles := DefaultMaxLogFiles
	mockDelayMs := DefaultMockDelayMs
	monthlyLimit := DefaultMonthlyLimit
	requestTimeout := DefaultRequestTimeoutSeconds

	return &Settings{
		Debug:                 &debug,
		ErrorClearDelay:       &errorClearDelay,
		MaxLogFiles:           &maxLogFiles,
		MockDelayMs:           &mockDelayMs,
		MonthlyLimit:          &monthlyLimit,
		RequestTimeoutSeconds: &requestTimeout,
	}
}

// Validate rejects values the services cannot work with
func (s *Settings) Validate() error {
	if s.MonthlyLimit != nil && *s.MonthlyLimit < 0 {
		return fmt.Errorf("monthly_limit must not be negative, got %d", *s.MonthlyLimit)
	}
	if s.MockDelayMs != nil && *s.MockDelayMs < 0 {
		return fmt.Errorf("mock_delay_ms must not be negative, got %d", *s.MockDelayMs)
	}
	if s.RequestTimeoutSeconds != nil && *s.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("request_timeout_seconds must be positive, got %d", *s.RequestTimeoutSeconds)
	}
	return nil
}

// LoadSettings loads settings from $CONTENTPLY_HOME/settings.json (or ~/.contentply/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.ExportDir != "" {
		settings.ExportDir = ExpandPath(settings.ExportDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $CONTENTPLY_HOME/settings.json.
// The file is held under an exclusive lock while it is rewritten.
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open settings file: %w", err)
	}
	defer file.Close()

	if err := lockFile(file); err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	defer unlockFile(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek to beginning: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
