package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/logging"
)

// Environment variables read by kong for the global flags
const (
	envMockDelayMs           = "CONTENTPLY_MOCK_DELAY_MS"
	envMonthlyLimit          = "CONTENTPLY_MONTHLY_LIMIT"
	envRequestTimeoutSeconds = "CONTENTPLY_REQUEST_TIMEOUT_SECONDS"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version               kong.VersionFlag `help:"Show version information"`
	Debug                 bool             `help:"Enable debug logging to file" short:"d" env:"CONTENTPLY_DEBUG"`
	DebugFile             string           `help:"Custom path for debug log file (disables automatic cleanup)" env:"CONTENTPLY_DEBUG_FILE"`
	MaxLogFiles           int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000" env:"CONTENTPLY_MAX_LOG_FILES"`
	MockDelayMs           int              `help:"Delay of the offline demo generator in milliseconds" default:"2000" env:"CONTENTPLY_MOCK_DELAY_MS"`
	MonthlyLimit          int              `help:"Repurposes allowed per calendar month" default:"20" env:"CONTENTPLY_MONTHLY_LIMIT"`
	RequestTimeoutSeconds int              `help:"Timeout of webhook requests in seconds" default:"60" env:"CONTENTPLY_REQUEST_TIMEOUT_SECONDS"`

	Run       RunCmd       `cmd:"" help:"Start the contentply TUI (default)" default:"1"`
	Repurpose RepurposeCmd `cmd:"repurpose" help:"Repurpose content without the TUI"`
	Credits   CreditsCmd   `cmd:"credits" help:"Show the credits left this month"`
	Stats     StatsCmd     `cmd:"stats" help:"Show lifetime usage statistics"`
	History   HistoryCmd   `cmd:"history" help:"Manage the repurpose history (list, clear)"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, init, show, set-webhook, set-api-key)"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the TUI over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	errOut    io.Writer        `kong:"-"`
	in        io.Reader        `kong:"-"`
	out       io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing, applies settings and
// builds the container.
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Debug logging enabled", "file", logFilePath)
	}

	// The container opens the database, so GORM's logger needs logging initialized first
	container, err := NewContainer(ContainerOptions{
		DBPath:         config.GetDBPath(),
		MockDelay:      time.Duration(c.MockDelayMs) * time.Millisecond,
		MonthlyLimit:   c.MonthlyLimit,
		RequestTimeout: time.Duration(c.RequestTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills flags from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults. A setting is
// only applied when the flag is at its default and its env var is not set.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	applyInt(&c.MaxLogFiles, config.DefaultMaxLogFiles, logging.EnvMaxLogFiles, c.settings.MaxLogFiles)
	applyInt(&c.MockDelayMs, config.DefaultMockDelayMs, envMockDelayMs, c.settings.MockDelayMs)
	applyInt(&c.MonthlyLimit, config.DefaultMonthlyLimit, envMonthlyLimit, c.settings.MonthlyLimit)
	applyInt(&c.RequestTimeoutSeconds, config.DefaultRequestTimeoutSeconds, envRequestTimeoutSeconds, c.settings.RequestTimeoutSeconds)

	if !c.Debug {
		if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}
}

func applyInt(flag *int, defaultValue int, envVar string, setting *int) {
	if *flag != defaultValue || setting == nil {
		return
	}
	if _, hasEnv := os.LookupEnv(envVar); hasEnv {
		return
	}
	*flag = *setting
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) stdout() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}

func (c *CLI) stderr() io.Writer {
	if c.errOut != nil {
		return c.errOut
	}
	return os.Stderr
}

func (c *CLI) stdin() io.Reader {
	if c.in != nil {
		return c.in
	}
	return os.Stdin
}

// exportDir resolves the export directory: flag, then settings.json, then the working directory
func (c *CLI) exportDir(flag string) string {
	if flag != "" {
		return config.ExpandPath(flag)
	}
	if c.settings != nil && c.settings.ExportDir != "" {
		return c.settings.ExportDir
	}
	return "."
}
