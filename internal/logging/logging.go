package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Environment variables shared with `contentply serve` sessions and re-executions
const (
	EnvDebug       = "CONTENTPLY_DEBUG"
	EnvDebugFile   = "CONTENTPLY_DEBUG_FILE"
	EnvMaxLogFiles = "CONTENTPLY_MAX_LOG_FILES"
)

const defaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options controls where debug logs are written
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
}

// Initialize sets up Logger and returns the log file in use ("" when logs are discarded)
func Initialize(opts Options) (string, error) {
	opts = withEnvOverrides(opts)

	if !opts.Debug && opts.DebugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logFilePath, err := resolveLogFile(opts)
	if err != nil {
		return "", err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", logFilePath)

	return logFilePath, nil
}

// withEnvOverrides fills options from inherited environment variables
func withEnvOverrides(opts Options) Options {
	if os.Getenv(EnvDebug) == "1" {
		opts.Debug = true
	}
	if envFile := os.Getenv(EnvDebugFile); envFile != "" && opts.DebugFile == "" {
		opts.DebugFile = envFile
	}
	if envMax := os.Getenv(EnvMaxLogFiles); envMax != "" && opts.MaxLogFiles == defaultMaxLogFiles {
		if parsed, err := strconv.Atoi(envMax); err == nil {
			opts.MaxLogFiles = parsed
		}
	}
	return opts
}

func resolveLogFile(opts Options) (string, error) {
	if opts.DebugFile != "" {
		// Custom file, no rotation
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.DebugFile, nil
	}

	logDir, err := getLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotateLogs(logDir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, uuid.New().String()+".log"), nil
}

// rotateLogs deletes the oldest .log files so that one more fits under maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		modTime time.Time
		path    string
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			modTime: info.ModTime(),
			path:    filepath.Join(logDir, entry.Name()),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	slices.SortFunc(logFiles, func(a, b logFileInfo) int {
		return a.modTime.Compare(b.modTime)
	})

	excess := len(logFiles) - maxLogFiles + 1
	for _, f := range logFiles[:excess] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
		}
	}

	return nil
}

// getLogDir returns the OS-specific log directory
func getLogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "contentply"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "contentply"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "contentply", "logs"), nil
	default:
		return filepath.Join(homeDir, ".contentply", "logs"), nil
	}
}
