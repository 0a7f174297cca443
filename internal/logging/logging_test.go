package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DiscardsWithoutDebug(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")

	path, err := Initialize(Options{MaxLogFiles: defaultMaxLogFiles})

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_CustomDebugFile(t *testing.T) {
	t.Setenv(EnvDebug, "")
	t.Setenv(EnvDebugFile, "")
	logFile := filepath.Join(t.TempDir(), "logs", "debug.log")

	path, err := Initialize(Options{DebugFile: logFile, MaxLogFiles: defaultMaxLogFiles})
	require.NoError(t, err)
	assert.Equal(t, logFile, path)

	Logger.Info("hello from test")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestInitialize_InheritsDebugFileFromEnv(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "inherited.log")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvDebugFile, logFile)

	path, err := Initialize(Options{MaxLogFiles: defaultMaxLogFiles})

	require.NoError(t, err)
	assert.Equal(t, logFile, path)
}

func TestRotateLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("log-%d.log", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		modTime := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0644))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	// room is left for the log file about to be created
	assert.ElementsMatch(t, []string{"log-3.log", "log-4.log", "notes.txt"}, names)
}

func TestRotateLogs_UnderLimitIsNoop(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 10))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
}
