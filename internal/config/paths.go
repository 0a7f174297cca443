package config

import (
	"os"
	"path/filepath"
)

// HomeEnvVar overrides the contentply data directory
const HomeEnvVar = "CONTENTPLY_HOME"

// GetHome returns $CONTENTPLY_HOME or the ~/.contentply default
func GetHome() string {
	home := os.Getenv(HomeEnvVar)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".contentply"
		}
		return filepath.Join(homeDir, ".contentply")
	}
	return ExpandPath(home)
}

// GetDBPath returns $CONTENTPLY_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $CONTENTPLY_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetHostKeyPath returns the SSH host key used by `contentply serve`
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh", "id_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
