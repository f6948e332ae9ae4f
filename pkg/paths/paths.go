package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for takonsole
	EnvConfigDir = "TAKONSOLE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for takonsole
	EnvStateDir = "TAKONSOLE_STATE_DIR"
)

const (
	// AppDirName is the directory name for takonsole files
	AppDirName = "takonsole"

	// LogFileName is the name of the log file
	LogFileName = "takonsole.log"
)

// ConfigFileNames are tried in order inside the config directory
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// ConfigDir returns the takonsole config directory
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the takonsole state directory. XDG_STATE_HOME is read at
// call time so tests can redirect it.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// FindConfigFile returns the first existing config file in the config
// directory, or "" when there is none
func FindConfigFile() string {
	dir := ConfigDir()
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
