// Package paths centralizes where treeforge keeps its own files. Locations
// follow the XDG Base Directory specification.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile overrides the config file location
	EnvConfigFile = "TREEFORGE_CONFIG"

	// EnvLogFile overrides the log file location
	EnvLogFile = "TREEFORGE_LOG_FILE"
)

// AppDirName is the directory name used under the XDG base directories.
const AppDirName = "treeforge"

// ConfigFile returns the path of the user config file. The file does not
// have to exist.
func ConfigFile() string {
	if override := os.Getenv(EnvConfigFile); override != "" {
		return override
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, "treeforge.toml")
}

// LogFile returns the path of the log file.
func LogFile() string {
	if override := os.Getenv(EnvLogFile); override != "" {
		return override
	}
	return filepath.Join(xdg.StateHome, AppDirName, "treeforge.log")
}
