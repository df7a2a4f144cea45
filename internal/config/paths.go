package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = "sdjquiz"
	ConfigFileName = "config.yml"
	EnvPrefix      = "SDJQUIZ"
)

// ConfigDir returns the sdjquiz directory under the user config home.
// XDG_CONFIG_HOME wins over the platform default.
func ConfigDir() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, ConfigDirName), nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, ConfigDirName), nil
}

// ConfigPath returns the full default config file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}
