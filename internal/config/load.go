// Package config resolves runtime settings from the environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// UI modes accepted by the ui setting.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)

// Config holds the resolved runtime settings.
type Config struct {
	UI       string
	NoColor  bool
	Seed     int64
	LogFile  string
	LogLevel string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{UI: UIAuto, LogLevel: "info"}
}

// Load reads the config file at path, then applies SDJQUIZ_* environment
// overrides. An empty path selects the default location; a missing file is
// not an error.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		if defaultPath, err := ConfigPath(); err == nil {
			path = defaultPath
		}
	}

	v := viper.New()
	defaults := Default()
	v.SetDefault("ui", defaults.UI)
	v.SetDefault("no_color", defaults.NoColor)
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isMissing(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		UI:       strings.ToLower(strings.TrimSpace(v.GetString("ui"))),
		NoColor:  v.GetBool("no_color"),
		Seed:     v.GetInt64("seed"),
		LogFile:  strings.TrimSpace(v.GetString("log_file")),
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("log_level"))),
	}
	// https://no-color.org: any non-empty value disables color.
	if value, ok := os.LookupEnv("NO_COLOR"); ok && value != "" {
		cfg.NoColor = true
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func Validate(cfg Config) error {
	switch cfg.UI {
	case UIAuto, UILive, UIPlain:
	default:
		return fmt.Errorf("invalid ui mode %q (expected auto, live, or plain)", cfg.UI)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn, or error)", cfg.LogLevel)
	}
	return nil
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
