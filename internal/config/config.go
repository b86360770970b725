package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	History HistoryConfig
	UI      UIConfig
	Log     LogConfig
}

// HistoryConfig holds sqlite settings for the visit history.
type HistoryConfig struct {
	Path string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale string
}

// LogConfig holds debug log settings. An empty path disables logging.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix LAZYNAV_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("history.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "lazynav", "history.db"))
	v.SetDefault("ui.locale", "en")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("LAZYNAV_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "lazynav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LAZYNAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// The settings screen uses this to persist the locale choice.
func Save(cfg Config) error {
	path := os.Getenv("LAZYNAV_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "lazynav", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("history.path", cfg.History.Path)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
