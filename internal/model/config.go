package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	Theme        string `mapstructure:"theme" yaml:"theme"`
	FeedPageSize int    `mapstructure:"feed_page_size" yaml:"feed_page_size"`
}

// ChecklistConfig holds defaults applied to new checklist items.
type ChecklistConfig struct {
	// DefaultVisibility is "public" or "private".
	DefaultVisibility string `mapstructure:"default_visibility" yaml:"default_visibility"`

	// DefaultType is "daily" or "oneoff".
	DefaultType string `mapstructure:"default_type" yaml:"default_type"`
}

// AppConfig is the top-level application configuration. It covers
// preferences only; checklist and feed state is never written to disk.
type AppConfig struct {
	Display   DisplayConfig   `mapstructure:"display" yaml:"display"`
	Checklist ChecklistConfig `mapstructure:"checklist" yaml:"checklist"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/lockin/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "lockin", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Display: DisplayConfig{
			Theme:        "default",
			FeedPageSize: 50,
		},
		Checklist: ChecklistConfig{
			DefaultVisibility: "public",
			DefaultType:       ItemTypeDaily,
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("display.theme", "default")
	v.SetDefault("display.feed_page_size", 50)
	v.SetDefault("checklist.default_visibility", "public")
	v.SetDefault("checklist.default_type", ItemTypeDaily)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("display", cfg.Display)
	v.Set("checklist", cfg.Checklist)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
