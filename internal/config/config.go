package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/tick/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultDatabasePath is used when neither the config file, TICK_DB nor --db name one
const DefaultDatabasePath = "~/.tick/tasks.db"

// Environment variables read by Load
const (
	EnvDatabasePath = "TICK_DB"
	EnvThemeFile    = "TICK_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	DatabasePath string      `yaml:"database_path"`
	DefaultSort  string      `yaml:"default_sort"`
	ColorScheme  ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile loads and merges theme from TICK_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := getConfigPath()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		}
	}

	// Load theme from TICK_THEME_FILE if set
	loadThemeFile(config)

	if env := os.Getenv(EnvDatabasePath); env != "" {
		config.DatabasePath = env
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if _, err := models.ParseSortKey(config.DefaultSort); err != nil {
		return nil, fmt.Errorf("config default_sort: %w", err)
	}

	return config, nil
}

// ResolveDatabasePath returns the --db flag value when set, otherwise the
// configured path (which already reflects TICK_DB).
func (c *Config) ResolveDatabasePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.DatabasePath
}

// SortKey returns the configured default sort for list
func (c *Config) SortKey() models.SortKey {
	key, err := models.ParseSortKey(c.DefaultSort)
	if err != nil {
		return models.DefaultSort
	}
	return key
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tick", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tick", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabasePath
	}
	if c.DefaultSort == "" {
		c.DefaultSort = string(models.DefaultSort)
	}
	c.ColorScheme.ApplyDefaults()
}
