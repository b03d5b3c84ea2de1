// Package config handles configuration loading for planet.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/diogo/planet/internal/models"
)

// EnvAPIURL overrides the backend base URL from the environment or a .env file
const EnvAPIURL = "PLANET_API_URL"

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	Style            string `json:"style"`              // "dark", "light", "notty", ...
	EnableEmoji      bool   `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool   `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool   `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool   `json:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration
type Config struct {
	// APIURL is the backend base URL; /upload/ and /ask/ are resolved against it.
	APIURL string `json:"api_url"`
	// TimeoutSeconds bounds each request. There is no retry.
	TimeoutSeconds int `json:"timeout_seconds"`
	// Verbose enables structured logging to LogFile.
	Verbose  bool           `json:"verbose"`
	LogFile  string         `json:"log_file,omitempty"`
	TUITheme string         `json:"tui_theme,omitempty"`
	Markdown MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		APIURL:         models.DefaultBaseURL,
		TimeoutSeconds: 120,
		Verbose:        false,
		LogFile:        filepath.Join(homeDir, ".planet", "planet.log"),
		TUITheme:       "planet",
		Markdown:       DefaultMarkdownConfig(),
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".planet"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveAPIURL picks the backend base URL: flag, then PLANET_API_URL
// (a .env file in the working directory is loaded first), then the config file.
func ResolveAPIURL(flagValue string, cfg Config) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return NormalizeBaseURL(v)
	}

	_ = godotenv.Load()
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		return NormalizeBaseURL(v)
	}

	if v := strings.TrimSpace(cfg.APIURL); v != "" {
		return NormalizeBaseURL(v)
	}

	return models.DefaultBaseURL
}

// NormalizeBaseURL strips trailing slashes so endpoint paths can be appended
func NormalizeBaseURL(base string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return models.DefaultBaseURL
	}
	return base
}

// SettableKeys returns the keys accepted by SetValue
func SettableKeys() []string {
	return []string{"api_url", "timeout_seconds", "verbose", "log_file", "tui_theme", "markdown.style"}
}

// SetValue updates a single configuration key from its string form
func SetValue(cfg *Config, key, value string) error {
	switch key {
	case "api_url":
		cfg.APIURL = NormalizeBaseURL(value)
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout_seconds must be a positive integer, got %q", value)
		}
		cfg.TimeoutSeconds = n
	case "verbose":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("verbose must be true or false, got %q", value)
		}
		cfg.Verbose = b
	case "log_file":
		cfg.LogFile = value
	case "tui_theme":
		cfg.TUITheme = value
	case "markdown.style":
		cfg.Markdown.Style = value
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(SettableKeys(), ", "))
	}
	return nil
}
