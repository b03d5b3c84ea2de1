package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/diogo/planet/internal/models"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.APIURL != models.DefaultBaseURL {
		t.Errorf("Expected default API URL %s, got %s", models.DefaultBaseURL, cfg.APIURL)
	}

	if cfg.TimeoutSeconds != 120 {
		t.Errorf("Expected TimeoutSeconds 120, got %d", cfg.TimeoutSeconds)
	}

	if cfg.Verbose {
		t.Error("Expected Verbose to be false")
	}

	if cfg.Markdown.Style != "dark" {
		t.Errorf("Expected markdown style dark, got %s", cfg.Markdown.Style)
	}
}

func TestGetConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned error: %v", err)
	}

	expected := filepath.Join(home, ".planet", "config.json")
	if path != expected {
		t.Errorf("GetConfigPath() = %s, want %s", path, expected)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}

	if cfg.APIURL != models.DefaultBaseURL {
		t.Errorf("Expected defaults, got API URL %s", cfg.APIURL)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.APIURL = "http://backend:9000"
	cfg.Verbose = true
	cfg.TUITheme = "nord"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() returned error: %v", err)
	}

	path, _ := GetConfigPath()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file mode = %o, want 600", info.Mode().Perm())
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if loaded.APIURL != "http://backend:9000" || !loaded.Verbose || loaded.TUITheme != "nord" {
		t.Errorf("loaded config mismatch: %+v", loaded)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".planet")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(map[string]any{"api_url": "http://other:1234"})
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.APIURL != "http://other:1234" {
		t.Errorf("APIURL = %s", cfg.APIURL)
	}
	if cfg.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds should keep default, got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".planet")
	_ = os.MkdirAll(dir, 0o700)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg.APIURL != models.DefaultBaseURL {
		t.Error("expected defaults on parse error")
	}
}

func TestResolveAPIURL(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		env      string
		cfgURL   string
		expected string
	}{
		{"flag wins", "http://flag:1/", "http://env:2", "http://cfg:3", "http://flag:1"},
		{"env over config", "", "http://env:2/", "http://cfg:3", "http://env:2"},
		{"config when no env", "", "", "http://cfg:3//", "http://cfg:3"},
		{"default when nothing set", "", "", "", models.DefaultBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIURL, tt.env)
			cfg := Config{APIURL: tt.cfgURL}
			if got := ResolveAPIURL(tt.flag, cfg); got != tt.expected {
				t.Errorf("ResolveAPIURL() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestSetValue(t *testing.T) {
	cfg := DefaultConfig()

	if err := SetValue(&cfg, "api_url", "http://x:1/"); err != nil {
		t.Fatal(err)
	}
	if cfg.APIURL != "http://x:1" {
		t.Errorf("APIURL = %s", cfg.APIURL)
	}

	if err := SetValue(&cfg, "timeout_seconds", "30"); err != nil {
		t.Fatal(err)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}

	if err := SetValue(&cfg, "verbose", "true"); err != nil || !cfg.Verbose {
		t.Errorf("verbose not set: %v", err)
	}

	if err := SetValue(&cfg, "markdown.style", "light"); err != nil || cfg.Markdown.Style != "light" {
		t.Errorf("markdown.style not set: %v", err)
	}

	invalid := []struct{ key, value string }{
		{"timeout_seconds", "soon"},
		{"timeout_seconds", "0"},
		{"verbose", "maybe"},
		{"default_model", "x"},
	}
	for _, tt := range invalid {
		if err := SetValue(&cfg, tt.key, tt.value); err == nil {
			t.Errorf("SetValue(%s, %s) expected error", tt.key, tt.value)
		}
	}
}
