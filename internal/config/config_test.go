// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for askwire.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Backend.BaseURL == "" {
		t.Error("Default base URL should not be empty")
	}
	if cfg.Backend.TimeoutSecs != 60 {
		t.Errorf("TimeoutSecs = %d, want 60", cfg.Backend.TimeoutSecs)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Defaults should validate, got %v", err)
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Backend.BaseURL != DefaultConfig().Backend.BaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.Backend.BaseURL)
	}
}

func TestLoadFrom_ParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = "1"

[backend]
base_url = "https://answers.internal.example/"
timeout_secs = 30

[ui]
wrap = 80
show_timestamps = true
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	// Trailing slash is trimmed during validation.
	if cfg.Backend.BaseURL != "https://answers.internal.example" {
		t.Errorf("BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.TimeoutSecs != 30 {
		t.Errorf("TimeoutSecs = %d, want 30", cfg.Backend.TimeoutSecs)
	}
	if cfg.UI.Wrap != 80 {
		t.Errorf("Wrap = %d, want 80", cfg.UI.Wrap)
	}
	if !cfg.UI.ShowTimestamps {
		t.Error("ShowTimestamps should be true")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[backend]
base_url = "https://from-file.example"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvBaseURL, "https://from-env.example")
	t.Setenv(EnvAPIKey, "sk-aw-env")
	t.Setenv(EnvTimeoutSecs, "15")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Backend.BaseURL != "https://from-env.example" {
		t.Errorf("BaseURL = %q, env should win", cfg.Backend.BaseURL)
	}
	if cfg.Backend.APIKey != "sk-aw-env" {
		t.Errorf("APIKey = %q", cfg.Backend.APIKey)
	}
	if cfg.Backend.TimeoutSecs != 15 {
		t.Errorf("TimeoutSecs = %d, want 15", cfg.Backend.TimeoutSecs)
	}
}

func TestValidate_RejectsBadURLs(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"not-a-url",
		"ftp://example.com",
	}
	for _, base := range tests {
		cfg := DefaultConfig()
		cfg.Backend.BaseURL = base
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate should reject base URL %q", base)
		}
	}
}

func TestValidate_ClampsTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend.TimeoutSecs = 1
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.TimeoutSecs != MinTimeoutSecs {
		t.Errorf("TimeoutSecs = %d, want clamped to %d", cfg.Backend.TimeoutSecs, MinTimeoutSecs)
	}

	cfg.Backend.TimeoutSecs = 9999
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.TimeoutSecs != MaxTimeoutSecs {
		t.Errorf("TimeoutSecs = %d, want clamped to %d", cfg.Backend.TimeoutSecs, MaxTimeoutSecs)
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Backend.BaseURL = "https://saved.example"
	cfg.UI.Wrap = 72
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Backend.BaseURL != "https://saved.example" {
		t.Errorf("BaseURL = %q", loaded.Backend.BaseURL)
	}
	if loaded.UI.Wrap != 72 {
		t.Errorf("Wrap = %d, want 72", loaded.UI.Wrap)
	}
}

func TestRedacted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Backend.APIKey = "sk-aw-secret"

	red := cfg.Redacted()
	if red.Backend.APIKey == "sk-aw-secret" {
		t.Error("Redacted config must not contain the API key")
	}
	// Original untouched.
	if cfg.Backend.APIKey != "sk-aw-secret" {
		t.Error("Redacted must not modify the original")
	}
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	initial := DefaultConfig()
	if err := initial.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	loaded := make(chan *Config, 1)
	w, err := NewWatcher(path, func(cfg *Config) {
		select {
		case loaded <- cfg:
		default:
		}
	})
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	updated := DefaultConfig()
	updated.Backend.BaseURL = "https://reloaded.example"
	if err := updated.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-loaded:
		if cfg.Backend.BaseURL != "https://reloaded.example" {
			t.Errorf("Reloaded BaseURL = %q", cfg.Backend.BaseURL)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for config reload")
	}
}
