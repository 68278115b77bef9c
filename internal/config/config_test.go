package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.TabWidth != 8 {
		t.Errorf("expected tab width 8, got %d", cfg.TabWidth)
	}
	if cfg.QuitTimes != 2 {
		t.Errorf("expected quit times 2, got %d", cfg.QuitTimes)
	}
	if cfg.MessageTimeout != 5 {
		t.Errorf("expected message timeout 5, got %d", cfg.MessageTimeout)
	}
	if !cfg.ShowWelcome {
		t.Error("expected welcome banner enabled")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiln.toml")
	content := "tab_width = 4\nquit_times = 1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TabWidth != 4 {
		t.Errorf("expected tab width 4, got %d", cfg.TabWidth)
	}
	if cfg.QuitTimes != 1 {
		t.Errorf("expected quit times 1, got %d", cfg.QuitTimes)
	}
	// Unset keys keep their defaults.
	if cfg.MessageTimeout != 5 {
		t.Errorf("expected default message timeout, got %d", cfg.MessageTimeout)
	}
}

func TestLoadClampsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiln.toml")
	content := "tab_width = 0\nmessage_timeout_seconds = -3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("expected clamped tab width 8, got %d", cfg.TabWidth)
	}
	if cfg.MessageTimeout != 5 {
		t.Errorf("expected clamped message timeout 5, got %d", cfg.MessageTimeout)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiln.toml")
	if err := os.WriteFile(path, []byte("tab_width = =\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}
