// File: watch_test.go
// Title: Configuration Watch Tests
// Description: Tests for explicit reloads and fsnotify driven reloads.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package config

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestReloadNotifiesHandlers(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyan.toml", "[analyzer]\ntab_width = 4\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var oldWidth, newWidth int
	cfg.OnChange(func(oldConfig, newConfig *Config) {
		oldWidth = oldConfig.GetInt("analyzer.tab_width")
		newWidth = newConfig.GetInt("analyzer.tab_width")
	})

	if err := os.WriteFile(path, []byte("[analyzer]\ntab_width = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Reload(); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if oldWidth != 4 || newWidth != 2 {
		t.Errorf("handler saw %d -> %d, want 4 -> 2", oldWidth, newWidth)
	}
	if cfg.GetInt("analyzer.tab_width") != 2 {
		t.Error("Reload() did not update the live config")
	}
}

func TestReloadKeepsDocumentOnParseError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyan.toml", "[analyzer]\ntab_width = 4\n")
	cfg, _ := Load(path)

	if err := os.WriteFile(path, []byte("[analyzer\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Reload(); err == nil {
		t.Fatal("Reload() error = nil, want parse error")
	}
	if cfg.GetInt("analyzer.tab_width") != 4 {
		t.Error("failed reload should keep the previous document")
	}
}

func TestWatchRequiresFile(t *testing.T) {
	cfg := NewEmpty("", nil)
	if err := cfg.Watch(context.Background()); err == nil {
		t.Error("Watch() without file should fail")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyan.toml", "[log]\nlevel = \"warn\"\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	changed := make(chan string, 4)
	cfg.OnChange(func(_, newConfig *Config) {
		changed <- newConfig.GetString("log.level")
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := cfg.Watch(ctx); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if !cfg.IsWatching() {
		t.Fatal("IsWatching() = false after Watch()")
	}

	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case level := <-changed:
		if level != "debug" {
			t.Errorf("reloaded level = %q, want debug", level)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}

	cfg.StopWatching()
	deadline := time.Now().Add(2 * time.Second)
	for cfg.IsWatching() && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if cfg.IsWatching() {
		t.Error("IsWatching() = true after StopWatching()")
	}
}
