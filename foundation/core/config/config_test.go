// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, defaults, environment overrides,
//              discovery and validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
)

const sampleTOML = `
[analyzer]
tab_width = 4
single_statement_blocks = false

[log]
level = "debug"
format = "text"

[history]
path = "./data/history.db"
keep = 50
retention = "72h"
tags = ["ci", "local"]
`

const sampleYAML = `
analyzer:
  tab_width: 2
log:
  level: info
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyan.toml", sampleTOML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v, want toml", cfg.Format())
	}
	if got := cfg.GetInt("analyzer.tab_width"); got != 4 {
		t.Errorf("GetInt(analyzer.tab_width) = %d, want 4", got)
	}
	if got := cfg.GetBool("analyzer.single_statement_blocks", true); got {
		t.Errorf("GetBool(analyzer.single_statement_blocks) = %v, want false", got)
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("GetString(log.level) = %q, want debug", got)
	}
	if got := cfg.GetDuration("history.retention"); got != 72*time.Hour {
		t.Errorf("GetDuration(history.retention) = %v, want 72h", got)
	}
	if got := cfg.GetStringSlice("history.tags"); !reflect.DeepEqual(got, []string{"ci", "local"}) {
		t.Errorf("GetStringSlice(history.tags) = %v", got)
	}
	if got := cfg.GetString("history.keep"); got != "50" {
		t.Errorf("GetString(history.keep) = %q, want 50", got)
	}
	if got := cfg.GetInt("missing.key", 7); got != 7 {
		t.Errorf("GetInt(missing.key, 7) = %d, want 7", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyan.yaml", sampleYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v, want yaml", cfg.Format())
	}
	if got := cfg.GetInt("analyzer.tab_width"); got != 2 {
		t.Errorf("GetInt(analyzer.tab_width) = %d, want 2", got)
	}
	if got := cfg.GetString("log.level"); got != "info" {
		t.Errorf("GetString(log.level) = %q, want info", got)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.toml", "[analyzer\ntab_width = ")

	tests := []struct {
		name     string
		path     string
		wantCode mdwerror.Code
	}{
		{"blank path", "  ", mdwerror.CodeInvalidInput},
		{"missing file", filepath.Join(dir, "nope.toml"), mdwerror.CodeNotFound},
		{"broken toml", broken, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("Load() error code = %v, want %v", mdwerror.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestDefaultsAreDeepMerged(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pyan.toml", sampleTOML)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"analyzer": map[string]interface{}{
				"tab_width":        8,
				"max_source_bytes": 1024,
			},
			"output": map[string]interface{}{"format": "text"},
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetInt("analyzer.tab_width"); got != 4 {
		t.Errorf("file value should win: tab_width = %d, want 4", got)
	}
	if got := cfg.GetInt("analyzer.max_source_bytes"); got != 1024 {
		t.Errorf("default inside same table lost: max_source_bytes = %d", got)
	}
	if got := cfg.GetString("output.format"); got != "text" {
		t.Errorf("default table lost: output.format = %q", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	cfg.envPrefix = "PYAN"

	if key := cfg.EnvKey("analyzer.tab_width"); key != "PYAN_ANALYZER_TAB_WIDTH" {
		t.Fatalf("EnvKey() = %q", key)
	}

	t.Setenv("PYAN_ANALYZER_TAB_WIDTH", "3")
	t.Setenv("PYAN_OUTPUT_FORMAT", "json")

	if got := cfg.GetInt("analyzer.tab_width"); got != 3 {
		t.Errorf("GetInt() with env = %d, want 3", got)
	}
	if !cfg.Has("output.format") {
		t.Error("Has() should see environment-only keys")
	}
	if got := cfg.GetString("output.format"); got != "json" {
		t.Errorf("GetString() with env = %q, want json", got)
	}
}

func TestSetGetAllKeys(t *testing.T) {
	cfg := NewEmpty("", nil)
	cfg.Set("history.enabled", true)
	cfg.Set("history.keep", 10)

	all := cfg.GetAll()
	all["history"].(map[string]interface{})["keep"] = 99
	if got := cfg.GetInt("history.keep"); got != 10 {
		t.Errorf("GetAll() should return a copy, keep = %d", got)
	}

	if got := cfg.Keys(); !reflect.DeepEqual(got, []string{"history.enabled", "history.keep"}) {
		t.Errorf("Keys() = %v", got)
	}
	if !strings.Contains(cfg.String(), "keys: 1") {
		t.Errorf("String() = %q", cfg.String())
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "configs")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, nested, "pyan.yml", sampleYAML)

	opts := DiscoveryOptions{
		Paths:     []string{dir, nested},
		Filenames: []string{"pyan"},
	}

	found, err := FindConfigFile(opts)
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != path {
		t.Errorf("FindConfigFile() = %q, want %q", found, path)
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg.GetInt("analyzer.tab_width") != 2 {
		t.Error("Discover() loaded the wrong file")
	}

	empty := DiscoveryOptions{Paths: []string{t.TempDir()}, Defaults: map[string]interface{}{"log": map[string]interface{}{"level": "warn"}}}
	cfg, err = Discover(empty)
	if err != nil {
		t.Fatalf("Discover() optional error = %v", err)
	}
	if cfg.GetString("log.level") != "warn" {
		t.Error("Discover() without file should keep defaults")
	}

	empty.Required = true
	if _, err := Discover(empty); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Discover() required error = %v, want NOT_FOUND", err)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML+"\n[output]\nformat = \"xml\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	ok := ValidationRules{
		"analyzer.tab_width": {Type: "int", Min: IntBound(1), Max: IntBound(16)},
		"log.level":          {Required: true, OneOf: []string{"trace", "debug", "info", "warn", "error", "off"}},
	}
	if err := cfg.Validate(ok); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	bad := ValidationRules{
		"analyzer.tab_width": {Type: "int", Max: IntBound(2)},
		"output.format":      {OneOf: []string{"text", "json", "yaml", "dot"}},
		"history.enabled":    {Required: true, Type: "bool"},
	}
	err = cfg.Validate(bad)
	if err == nil {
		t.Fatal("Validate() error = nil, want violations")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Validate() code = %v", mdwerror.GetCode(err))
	}
	violations := err.(*mdwerror.Error).Details()["violations"].([]string)
	if len(violations) != 3 {
		t.Errorf("violations = %v, want 3 entries", violations)
	}
}
