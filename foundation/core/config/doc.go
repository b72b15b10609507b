// Package config loads TOML or YAML configuration files with environment
// overrides and file watching.
//
// Package: config
// Title: Configuration Management
// Description: A thread-safe key/value view over a TOML or YAML document.
//              Keys use dot notation ("analyzer.tab_width"). Every getter
//              consults an environment variable first, derived from the
//              key and an optional prefix (PYAN_ANALYZER_TAB_WIDTH).
//              Files can be watched with fsnotify; registered handlers
//              receive the old and new configuration after each reload.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("pyan.toml", config.LoadOptions{
//		EnvPrefix: "PYAN",
//		Defaults:  map[string]interface{}{"log": map[string]interface{}{"level": "warn"}},
//	})
//	tabWidth := cfg.GetInt("analyzer.tab_width", 8)
//
//	cfg.OnChange(func(old, updated *config.Config) { ... })
//	if err := cfg.Watch(ctx); err != nil { ... }
package config
