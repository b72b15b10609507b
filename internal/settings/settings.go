// ============================================================================
// pyanalyzer (pyan) - Analysewerkzeug fuer Python-aehnlichen Quelltext
// ============================================================================
//
// Package:     settings
// Description: Typed application settings on top of the foundation config
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwconfig "github.com/msto63/pyanalyzer/foundation/core/config"
	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
	"github.com/msto63/pyanalyzer/foundation/pylang"
	mdwstringx "github.com/msto63/pyanalyzer/foundation/utils/stringx"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDOT  = "dot"
)

// Formats lists every supported output format
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatDOT}

// Settings holds the complete application configuration
type Settings struct {
	Analyzer AnalyzerSettings
	Log      LogSettings
	History  HistorySettings
	Output   OutputSettings

	// File is the loaded configuration file, empty when only defaults apply
	File string
}

// AnalyzerSettings configures the analysis engine
type AnalyzerSettings struct {
	TabWidth              int
	SingleStatementBlocks bool
	MaxSourceBytes        int
}

// LogSettings configures the application logger
type LogSettings struct {
	Level  string
	Format string
}

// HistorySettings configures the run history database
type HistorySettings struct {
	Enabled bool
	Path    string
	Keep    int
}

// OutputSettings configures report rendering
type OutputSettings struct {
	Format string
	Color  bool
}

// Defaults returns the default configuration document
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"analyzer": map[string]interface{}{
			"tab_width":               8,
			"single_statement_blocks": false,
			"max_source_bytes":        pylang.DefaultMaxSourceBytes,
		},
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "console",
		},
		"history": map[string]interface{}{
			"enabled": true,
			"path":    "./data/history.db",
			"keep":    500,
		},
		"output": map[string]interface{}{
			"format": FormatText,
			"color":  true,
		},
	}
}

// Rules returns the validation rules for the configuration document
func Rules() mdwconfig.ValidationRules {
	return mdwconfig.ValidationRules{
		"analyzer.tab_width":        {Type: "int", Min: mdwconfig.IntBound(1), Max: mdwconfig.IntBound(16)},
		"analyzer.max_source_bytes": {Type: "int", Min: mdwconfig.IntBound(1)},
		"log.level":                 {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error", "fatal", "off"}},
		"log.format":                {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
		"history.path":              {Type: "string"},
		"history.keep":              {Type: "int", Min: mdwconfig.IntBound(0)},
		"output.format":             {Type: "string", OneOf: Formats},
	}
}

// Load reads the configuration file at path (or $PYAN_CONFIG), and
// discovers pyan.toml / pyan.yaml when neither is set. Environment
// variables with the PYAN_ prefix override file values.
func Load(path string) (*Settings, *mdwconfig.Config, error) {
	path = mdwstringx.FirstNonBlank(path, os.Getenv("PYAN_CONFIG"))
	var (
		cfg *mdwconfig.Config
		err error
	)
	if path != "" {
		cfg, err = mdwconfig.LoadWithOptions(path, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: "PYAN",
			Defaults:  Defaults(),
		})
	} else {
		opts := mdwconfig.DefaultDiscoveryOptions()
		opts.Defaults = Defaults()
		cfg, err = mdwconfig.Discover(opts)
	}
	if err != nil {
		return nil, nil, err
	}

	s, err := FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}

// FromConfig validates cfg and maps it onto Settings
func FromConfig(cfg *mdwconfig.Config) (*Settings, error) {
	if err := cfg.Validate(Rules()); err != nil {
		return nil, err
	}

	s := &Settings{
		Analyzer: AnalyzerSettings{
			TabWidth:              cfg.GetInt("analyzer.tab_width", 8),
			SingleStatementBlocks: cfg.GetBool("analyzer.single_statement_blocks"),
			MaxSourceBytes:        cfg.GetInt("analyzer.max_source_bytes", pylang.DefaultMaxSourceBytes),
		},
		Log: LogSettings{
			Level:  strings.ToLower(cfg.GetString("log.level", "warn")),
			Format: strings.ToLower(cfg.GetString("log.format", "console")),
		},
		History: HistorySettings{
			Enabled: cfg.GetBool("history.enabled", true),
			Path:    cfg.GetString("history.path", "./data/history.db"),
			Keep:    cfg.GetInt("history.keep", 500),
		},
		Output: OutputSettings{
			Format: strings.ToLower(cfg.GetString("output.format", FormatText)),
			Color:  cfg.GetBool("output.color", true),
		},
		File: cfg.FilePath(),
	}

	// a relative history path is resolved against the config file
	if s.File != "" && !filepath.IsAbs(s.History.Path) {
		s.History.Path = filepath.Join(filepath.Dir(s.File), s.History.Path)
	}
	return s, nil
}

// AnalyzerOptions returns the engine options for these settings
func (s *Settings) AnalyzerOptions(logger *mdwlog.Logger) pylang.Options {
	return pylang.Options{
		Logger:                logger,
		TabWidth:              s.Analyzer.TabWidth,
		SingleStatementBlocks: s.Analyzer.SingleStatementBlocks,
		MaxSourceBytes:        s.Analyzer.MaxSourceBytes,
	}
}

// Logger creates the application logger for these settings
func (s *Settings) Logger() (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("settings.Logger")
	}
	format, err := mdwlog.ParseFormat(s.Log.Format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("settings.Logger")
	}
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Name:   "pyan",
	}), nil
}

// Watch reloads the settings whenever the configuration file changes and
// passes them to fn. Invalid documents are reported to onErr and skipped.
func Watch(ctx context.Context, cfg *mdwconfig.Config, fn func(*Settings), onErr func(error)) error {
	if cfg.FilePath() == "" {
		return mdwerror.New("no configuration file to watch").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("settings.Watch")
	}
	cfg.OnChange(func(_, newConfig *mdwconfig.Config) {
		s, err := FromConfig(newConfig)
		if err != nil {
			if onErr != nil {
				onErr(err)
			}
			return
		}
		fn(s)
	})
	return cfg.Watch(ctx, onErr)
}

// String summarizes the settings for the "config" output of the CLI
func (s *Settings) String() string {
	var b strings.Builder
	file := s.File
	if file == "" {
		file = "(defaults)"
	}
	fmt.Fprintf(&b, "config file:             %s\n", file)
	fmt.Fprintf(&b, "analyzer.tab_width:      %d\n", s.Analyzer.TabWidth)
	fmt.Fprintf(&b, "analyzer.single_blocks:  %t\n", s.Analyzer.SingleStatementBlocks)
	fmt.Fprintf(&b, "analyzer.max_source:     %d\n", s.Analyzer.MaxSourceBytes)
	fmt.Fprintf(&b, "log.level / format:      %s / %s\n", s.Log.Level, s.Log.Format)
	fmt.Fprintf(&b, "history:                 enabled=%t path=%s keep=%d\n", s.History.Enabled, s.History.Path, s.History.Keep)
	fmt.Fprintf(&b, "output:                  format=%s color=%t\n", s.Output.Format, s.Output.Color)
	return b.String()
}
