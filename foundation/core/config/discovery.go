// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first matching
//              configuration file and loads it. When nothing is found and
//              the file is optional, an empty configuration with the
//              defaults is returned.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
)

// DiscoveryOptions defines where and how to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
	Required   bool
}

// DefaultDiscoveryOptions searches the working directory, ./configs and
// the user config directory for pyan.toml, pyan.yaml or pyan.yml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./configs"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "pyan"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"pyan"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "PYAN",
	}
}

// Discover finds and loads the first configuration file matching options
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return NewEmpty(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing candidate path without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := options.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	filenames := options.Filenames
	if len(filenames) == 0 {
		filenames = []string{"pyan"}
	}
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	candidates := make([]string, 0, len(paths)*len(filenames)*len(extensions))
	for _, path := range paths {
		for _, filename := range filenames {
			for _, ext := range extensions {
				candidates = append(candidates, filepath.Join(path, filename+ext))
			}
		}
	}
	return candidates
}
