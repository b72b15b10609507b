// ============================================================================
// pyanalyzer (pyan) - Analysewerkzeug fuer Python-aehnlichen Quelltext
// ============================================================================
//
// Package:     version
// Description: Central version management for the analyzer components
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

// Version constants for all pyan components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Lexer    = "0.1.0"
	Fold     = "0.1.0"
	Parser   = "0.1.0"
	Explorer = "0.1.0"
	History  = "0.1.0"

	// Grammar is the revision of the accepted language. It changes when
	// a source that parsed before parses differently.
	Grammar = "1"
)

// Components lists the component names known to ComponentVersion
var Components = []string{"lexer", "fold", "parser", "explorer", "history"}

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "fold":
		return Fold
	case "parser":
		return Parser
	case "explorer":
		return Explorer
	case "history":
		return History
	default:
		return Platform
	}
}
