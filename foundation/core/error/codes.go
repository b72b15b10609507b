// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across pyanalyzer. Analysis
//              codes classify diagnostics, the remaining codes classify
//              operational failures of the CLI, configuration and
//              history layers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with analyzer codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Analysis codes
	CodeLexical  Code = "LEXICAL"
	CodeSyntax   Code = "SYNTAX"
	CodeSemantic Code = "SEMANTIC"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Input and lookup
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"

	// Storage
	CodeStorageError Code = "STORAGE_ERROR"

	// Generic codes
	CodeInternal Code = "INTERNAL"
	CodeUnknown  Code = "UNKNOWN"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeLexical, CodeSyntax, CodeSemantic,
		CodeConfigError, CodeInvalidConfig,
		CodeInvalidInput, CodeNotFound,
		CodeStorageError,
		CodeInternal, CodeUnknown:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeSemantic:
		return "analysis"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput, CodeNotFound:
		return "input"
	case CodeStorageError:
		return "storage"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for the CLI.
// Analysis findings exit with 1, usage and input problems with 2,
// everything else with 3.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "analysis":
		return 1
	case "input", "configuration":
		return 2
	default:
		return 3
	}
}
