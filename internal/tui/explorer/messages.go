// ============================================================================
// pyanalyzer (pyan) - Analysewerkzeug fuer Python-aehnlichen Quelltext
// ============================================================================
//
// Package:     explorer
// Description: Message types for async operations in the Explorer
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package explorer

import "github.com/msto63/pyanalyzer/foundation/pylang"

// analyzedMsg is sent when an analysis run has finished
type analyzedMsg struct {
	result *pylang.Result
	err    error
}

// fileChangedMsg is sent when the watched source file was written
type fileChangedMsg struct{}

// watchErrMsg is sent when the file watcher reports an error
type watchErrMsg struct {
	err error
}
