// Package error provides coded, contextual errors for pyanalyzer.
//
// Package: error
// Title: pyanalyzer Error Handling
// Description: Structured errors with a code, a severity, free-form details
//              and a captured call stack. The analyzer core reports
//              source problems as diagnostics; this package carries the
//              operational failures around it (configuration, input,
//              history storage) and the coded form of a diagnostic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation for the analyzer domain
//
// Usage:
//
//	import mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
//
//	err := mdwerror.New("source exceeds size limit").
//		WithCode(mdwerror.CodeInvalidInput).
//		WithDetail("bytes", n).
//		WithOperation("pylang.Run")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
//		// reject the input
//	}
package error
