// Package log provides structured logging for pyanalyzer.
//
// Package: log
// Title: pyanalyzer Structured Logging
// Description: Leveled, structured logging with immutable derived loggers,
//              several output formats, run-scoped context and a timer
//              for phase durations. Errors from the error package are
//              logged at a level derived from their severity.
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
//	import mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("component", "pylang-lexer").
//		WithRunID(runID)
//
//	logger.Debug("tokenized source", mdwlog.Fields{"tokens": n})
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.StopWithResult(errs.Len() == 0, errs.Len())
package log
