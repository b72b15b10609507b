// File: timer.go
// Title: Phase Timer
// Description: Measures the duration of an operation such as a lexing or
//              parsing phase and logs it when stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures a single operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a running timer for operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs "<operation> completed".
// A stopped timer returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.operation+" completed", t.level, nil)
}

// StopWithError stops the timer and logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	t.fields["success"] = false
	return t.finish(t.operation+" failed", LevelError, err)
}

// StopWithResult stops the timer and logs the outcome. An unsuccessful
// result is raised to at least warn level.
func (t *Timer) StopWithResult(success bool, result interface{}) time.Duration {
	message := t.operation + " completed successfully"
	level := t.level
	if !success {
		message = t.operation + " completed with errors"
		if level < LevelWarn {
			level = LevelWarn
		}
	}

	t.fields["success"] = success
	if result != nil {
		t.fields["result"] = result
	}
	return t.finish(message, level, nil)
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true until the timer is stopped or cancelled
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(message string, level Level, err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	t.logger.log(level, message, err, t.fields)

	return elapsed
}
