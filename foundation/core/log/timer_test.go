// File: timer_test.go
// Title: Timer Tests
// Description: Tests for phase timing and its log output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package log

import (
	"errors"
	"strings"
	"testing"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("lex").WithField("bytes", 42)
	if !timer.IsRunning() {
		t.Fatal("new timer should be running")
	}

	timer.Stop()
	out := buf.String()
	if !strings.Contains(out, "lex completed") {
		t.Errorf("Stop() output %q missing completion message", out)
	}
	if !strings.Contains(out, "bytes=42") || !strings.Contains(out, "operation=lex") {
		t.Errorf("Stop() output %q missing fields", out)
	}

	if timer.IsRunning() {
		t.Error("stopped timer should not be running")
	}
	if d := timer.Stop(); d != 0 {
		t.Errorf("second Stop() = %v, want 0", d)
	}
	if strings.Count(buf.String(), "lex completed") != 1 {
		t.Error("second Stop() should not log")
	}
}

func TestTimerStopWithResult(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.StartTimer("parse").StopWithResult(true, 0)
	if buf.Len() != 0 {
		t.Errorf("successful result at debug should be filtered, got %q", buf.String())
	}

	logger.StartTimer("parse").StopWithResult(false, 2)
	out := buf.String()
	if !strings.Contains(out, "parse completed with errors") || !strings.Contains(out, "[WRN]") {
		t.Errorf("failed result should log at warn, got %q", out)
	}
	if !strings.Contains(out, "result=2") {
		t.Errorf("result field missing from %q", out)
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelError, FormatText)
	logger.StartTimer("history").StopWithError(errors.New("locked"))

	out := buf.String()
	if !strings.Contains(out, "history failed") || !strings.Contains(out, `error="locked"`) {
		t.Errorf("StopWithError() output = %q", out)
	}
}

func TestTimerCancel(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	timer := logger.StartTimer("fold")
	timer.Cancel()
	timer.Stop()

	if buf.Len() != 0 {
		t.Errorf("cancelled timer logged %q", buf.String())
	}
}
