// File: error_test.go
// Title: Error Tests
// Description: Tests for error creation, wrapping, code and severity
//              handling and JSON serialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "history database is locked"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("StackTrace()[0].Function = %s, want caller TestNew", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("source has %d bytes", 42)
	if err.Error() != "source has 42 bytes" {
		t.Errorf("Newf() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("open failed"),
			message:  "failed to read source",
			wantMsg:  "failed to read source: open failed",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error keeps code",
			err:      New("no such run").WithCode(CodeNotFound),
			message:  "history show",
			wantMsg:  "history show: no such run",
			wantCode: CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is() should find the wrapped error")
			}
		})
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	mdwErr := err.(*Error)
	if mdwErr.Details()["truncated"] != true {
		t.Error("deep chain should be flattened and marked truncated")
	}
	if !strings.Contains(mdwErr.Error(), "root") {
		t.Errorf("truncated error should mention the root cause, got %q", mdwErr.Error())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeInvalidInput, SeverityLow},
		{CodeStorageError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeSyntax)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("line", 3).WithDetails(map[string]interface{}{"column": 7})
	details := err.Details()
	details["line"] = 99

	if err.Details()["line"] != 3 {
		t.Error("Details() should return a copy")
	}
	if err.Details()["column"] != 7 {
		t.Errorf("Details()[column] = %v, want 7", err.Details()["column"])
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	inner := New("bad tab width").WithCode(CodeInvalidConfig)
	outer := fmt.Errorf("settings: %w", inner)

	if !HasCode(outer, CodeInvalidConfig) {
		t.Error("HasCode() should see through fmt wrapping")
	}
	if HasCode(outer, CodeSyntax) {
		t.Error("HasCode() matched the wrong code")
	}
	if GetCode(outer) != CodeInvalidConfig {
		t.Errorf("GetCode() = %v, want %v", GetCode(outer), CodeInvalidConfig)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("disk full")
	err := Wrap(Wrap(root, "insert run"), "record history")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "parse config").
		WithCode(CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", "pyan.toml")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal() error = %v", jsonErr)
	}

	if decoded["code"] != "CONFIG_ERROR" {
		t.Errorf("code = %v, want CONFIG_ERROR", decoded["code"])
	}
	if decoded["severity"] != "high" {
		t.Errorf("severity = %v, want high", decoded["severity"])
	}
	if decoded["operation"] != "config.Load" {
		t.Errorf("operation = %v, want config.Load", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v, want boom", decoded["cause"])
	}
}

func TestString(t *testing.T) {
	s := New("x").WithCode(CodeNotFound).WithDetail("b", 2).WithDetail("a", 1).String()

	for _, want := range []string{"Error: x", "Code: NOT_FOUND", "Severity: low", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}
