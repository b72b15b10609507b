// File: numbers_test.go
// Title: Numeral Scanner Tests
// Description: Tests for the four numeral kinds and every malformed
//              numeral diagnostic.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package lexer

import (
	"testing"

	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

func TestScanNumber_Valid(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.Number},
		{"00", token.Number},
		{"42", token.Number},
		{"1_000", token.Number},
		{"3.14", token.Number},
		{"1.", token.Number},
		{"3.14e-2", token.Number},
		{"2E+10", token.Number},
		{"0.5", token.Number},
		{"0x1A", token.Hex},
		{"0XfF_00", token.Hex},
		{"0b101", token.Binary},
		{"0B1_0", token.Binary},
		{"0o17", token.Octal},
		{"0O7", token.Octal},
	}

	for _, tt := range tests {
		tokens, errs, _ := TokenizeInput(tt.input + "\n")
		if !errs.Empty() {
			t.Errorf("%s: unexpected errors %v", tt.input, errs.Messages())
			continue
		}
		if tokens[0].Kind != tt.kind || tokens[0].Lexeme != tt.input {
			t.Errorf("%s: token = %v, want %s", tt.input, tokens[0], tt.kind)
		}
	}
}

func TestScanNumber_Invalid(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"007", "Invalid number: 007 (leading zeros are not allowed in decimal numbers)"},
		{"0_7", "Invalid number: 0_7 (leading zeros are not allowed in decimal numbers)"},
		{"1__0", "Invalid underscore placement in number: 1__0"},
		{"10_", "Invalid underscore placement in number: 10_"},
		{"1_.5", "Invalid underscore placement in number: 1_.5 (underscore adjacent to decimal point)"},
		{"1._5", "Invalid underscore placement in number: 1._5 (underscore adjacent to decimal point)"},
		{"1_e5", "Invalid underscore placement in number: 1_e5 (underscore before 'e'/'E')"},
		{"1e_5", "Invalid underscore placement in number: 1e_5 (underscore after 'e'/'E')"},
		{"1e-_5", "Invalid underscore placement in number: 1e-_5 (underscore after exponent sign)"},
		{"1j", "Invalid token: 1j (complex numbers are not supported)"},
		{"2.5J", "Invalid token: 2.5J (complex numbers are not supported)"},
		{"1.2.3", "Invalid floating-point number: 1.2.3 (multiple decimal points)"},
		{"1e", "Invalid scientific notation: 1e (missing exponent digits)"},
		{"1e+", "Invalid scientific notation: 1e+ (missing exponent digits)"},
		{"1e--5", "Invalid scientific notation: 1e--5 (invalid exponent sign combination)"},
		{"1e+-5", "Invalid scientific notation: 1e+-5 (invalid exponent sign combination)"},
		{"123abc", "Invalid number: 123abc (invalid trailing characters)"},
		{"0x", "Invalid hexadecimal number: 0x (no hexadecimal digits after 0x)"},
		{"0xZZ", "Invalid hexadecimal number: 0xZZ (no hexadecimal digits after 0x)"},
		{"0x1G", "Invalid hexadecimal number: 0x1G (invalid trailing characters)"},
		{"0x1__2", "Invalid underscore placement in hexadecimal number: 0x1__2"},
		{"0b", "Invalid binary number: 0b (no binary digits after 0b)"},
		{"0b102", "Invalid binary number: 0b102 (invalid trailing characters)"},
		{"0o", "Invalid octal number: 0o (no octal digits after 0o)"},
		{"0o78", "Invalid octal number: 0o78 (contains digits 8 or 9)"},
		{"0o9", "Invalid octal number: 0o9 (contains digits 8 or 9)"},
		{"0o7g", "Invalid octal number: 0o7g (invalid trailing characters)"},
	}

	for _, tt := range tests {
		tokens, errs, _ := TokenizeInput("x = " + tt.input + "\n")
		if errs.Len() != 1 {
			t.Errorf("%s: errors = %v, want one", tt.input, errs.Messages())
			continue
		}
		d := errs.At(0)
		if d.Message != tt.want {
			t.Errorf("%s: message = %q, want %q", tt.input, d.Message, tt.want)
		}
		if d.Line != 1 || d.Column != 5 {
			t.Errorf("%s: position = %d:%d, want 1:5", tt.input, d.Line, d.Column)
		}
		// the whole malformed numeral is consumed
		if len(tokens) != 4 || tokens[2].Kind != token.Newline {
			t.Errorf("%s: tokens = %v", tt.input, tokens)
		}
	}
}
