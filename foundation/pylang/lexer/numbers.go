// File: numbers.go
// Title: Numeral Scanner
// Description: Scans decimal, hexadecimal, binary and octal numerals,
//              floating-point and scientific notation, and reports
//              malformed underscores, prefixes, exponents and suffixes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package lexer

import (
	"strings"

	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// radix describes one prefixed numeral form
type radix struct {
	kind   token.Kind
	name   string
	prefix string
	digit  func(rune) bool
}

var radixes = map[rune]radix{
	'x': {token.Hex, "hexadecimal", "0x", isHexDigit},
	'b': {token.Binary, "binary", "0b", func(c rune) bool { return c == '0' || c == '1' }},
	'o': {token.Octal, "octal", "0o", func(c rune) bool { return c >= '0' && c <= '7' }},
}

// scanNumber scans a numeral starting at a digit. Diagnostics point at
// the first digit.
func (l *Lexer) scanNumber() {
	start, line, col := l.pos, l.line, l.column

	if l.current() == '0' {
		if r, ok := radixes[toLowerASCII(l.peek())]; ok {
			l.scanPrefixed(r)
			return
		}
	}

	// A leading zero may only be followed by more zeros
	if l.current() == '0' && (isDigit(l.peek()) || l.peek() == '_') {
		l.advance()
		nonzero := false
		for isDigit(l.current()) || l.current() == '_' {
			if l.current() != '0' && l.current() != '_' {
				nonzero = true
			}
			l.advance()
		}
		if nonzero {
			l.errs.Addf(line, col, "Invalid number: %s (leading zeros are not allowed in decimal numbers)", l.text(start))
			return
		}
	}

	for isDigit(l.current()) || l.current() == '_' {
		l.advance()
	}

	hasDecimal := false
	if l.current() == '.' {
		hasDecimal = true
		l.advance()
		l.skipDigits()

		multiple := false
		for l.current() == '.' {
			multiple = true
			l.advance()
			l.skipDigits()
		}
		if multiple {
			l.errs.Addf(line, col, "Invalid floating-point number: %s (multiple decimal points)", l.text(start))
			return
		}
	}

	hasExponent := false
	if l.current() == 'e' || l.current() == 'E' {
		hasExponent = true
		l.advance()
		if l.current() == '+' || l.current() == '-' {
			l.advance()
			if l.current() == '+' || l.current() == '-' {
				for l.current() == '+' || l.current() == '-' {
					l.advance()
				}
				l.skipDigits()
				l.errs.Addf(line, col, "Invalid scientific notation: %s (invalid exponent sign combination)", l.text(start))
				return
			}
		}
		if !l.skipDigits() {
			l.errs.Addf(line, col, "Invalid scientific notation: %s (missing exponent digits)", l.text(start))
			return
		}
	}

	num := l.text(start)
	if msg := underscoreProblem(num, hasDecimal, hasExponent); msg != "" {
		l.errs.Add(line, col, msg)
		return
	}

	if l.current() == 'j' || l.current() == 'J' {
		l.advance()
		num = l.text(start)
		l.skipRun()
		l.errs.Addf(line, col, "Invalid token: %s (complex numbers are not supported)", num)
		return
	}

	if isLetter(l.current()) || l.current() == '_' {
		l.skipRun()
		l.errs.Addf(line, col, "Invalid number: %s (invalid trailing characters)", l.text(start))
		return
	}

	l.emit(token.Number, num, line, col)
}

// scanPrefixed scans 0x, 0b and 0o numerals
func (l *Lexer) scanPrefixed(r radix) {
	start, line, col := l.pos, l.line, l.column
	l.advance()
	l.advance()

	hasDigits := false
	for r.digit(l.current()) || l.current() == '_' {
		if l.current() != '_' {
			hasDigits = true
		}
		l.advance()
	}

	if r.kind == token.Octal && (l.current() == '8' || l.current() == '9') {
		l.skipRun()
		l.errs.Addf(line, col, "Invalid octal number: %s (contains digits 8 or 9)", l.text(start))
		return
	}

	if !hasDigits {
		l.skipRun()
		l.errs.Addf(line, col, "Invalid %s number: %s (no %s digits after %s)", r.name, l.text(start), r.name, r.prefix)
		return
	}

	num := l.text(start)
	if !validUnderscores(num) {
		l.errs.Addf(line, col, "Invalid underscore placement in %s number: %s", r.name, num)
		return
	}

	if isAlnum(l.current()) || l.current() == '_' {
		l.skipRun()
		l.errs.Addf(line, col, "Invalid %s number: %s (invalid trailing characters)", r.name, l.text(start))
		return
	}

	l.emit(r.kind, num, line, col)
}

// skipDigits advances over digits and underscores and reports whether at
// least one digit was seen
func (l *Lexer) skipDigits() bool {
	seen := false
	for isDigit(l.current()) || l.current() == '_' {
		if l.current() != '_' {
			seen = true
		}
		l.advance()
	}
	return seen
}

// validUnderscores reports whether num has no leading, trailing or
// doubled underscore
func validUnderscores(num string) bool {
	if num == "" {
		return true
	}
	return !strings.HasPrefix(num, "_") && !strings.HasSuffix(num, "_") && !strings.Contains(num, "__")
}

// underscoreProblem returns the diagnostic for a misplaced underscore in
// a decimal numeral, or "" when the placement is valid
func underscoreProblem(num string, hasDecimal, hasExponent bool) string {
	if !strings.Contains(num, "_") {
		return ""
	}
	if !validUnderscores(num) {
		return "Invalid underscore placement in number: " + num
	}
	if hasDecimal && (strings.Contains(num, "._") || strings.Contains(num, "_.")) {
		return "Invalid underscore placement in number: " + num + " (underscore adjacent to decimal point)"
	}
	if hasExponent {
		e := strings.IndexAny(num, "eE")
		switch {
		case e > 0 && num[e-1] == '_':
			return "Invalid underscore placement in number: " + num + " (underscore before 'e'/'E')"
		case e+1 < len(num) && num[e+1] == '_':
			return "Invalid underscore placement in number: " + num + " (underscore after 'e'/'E')"
		case e+2 < len(num) && (num[e+1] == '+' || num[e+1] == '-') && num[e+2] == '_':
			return "Invalid underscore placement in number: " + num + " (underscore after exponent sign)"
		}
	}
	return ""
}

func toLowerASCII(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
