// File: token.go
// Title: Token Model
// Description: Defines the token kinds produced by the lexer, their
//              display names and the Token value itself.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

// Package token defines the lexical tokens of the analyzed language.
package token

import (
	"fmt"
	"strings"
)

// Kind represents the kind of a token
type Kind int

const (
	Keyword Kind = iota
	Identifier
	Hex
	Binary
	Octal
	Number
	String
	Operator
	Add
	Minus
	Multiply
	Delimiter
	Equal
	BitOr
	BitAnd
	Percentage
	Compare
	Divide
	Power
	Indent
	Dedent
	Newline
	Comment
	EOF
	AddAssign
	SubAssign
	MultiplyAssign
	NotAssign
)

// String returns the display name of the kind. The names are part of the
// token listing format and must not change; MULTIPLY_ASSIGN and
// NOT_ASSIGN have no display name of their own.
func (k Kind) String() string {
	switch k {
	case Keyword:
		return "KEYWORD"
	case Identifier:
		return "IDENTIFIER"
	case Hex:
		return "HEXADDECIMAL_NUMBER"
	case Binary:
		return "BINARY_NUMBER"
	case Octal:
		return "OCTAL_NUMBER"
	case Number:
		return "NUMBER"
	case String:
		return "STRING"
	case Operator:
		return "OPERATOR"
	case Add:
		return "ADD_OPERATOR"
	case Minus:
		return "MINUS_OPERATOR"
	case Multiply:
		return "MULTIPLY_OPERATOR"
	case Delimiter:
		return "DELIMITER"
	case Equal:
		return "EQUAL_OPERATOR"
	case BitOr:
		return "BITWISE_OR_OPERATOR"
	case BitAnd:
		return "BITWISE_AND_OPERATOR"
	case Percentage:
		return "PERCENTAGE_OPERATOR"
	case Compare:
		return "COMPARE_OPERATOR"
	case Divide:
		return "DIVIDE_OPERATOR"
	case Power:
		return "POWER_OPERATOR"
	case Indent:
		return "INDENT"
	case Dedent:
		return "DEDENT"
	case Newline:
		return "NEWLINE"
	case Comment:
		return "COMMENT"
	case EOF:
		return "ENDOFFILE"
	case AddAssign:
		return "Plusequal"
	case SubAssign:
		return "minusequal"
	default:
		return "UNKNOWN"
	}
}

// Name returns a stable identifier for the kind, used in JSON and YAML
// exports where the display name is ambiguous.
func (k Kind) Name() string {
	switch k {
	case MultiplyAssign:
		return "MULTIPLY_ASSIGN"
	case NotAssign:
		return "NOT_ASSIGN"
	case AddAssign:
		return "ADD_ASSIGN"
	case SubAssign:
		return "SUB_ASSIGN"
	case Hex:
		return "HEX_NUMBER"
	case EOF:
		return "EOF"
	default:
		return k.String()
	}
}

// IsNumeral reports whether k is one of the four numeral kinds
func (k Kind) IsNumeral() bool {
	return k == Number || k == Hex || k == Binary || k == Octal
}

// IsAssign reports whether k is an assignment operator accepted by the parser
func (k Kind) IsAssign() bool {
	return k == Equal || k == AddAssign || k == SubAssign || k == MultiplyAssign
}

// Token is a single lexical token. Line and Column are 1-based and
// point at the first character of the lexeme.
type Token struct {
	Lexeme string
	Kind   Kind
	Line   int
	Column int
}

// New creates a token
func New(kind Kind, lexeme string, line, column int) Token {
	return Token{Lexeme: lexeme, Kind: kind, Line: line, Column: column}
}

// String renders the token in listing form: [Line L:C] 'lexeme' (KIND)
func (t Token) String() string {
	return fmt.Sprintf("[Line %d:%d] '%s' (%s)", t.Line, t.Column, t.Lexeme, t.Kind)
}

// Is reports whether the token has the given kind and, ignoring case, lexeme
func (t Token) Is(kind Kind, lexeme string) bool {
	return t.Kind == kind && strings.EqualFold(t.Lexeme, lexeme)
}

// IsKeyword reports whether the token is the keyword word, ignoring case
func (t Token) IsKeyword(word string) bool {
	return t.Is(Keyword, word)
}

// IsDelimiter reports whether the token is the delimiter d
func (t Token) IsDelimiter(d string) bool {
	return t.Kind == Delimiter && t.Lexeme == d
}

// WithoutComments returns the tokens with every COMMENT removed. The
// input slice is not modified.
func WithoutComments(tokens []Token) []Token {
	result := make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != Comment {
			result = append(result, tok)
		}
	}
	return result
}
