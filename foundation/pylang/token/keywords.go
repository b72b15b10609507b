// File: keywords.go
// Title: Word Classes
// Description: Keyword, type-annotation and builtin word sets.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package token

import "strings"

var keywords = map[string]struct{}{
	"false": {}, "none": {}, "true": {}, "and": {}, "as": {},
	"assert": {}, "async": {}, "await": {}, "break": {}, "class": {},
	"continue": {}, "def": {}, "del": {}, "elif": {}, "else": {},
	"except": {}, "finally": {}, "for": {}, "from": {}, "global": {},
	"if": {}, "import": {}, "in": {}, "is": {}, "lambda": {},
	"nonlocal": {}, "not": {}, "or": {}, "pass": {}, "raise": {},
	"return": {}, "try": {}, "while": {}, "with": {}, "yield": {},
}

var typeWords = map[string]struct{}{
	"int": {}, "float": {}, "str": {}, "bool": {}, "complex": {},
}

var builtinFunctions = map[string]struct{}{
	"print": {},
}

var builtinCalls = map[string]struct{}{
	"print": {}, "len": {}, "input": {},
}

// IsKeyword reports whether word is a keyword, ignoring case
func IsKeyword(word string) bool {
	_, ok := keywords[strings.ToLower(word)]
	return ok
}

// IsTypeWord reports whether word may start a type annotation such as "int x"
func IsTypeWord(word string) bool {
	_, ok := typeWords[strings.ToLower(word)]
	return ok
}

// IsBuiltinFunction reports whether word names a builtin that the lexer
// records in the symbol table as a function
func IsBuiltinFunction(word string) bool {
	_, ok := builtinFunctions[strings.ToLower(word)]
	return ok
}

// IsBuiltinCall reports whether word names a builtin the parser turns
// into a call statement
func IsBuiltinCall(word string) bool {
	_, ok := builtinCalls[strings.ToLower(word)]
	return ok
}

// IsBoolLiteral reports whether word is True or False, ignoring case
func IsBoolLiteral(word string) bool {
	lower := strings.ToLower(word)
	return lower == "true" || lower == "false"
}
