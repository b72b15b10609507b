// File: doc.go
// Title: Lexer Package Documentation
// Description: Package overview for the source tokenizer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

/*
Package lexer converts source text of the analyzed language into tokens.

The lexer makes one left-to-right pass. Besides the token stream it
produces:

  - INDENT and DEDENT tokens from an indentation stack that starts at [0]
  - symbol table entries for every identifier that is not a call
  - lexical diagnostics, which never stop the scan

Basic usage:

	lx := lexer.New(lexer.Options{Logger: logger})
	symbols := symtab.New()
	tokens, errs := lx.Tokenize(src, symbols)

Constant folding of assignments is not part of the lexer; see package fold.
*/
package lexer
