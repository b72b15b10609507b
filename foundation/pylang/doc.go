// File: doc.go
// Title: Analysis Engine Package Documentation
// Description: Package overview for the pylang analysis engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

/*
Package pylang analyzes source text of a small Python-like language.

An analysis runs in three stages:

 1. lexer: tokens, lexical diagnostics and the symbol table
 2. fold: type and value inference for simple assignments
 3. parser: the parse tree and syntax diagnostics

The parser only runs when the first two stages reported nothing, and the
tree is only meant to be shown when the parser reported nothing either.
Result.Status returns the matching status line.

Basic usage:

	analyzer, err := pylang.New(pylang.Options{})
	if err != nil {
		return err
	}
	result, err := analyzer.Run(src)
	if err != nil {
		return err
	}
	fmt.Println(result.Status())

Each Run creates its own lexer, folder and parser, so one Analyzer may be
used from several goroutines.
*/
package pylang
