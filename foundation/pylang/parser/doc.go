// File: doc.go
// Title: Parser Package Documentation
// Description: Package overview for the recursive descent parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

/*
Package parser builds a parse tree from the comment-free token stream of
the pylang lexer.

Grammar:

	program    := {statement}
	statement  := if-chain | for | while | def | return | pass | break
	            | continue | builtin-call | assignment | expr-statement
	if-chain   := 'if' comparison ':' block {'elif' comparison ':' block}
	              ['else' ':' block]
	for        := 'for' IDENT {',' IDENT} 'in' comparison ':' block
	while      := 'while' ['('] comparison [')'] ':' block
	def        := 'def' IDENT '(' [IDENT {',' IDENT}] ')' ':' block
	return     := 'return' [comparison]
	comparison := expression {cmpop expression}
	expression := term {('+'|'-') term}
	term       := factor {('*'|'/'|'%') factor}
	factor     := ('+'|'-') factor | power
	power      := atom ['**' factor]
	atom       := '(' comparison ')' | STRING | bool | numeral
	            | IDENT ['(' args ')']

A block is an INDENT followed by statements up to the matching DEDENT. The
statements of a block become direct children of the construct that owns
it. With Options.SingleStatementBlocks a block holds exactly one
statement.

Problems are recorded as syntax diagnostics and never stop the parse: the
failing construct is dropped, the parser skips to the end of its line
(and over the block of a failed compound header) and continues.
*/
package parser
