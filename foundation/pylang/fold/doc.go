// File: doc.go
// Title: Constant Folding Package Documentation
// Description: Package overview for constant folding of assignments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

/*
Package fold infers the data type and value of identifiers from simple
assignments of the form "name = expression".

A right-hand side of a single token is copied into the symbol table as
it is written (strings, booleans, numerals, other identifiers). Longer
right-hand sides are converted to postfix order with the Shunting-Yard
algorithm and evaluated as float arithmetic. Operator precedence, from
high to low:

	**          right-associative
	unary -     prefix
	* / %       left-associative
	+ -         left-associative

A whole-number result is stored as "int", anything else as "float" with
six decimals. Every failure resets the target to unknown/N/A and adds a
SEMANTIC diagnostic to the lexical list.
*/
package fold
