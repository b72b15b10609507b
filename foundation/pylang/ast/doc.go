// File: doc.go
// Title: Parse Tree Package Documentation
// Description: Package overview for the parse tree produced by the
//              pylang parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

/*
Package ast defines the parse tree built by the pylang parser.

Every node has the same shape: a closed Kind, an optional value (the
operator, name or literal the node stands for) and an ordered list of
children. Statement blocks are not wrapped in a node of their own; the
statements of a body are appended directly to the owning IfStmt, Elif,
Else, ForStmt, WhileStmt or FuncDef.

	IfStmt(CompareOp[==](Identifier[x], Number[1]), PassStmt)

The package provides:
  • String for the compact form shown above
  • Render for the indented "Kind: value" listing
  • Walk, Inspect, Collect and Count for traversal
  • Validate for the structural rules of each kind
*/
package ast
