// Package stringx provides the small string helpers shared by the
// configuration layer and the report renderers.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks and display-width aware padding and
//              truncation for terminal output. Widths are measured in
//              terminal cells, so wide runes in identifiers or string
//              literals keep table columns aligned.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
package stringx
