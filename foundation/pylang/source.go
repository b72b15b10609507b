// File: source.go
// Title: Source Normalization
// Description: Prepares raw source text for the lexer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package pylang

import "strings"

// NormalizeSource converts CRLF and CR line endings to LF and makes sure
// the text ends with a newline. Empty input stays empty.
func NormalizeSource(src string) string {
	if src == "" {
		return src
	}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	return src
}
