// File: fold.go
// Title: Constant Folder
// Description: Infers type and value of simple assignments after the
//              lexer has run. Single-token right-hand sides are copied
//              directly; longer ones are evaluated as constant
//              arithmetic. Failures degrade the target to unknown/N/A
//              and are reported with the lexical diagnostics.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fold

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// Options configures a Folder
type Options struct {
	Logger *mdwlog.Logger
}

// Folder runs constant folding over a token stream
type Folder struct {
	logger *mdwlog.Logger
}

// New creates a folder
func New(opts Options) *Folder {
	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Folder{logger: logger.WithField("component", "pylang-fold")}
}

// Run folds every "name = ..." statement in tokens, updating symbols and
// appending problems to errs. An assignment whose lines already carry a
// diagnostic in errs is not evaluated.
func (f *Folder) Run(tokens []token.Token, symbols *symtab.Table, errs *diag.List) {
	folded := 0
	i := 0
	for i < len(tokens) {
		// "-x = ..." and "+x = ..."
		if (tokens[i].Kind == token.Minus || tokens[i].Kind == token.Add) &&
			i+2 < len(tokens) &&
			tokens[i+1].Kind == token.Identifier &&
			tokens[i+2].Kind == token.Equal {
			errs.AddCode(mdwerror.CodeSemantic, tokens[i].Line, tokens[i].Column,
				fmt.Sprintf("%s: cannot assign to an expression like '%s%s'",
					ErrInvalidTarget, tokens[i].Lexeme, tokens[i+1].Lexeme))
			i += 3
			continue
		}

		if tokens[i].Kind != token.Identifier || i+1 >= len(tokens) || tokens[i+1].Kind != token.Equal {
			i++
			continue
		}

		target := tokens[i]
		j := i + 2
		var expr []token.Token
		for j < len(tokens) && tokens[j].Kind != token.Newline && tokens[j].Kind != token.EOF {
			if tokens[j].Kind != token.Comment {
				expr = append(expr, tokens[j])
			}
			j++
		}
		end := tokens[len(tokens)-1].Line
		if j < len(tokens) {
			end = tokens[j].Line
		}
		i = j

		if errs.OnLines(target.Line, end) {
			symbols.Reset(target.Lexeme)
			f.logger.Debug("assignment skipped", mdwlog.Fields{
				"target": target.Lexeme,
				"line":   target.Line,
				"reason": "lexical error on assignment lines",
			})
			continue
		}
		if len(expr) == 0 {
			continue
		}
		if len(expr) > 1 && !arithmetic(expr) {
			symbols.Reset(target.Lexeme)
			f.logger.Debug("assignment not folded", mdwlog.Fields{
				"target": target.Lexeme,
				"line":   target.Line,
				"reason": "comparison or string operand",
			})
			continue
		}

		if err := f.assign(target, expr, symbols); err != nil {
			symbols.Reset(target.Lexeme)
			errs.AddCode(mdwerror.CodeSemantic, target.Line, target.Column, err.Error())
			f.logger.Debug("assignment not folded", mdwlog.Fields{
				"target": target.Lexeme,
				"line":   target.Line,
				"error":  err.Error(),
			})
			continue
		}
		folded++
	}

	f.logger.Debug("constant folding finished", mdwlog.Fields{
		"folded": folded,
		"errors": errs.Len(),
	})
}

// assign infers type and value of target from expr
func (f *Folder) assign(target token.Token, expr []token.Token, symbols *symtab.Table) error {
	name := target.Lexeme

	if len(expr) == 1 {
		if handled, err := assignSingle(name, expr[0], symbols); handled {
			return err
		}
	}

	postfix, err := ToPostfix(expr)
	if err != nil {
		return err
	}
	v, err := Evaluate(postfix, symbols)
	if err != nil {
		return err
	}
	dataType, value := FormatResult(v)
	symbols.SetInfo(name, dataType, value)
	return nil
}

// arithmetic reports whether expr can be evaluated as constant
// arithmetic. Comparisons and string operands leave the target unknown.
func arithmetic(expr []token.Token) bool {
	for _, tok := range expr {
		if tok.Kind == token.Compare || tok.Kind == token.String {
			return false
		}
	}
	return true
}

// assignSingle handles a right-hand side of one token. It reports false
// when the token needs the general evaluator.
func assignSingle(name string, tok token.Token, symbols *symtab.Table) (bool, error) {
	switch tok.Kind {
	case token.String:
		symbols.SetInfo(name, symtab.TypeString, tok.Lexeme)
	case token.Keyword:
		if !token.IsBoolLiteral(tok.Lexeme) {
			return false, nil
		}
		symbols.SetInfo(name, symtab.TypeBool, strings.ToLower(tok.Lexeme))
	case token.Hex, token.Binary, token.Octal:
		symbols.SetInfo(name, symtab.TypeInt, tok.Lexeme)
	case token.Number:
		dataType := symtab.TypeInt
		if strings.ContainsAny(tok.Lexeme, ".eE") {
			dataType = symtab.TypeFloat
		}
		symbols.SetInfo(name, dataType, tok.Lexeme)
	case token.Identifier:
		if !symbols.Has(tok.Lexeme) {
			return true, fmt.Errorf("%w: %s", ErrUndefinedInAssign, tok.Lexeme)
		}
		symbols.SetInfo(name, symbols.DataType(tok.Lexeme), symbols.Value(tok.Lexeme))
	default:
		return false, nil
	}
	return true, nil
}
