// File: postfix.go
// Title: Infix to Postfix Conversion and Evaluation
// Description: Shunting-Yard conversion of an assignment's right-hand
//              side to postfix order, and evaluation of the postfix
//              sequence on a float stack with identifiers resolved
//              through the symbol table.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package fold

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// Evaluation errors. The messages are shown to users as written.
var (
	ErrUndefined         = errors.New("Undefined identifier")
	ErrUninitialized     = errors.New("Cannot perform operation with uninitialized variable")
	ErrNonNumeric        = errors.New("Cannot perform numeric operation")
	ErrInvalidValue      = errors.New("Invalid numeric value")
	ErrDivisionByZero    = errors.New("Division by zero")
	ErrModuloByZero      = errors.New("Modulo by zero")
	ErrInvalidExpression = errors.New("Invalid expression")
	ErrUnexpectedKeyword = errors.New("Unexpected keyword in expression")
	ErrMismatchedParens  = errors.New("Mismatched parentheses")
	ErrUndefinedInAssign = errors.New("Undefined identifier in assignment")
	ErrInvalidTarget     = errors.New("Invalid assignment target")
)

// Item is one element of a postfix sequence. Unary marks a prefix minus.
type Item struct {
	Token token.Token
	Unary bool
}

// String renders the item for debugging; unary minus shows as "neg"
func (it Item) String() string {
	if it.Unary {
		return "neg"
	}
	return it.Token.Lexeme
}

const unaryPrecedence = 4

func precedence(it Item) int {
	if it.Unary {
		return unaryPrecedence
	}
	switch it.Token.Kind {
	case token.Power:
		return 5
	case token.Multiply, token.Divide, token.Percentage:
		return 3
	case token.Add, token.Minus:
		return 2
	default:
		return 0
	}
}

func rightAssociative(it Item) bool {
	return it.Unary || it.Token.Kind == token.Power
}

func isArithmetic(k token.Kind) bool {
	switch k {
	case token.Add, token.Minus, token.Multiply, token.Divide, token.Percentage, token.Power:
		return true
	}
	return false
}

func isOperand(k token.Kind) bool {
	return k.IsNumeral() || k == token.Identifier || k == token.Keyword
}

// ToPostfix converts an infix token sequence to postfix order. Tokens
// that are neither operands, arithmetic operators nor parentheses are
// ignored. A prefix plus is dropped; a prefix minus becomes a unary item.
func ToPostfix(expr []token.Token) ([]Item, error) {
	var output, ops []Item

	for i, tok := range expr {
		switch {
		case isOperand(tok.Kind):
			output = append(output, Item{Token: tok})

		case isArithmetic(tok.Kind):
			prefix := i == 0 || isArithmetic(expr[i-1].Kind) || expr[i-1].IsDelimiter("(")
			if prefix && tok.Kind == token.Add {
				continue
			}
			op := Item{Token: tok, Unary: prefix && tok.Kind == token.Minus}
			if !op.Unary {
				for len(ops) > 0 {
					top := ops[len(ops)-1]
					if top.Token.IsDelimiter("(") {
						break
					}
					if precedence(op) < precedence(top) ||
						(precedence(op) == precedence(top) && !rightAssociative(op)) {
						output = append(output, top)
						ops = ops[:len(ops)-1]
						continue
					}
					break
				}
			}
			ops = append(ops, op)

		case tok.IsDelimiter("("):
			ops = append(ops, Item{Token: tok})

		case tok.IsDelimiter(")"):
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Token.IsDelimiter("(") {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, ErrMismatchedParens
			}
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Token.IsDelimiter("(") {
			return nil, ErrMismatchedParens
		}
		output = append(output, top)
	}
	return output, nil
}

// Evaluate computes the value of a postfix sequence
func Evaluate(postfix []Item, symbols *symtab.Table) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, it := range postfix {
		tok := it.Token
		if isOperand(tok.Kind) {
			v, err := operandValue(tok, symbols)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
			continue
		}

		if it.Unary {
			if len(stack) < 1 {
				return 0, ErrInvalidExpression
			}
			stack[len(stack)-1] = -stack[len(stack)-1]
			continue
		}

		if len(stack) < 2 {
			return 0, ErrInvalidExpression
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]

		var result float64
		switch tok.Kind {
		case token.Add:
			result = a + b
		case token.Minus:
			result = a - b
		case token.Multiply:
			result = a * b
		case token.Divide:
			if b == 0 {
				return 0, ErrDivisionByZero
			}
			result = a / b
		case token.Percentage:
			if b == 0 {
				return 0, ErrModuloByZero
			}
			result = math.Mod(a, b)
		case token.Power:
			result = math.Pow(a, b)
		default:
			return 0, ErrInvalidExpression
		}
		stack = append(stack, result)
	}

	if len(stack) != 1 {
		return 0, ErrInvalidExpression
	}
	return stack[0], nil
}

func operandValue(tok token.Token, symbols *symtab.Table) (float64, error) {
	switch tok.Kind {
	case token.Identifier:
		return identifierValue(tok.Lexeme, symbols)
	case token.Keyword:
		switch strings.ToLower(tok.Lexeme) {
		case "true":
			return 1, nil
		case "false":
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedKeyword, tok.Lexeme)
	default:
		v, err := NumeralValue(tok.Lexeme)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidValue, tok.Lexeme)
		}
		return v, nil
	}
}

func identifierValue(name string, symbols *symtab.Table) (float64, error) {
	if !symbols.Has(name) {
		return 0, fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	dataType, value := symbols.DataType(name), symbols.Value(name)
	if dataType == symtab.TypeUnknown || value == symtab.ValueNA {
		return 0, fmt.Errorf("%w: %s", ErrUninitialized, name)
	}
	if dataType != symtab.TypeInt && dataType != symtab.TypeFloat {
		return 0, fmt.Errorf("%w with %s variable: %s", ErrNonNumeric, dataType, name)
	}
	v, err := NumeralValue(value)
	if err != nil {
		return 0, fmt.Errorf("%w for variable %s: %s", ErrInvalidValue, name, value)
	}
	return v, nil
}

// NumeralValue parses a numeral lexeme of any of the four radixes.
// Underscores between digits are accepted.
func NumeralValue(lexeme string) (float64, error) {
	s := strings.ReplaceAll(lexeme, "_", "")
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'b', 'B':
			base = 2
		case 'o', 'O':
			base = 8
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, err
			}
			return float64(n), nil
		}
	}
	return strconv.ParseFloat(s, 64)
}

// FormatResult renders an evaluation result and its inferred type: whole
// numbers are ints without a fraction, everything else is a float with
// six decimals.
func FormatResult(v float64) (dataType, value string) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return symtab.TypeFloat, fmt.Sprintf("%f", v)
	}
	if v == math.Trunc(v) {
		if v == 0 {
			v = 0 // drop the sign of negative zero
		}
		return symtab.TypeInt, strconv.FormatFloat(v, 'f', 0, 64)
	}
	return symtab.TypeFloat, fmt.Sprintf("%f", v)
}
