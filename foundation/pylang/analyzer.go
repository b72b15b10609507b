// File: analyzer.go
// Title: Analysis Engine
// Description: Runs lexer, constant folder and parser over a source text
//              and collects their outputs into a Result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package pylang

import (
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/pyanalyzer/foundation/core/error"
	mdwlog "github.com/msto63/pyanalyzer/foundation/core/log"
	"github.com/msto63/pyanalyzer/foundation/pylang/diag"
	"github.com/msto63/pyanalyzer/foundation/pylang/fold"
	"github.com/msto63/pyanalyzer/foundation/pylang/lexer"
	"github.com/msto63/pyanalyzer/foundation/pylang/parser"
	"github.com/msto63/pyanalyzer/foundation/pylang/symtab"
	"github.com/msto63/pyanalyzer/foundation/pylang/token"
)

// DefaultMaxSourceBytes limits the size of an analyzed source
const DefaultMaxSourceBytes = 1 << 20

// Options configures an Analyzer
type Options struct {
	Logger *mdwlog.Logger

	// TabWidth is the indentation width of a tab, lexer.DefaultTabWidth if 0
	TabWidth int

	// SingleStatementBlocks limits every block to one statement
	SingleStatementBlocks bool

	// MaxSourceBytes rejects larger sources, DefaultMaxSourceBytes if 0
	MaxSourceBytes int
}

// Analyzer runs analyses with fixed options
type Analyzer struct {
	logger  *mdwlog.Logger
	options Options
}

// New creates an analyzer
func New(opts Options) (*Analyzer, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.TabWidth < 0 {
		return nil, mdwerror.Newf("invalid tab width: %d", opts.TabWidth).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("pylang.New")
	}
	if opts.TabWidth == 0 {
		opts.TabWidth = lexer.DefaultTabWidth
	}
	if opts.MaxSourceBytes < 0 {
		return nil, mdwerror.Newf("invalid maximum source size: %d", opts.MaxSourceBytes).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("pylang.New")
	}
	if opts.MaxSourceBytes == 0 {
		opts.MaxSourceBytes = DefaultMaxSourceBytes
	}

	return &Analyzer{
		logger:  opts.Logger.WithField("component", "pylang"),
		options: opts,
	}, nil
}

// Options returns the effective options
func (a *Analyzer) Options() Options {
	return a.options
}

// Analyze tokenizes src and folds its assignments. src should be
// normalized with NormalizeSource.
func (a *Analyzer) Analyze(src string) *Lexed {
	return a.analyze(a.logger, src)
}

// Parse builds the parse tree of tokens; comments are removed first
func (a *Analyzer) Parse(tokens []token.Token) *Parsed {
	return a.parse(a.logger, tokens)
}

// Run normalizes and analyzes src. The parser only runs when lexing and
// folding reported nothing. Problems in the source are reported through
// the Result; an error is only returned when src cannot be analyzed at
// all.
func (a *Analyzer) Run(src string) (*Result, error) {
	if len(src) > a.options.MaxSourceBytes {
		return nil, mdwerror.Newf("source too large: %d bytes, limit %d", len(src), a.options.MaxSourceBytes).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("pylang.Run").
			WithDetail("size", len(src))
	}

	result := &Result{
		RunID:   uuid.New().String(),
		Source:  NormalizeSource(src),
		Started: time.Now(),
	}
	logger := a.logger.WithRunID(result.RunID)
	timer := logger.StartTimer("analyze")

	lexed := a.analyze(logger, result.Source)
	result.Tokens = lexed.Tokens
	result.Symbols = lexed.Symbols
	result.LexicalErrors = lexed.Errors
	result.SyntaxErrors = diag.NewSyntax()

	if lexed.Errors.Empty() {
		parsed := a.parse(logger, lexed.Tokens)
		result.Tree = parsed.Tree
		result.SyntaxErrors = parsed.Errors
	} else {
		logger.Debug("parsing skipped", mdwlog.Fields{
			"lexical_errors": lexed.Errors.Len(),
		})
	}

	result.Duration = timer.WithLevel(mdwlog.LevelInfo).
		WithField("tokens", len(result.Tokens)).
		WithField("symbols", result.Symbols.Len()).
		WithField("errors", result.ErrorCount()).
		WithField("status", result.Status()).
		Stop()
	return result, nil
}

func (a *Analyzer) analyze(logger *mdwlog.Logger, src string) *Lexed {
	symbols := symtab.New()
	lx := lexer.New(lexer.Options{Logger: logger, TabWidth: a.options.TabWidth})
	tokens, errs := lx.Tokenize(src, symbols)
	fold.New(fold.Options{Logger: logger}).Run(tokens, symbols, errs)
	return &Lexed{Tokens: tokens, Errors: errs, Symbols: symbols}
}

func (a *Analyzer) parse(logger *mdwlog.Logger, tokens []token.Token) *Parsed {
	p := parser.New(parser.Options{
		Logger:                logger,
		SingleStatementBlocks: a.options.SingleStatementBlocks,
	})
	tree, errs := p.Parse(token.WithoutComments(tokens))
	return &Parsed{Tree: tree, Errors: errs}
}
