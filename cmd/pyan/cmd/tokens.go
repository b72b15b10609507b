package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/msto63/pyanalyzer/foundation/pylang/token"
	"github.com/msto63/pyanalyzer/internal/report"
	"github.com/spf13/cobra"
)

var (
	tokensKinds      []string
	tokensNoComments bool
)

var tokensCmd = &cobra.Command{
	Use:     "tokens [datei|-]",
	Aliases: []string{"lex"},
	Short:   "Listet die Tokens einer Quelldatei",
	Long: `Listet die Tokens einer Quelldatei im Format
[Line L:C] 'lexem' (ART).

Beispiele:
  pyan tokens programm.py
  pyan tokens --kind INDENT,DEDENT programm.py
  pyan tokens --no-comments programm.py`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringSliceVarP(&tokensKinds, "kind", "k", nil, "Nur Tokens dieser Arten (z.B. NUMBER,KEYWORD)")
	tokensCmd.Flags().BoolVar(&tokensNoComments, "no-comments", false, "Kommentare ausblenden")
}

func runTokens(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	result, _, err := a.analyze(context.Background(), args, false)
	if err != nil {
		return err
	}

	tokens := result.Tokens
	if tokensNoComments {
		tokens = token.WithoutComments(tokens)
	}
	tokens = filterKinds(tokens, tokensKinds)

	if err := report.WriteTokens(os.Stdout, tokens); err != nil {
		return err
	}
	if !result.LexicalErrors.Empty() {
		return report.Write(os.Stderr, "text", result, report.Options{Sections: report.SectionDiagnostics})
	}
	return nil
}

// filterKinds keeps tokens whose display or stable kind name is listed
func filterKinds(tokens []token.Token, kinds []string) []token.Token {
	if len(kinds) == 0 {
		return tokens
	}
	wanted := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		wanted[strings.ToUpper(strings.TrimSpace(k))] = true
	}

	var out []token.Token
	for _, tok := range tokens {
		if wanted[strings.ToUpper(tok.Kind.String())] || wanted[tok.Kind.Name()] {
			out = append(out, tok)
		}
	}
	return out
}
