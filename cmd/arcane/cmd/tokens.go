package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blakepell/ArcaneScript/internal/lexer"
)

var showPos bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize an Arcane script and print the resulting tokens",
	Long: `Tokenize (lex) an Arcane program and print the resulting tokens,
for debugging the lexer.

Examples:
  arcane tokens script.arc
  arcane tokens --show-pos script.arc`,
	Args: cobra.ExactArgs(1),
	RunE: dumpTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func dumpTokens(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	toks, tokErr := lexer.Tokenize(string(content))
	if tokErr != nil {
		exitWithError("%s", tokErr)
	}

	for _, tok := range toks {
		if showPos {
			fmt.Printf("[%-10s] %-8s %q @%s\n", tok.Type, tok.Type.Class(), tok.Literal, tok.Pos)
		} else {
			fmt.Printf("[%-10s] %-8s %q\n", tok.Type, tok.Type.Class(), tok.Literal)
		}
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintf(os.Stderr, "%s: %d tokens\n", args[0], len(toks))
	}
	return nil
}
