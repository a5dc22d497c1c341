package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blakepell/ArcaneScript/internal/diag"
	"github.com/blakepell/ArcaneScript/internal/host"
	"github.com/blakepell/ArcaneScript/internal/interp"
	"github.com/blakepell/ArcaneScript/internal/lexer"
	"github.com/blakepell/ArcaneScript/internal/parser"
	"github.com/blakepell/ArcaneScript/internal/value"
)

var (
	timeoutMS  int
	inlineExpr string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an Arcane script",
	Long: `Execute an Arcane program from a source file, or from the command
line with -e.

Examples:
  arcane run script.arc
  arcane run --timeout-ms 500 script.arc
  arcane run -e 'print("hello");'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().IntVar(&timeoutMS, "timeout-ms", defaultTimeoutMS, "wall-clock execution budget in milliseconds (0 disables)")
	runCmd.Flags().StringVarP(&inlineExpr, "eval", "e", "", "run the given source text instead of a file")
}

func runScript(cmd *cobra.Command, args []string) error {
	var src, filename string
	switch {
	case inlineExpr != "":
		src = inlineExpr
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		src = string(content)
	default:
		return fmt.Errorf("expected a source file argument or -e")
	}

	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		if le, ok := lexErr.(*lexer.Error); ok {
			exitWithError("%s", diag.New(le.Pos, le.Message, src, filename).Format(false))
		}
		exitWithError("%s", lexErr)
	}

	p := parser.New(tokens)
	program, parseErr := p.ParseProgram()
	if parseErr != nil {
		if pe, ok := parseErr.(*parser.Error); ok {
			exitWithError("%s", diag.New(pe.Pos, pe.Message, src, filename).Format(false))
		}
		exitWithError("%s", parseErr)
	}

	registry := host.NewRegistry()
	host.RegisterDefaults(registry, os.Stdout, os.Stdin)

	it := interp.NewInterpreter(registry)
	if timeoutMS > 0 {
		it.Budget = time.Duration(timeoutMS) * time.Millisecond
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintf(os.Stderr, "%d tokens, %d top-level statements\n", len(tokens), len(program.Statements))
		if timeoutMS > 0 {
			fmt.Fprintf(os.Stderr, "execution budget: %dms\n", timeoutMS)
		}
	}

	// The final Value prints to stdout: Int as decimal, String verbatim,
	// Bool as true/false, Null as the literal "null". An Error result
	// goes to stderr with a non-zero exit.
	result := it.Run(program)
	if result.Kind == value.Error {
		exitWithError("%s", result.ErrMsg)
	}
	fmt.Println(result.AsString())
	return nil
}
