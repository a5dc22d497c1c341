package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// defaultTimeoutMS is the wall-clock execution budget applied when
// --timeout-ms is not given, read from ARCANE_TIMEOUT_MS. 0 disables the
// budget entirely.
var defaultTimeoutMS = env.Int("ARCANE_TIMEOUT_MS", 0)

var rootCmd = &cobra.Command{
	Use:   "arcane",
	Short: "Arcane scripting language interpreter",
	Long: `arcane runs programs written in Arcane, a small dynamically-typed
scripting language with C-style control flow, heterogeneous arithmetic,
string templating, and a host-callable function library.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
