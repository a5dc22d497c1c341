// Command arcane runs Arcane scripts: a thin cobra-based shell around the
// internal lexer/parser/interp packages.
package main

import (
	"fmt"
	"os"

	"github.com/blakepell/ArcaneScript/cmd/arcane/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
