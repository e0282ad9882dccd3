// Command lexgen compiles token patterns into a DFA and lexes input
// against it.
package main

import (
	"os"

	"github.com/lexgen-project/lexgen/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
