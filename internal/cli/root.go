// Package cli wires the generator, config, render, and emit packages
// into a cobra command tree. Every subcommand stays thin: it parses
// flags, calls into the core packages, and formats the result — no
// algorithmic logic lives here.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verbose bool

// NewRootCmd builds the lexgen command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lexgen",
		Short: "Compile token patterns into a DFA and scan input with it",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newEmitCmd())
	root.AddCommand(newReplCmd())

	return root
}

func fail(cmd *cobra.Command, err error) error {
	color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
	return err
}

func ok(cmd *cobra.Command, format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), format, args...)
}
