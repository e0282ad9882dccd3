package cli

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lexgen-project/lexgen/internal/automata"
	"github.com/lexgen-project/lexgen/internal/generator"
	"github.com/lexgen-project/lexgen/internal/regex"
)

// newReplCmd reworks DanielRasho's InteractiveRegexSimulation loop —
// prompt for a pattern, show its compiled shape, try it against a
// sample string — onto readline, for history and line editing instead
// of a bare fmt.Scanln loop.
func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively compile one pattern at a time and try it against sample input",
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.New("lexgen> ")
			if err != nil {
				return fail(cmd, err)
			}
			defer rl.Close()

			green := color.New(color.FgGreen)
			red := color.New(color.FgRed)

			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt || err == io.EOF {
					return nil
				}
				if err != nil {
					return fail(cmd, err)
				}
				if line == "" {
					continue
				}

				postfix, err := regex.ToPostfix(line)
				if err != nil {
					red.Fprintf(cmd.OutOrStdout(), "invalid pattern: %v\n", err)
					continue
				}

				nfa, err := automata.BuildNFA(postfix)
				if err != nil {
					red.Fprintf(cmd.OutOrStdout(), "invalid pattern: %v\n", err)
					continue
				}
				combined := automata.Combine([]*automata.NFA{nfa}, []string{"MATCH"})
				dfa := automata.Determinize(combined)

				green.Fprintf(cmd.OutOrStdout(), "postfix: %s\n", postfix)
				fmt.Fprintf(cmd.OutOrStdout(), "NFA states: %d, DFA states: %d\n", len(nfa.States), dfa.NumStates())

				g := generator.New()
				g.AddToken("MATCH", line)
				if err := g.Build(); err == nil {
					rl.SetPrompt("sample to test (blank to skip)> ")
					sample, err := rl.Readline()
					rl.SetPrompt("lexgen> ")
					if err == nil && sample != "" {
						if g.Accepts(sample) {
							green.Fprintf(cmd.OutOrStdout(), "%q matches\n", sample)
						} else {
							red.Fprintf(cmd.OutOrStdout(), "%q does not match\n", sample)
						}
					}
				}
			}
		},
	}

	return cmd
}
