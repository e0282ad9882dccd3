package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexgen-project/lexgen/internal/render"
)

func newDotCmd() *cobra.Command {
	var specPath string
	var showNFA bool

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit Graphviz DOT source for the compiled NFA or DFA",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGenerator(specPath)
			if err != nil {
				return fail(cmd, err)
			}

			if showNFA {
				nfa, _ := g.NFA()
				fmt.Fprint(cmd.OutOrStdout(), render.NFADot(nfa))
				return nil
			}

			dfa, _ := g.DFA()
			fmt.Fprint(cmd.OutOrStdout(), render.DFADot(dfa))
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "specs", "", "path to a YAML token-spec file (defaults to the built-in standard catalogue)")
	cmd.Flags().BoolVar(&showNFA, "nfa", false, "render the combined NFA instead of the determinized DFA")
	return cmd
}
