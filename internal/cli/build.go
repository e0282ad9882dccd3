package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexgen-project/lexgen/internal/obslog"
)

func newBuildCmd() *cobra.Command {
	var specPath string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile a token-spec file and report DFA statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := obslog.New(verbose)
			log.Debugf("loading token specs from %q", specPath)

			g, err := buildGenerator(specPath)
			if err != nil {
				return fail(cmd, err)
			}

			dfa, _ := g.DFA()
			log.Debugf("compiled DFA with %d states", dfa.NumStates())
			ok(cmd, "build succeeded: %d states, alphabet size %d\n", dfa.NumStates(), len(dfa.Alphabet()))
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "specs", "", "path to a YAML token-spec file (defaults to the built-in standard catalogue)")
	return cmd
}
