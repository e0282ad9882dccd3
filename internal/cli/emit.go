package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lexgen-project/lexgen/internal/emit"
)

func newEmitCmd() *cobra.Command {
	var specPath string
	var outPath string
	var pkgName string

	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Generate a standalone Go scanner for the compiled DFA",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildGenerator(specPath)
			if err != nil {
				return fail(cmd, err)
			}

			dfa, _ := g.DFA()
			src, err := emit.Scanner(pkgName, dfa)
			if err != nil {
				return fail(cmd, err)
			}

			if outPath == "" || outPath == "-" {
				_, err := cmd.OutOrStdout().Write([]byte(src))
				return err
			}

			if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
				return fail(cmd, errors.Wrapf(emit.ErrIO, "writing %s: %v", outPath, err))
			}
			ok(cmd, "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "specs", "", "path to a YAML token-spec file (defaults to the built-in standard catalogue)")
	cmd.Flags().StringVar(&outPath, "out", "", "path to write the generated scanner to (defaults to stdout)")
	cmd.Flags().StringVar(&pkgName, "package", "scanner", "package name for the generated file")
	return cmd
}
