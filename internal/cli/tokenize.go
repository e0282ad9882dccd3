package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexgen-project/lexgen/internal/obslog"
)

func newTokenizeCmd() *cobra.Command {
	var specPath string
	var inputPath string

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Compile token specs and lex a file or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := obslog.New(verbose)

			g, err := buildGenerator(specPath)
			if err != nil {
				return fail(cmd, err)
			}

			var data []byte
			if inputPath == "" || inputPath == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(inputPath)
			}
			if err != nil {
				return fail(cmd, err)
			}

			tokens, errs := g.Tokenize(string(data))
			log.Debugf("scanned %d bytes: %d tokens, %d lexical errors", len(data), len(tokens), len(errs))

			for _, tok := range tokens {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %q line=%d col=%d offset=%d\n",
					tok.Type, tok.Lexeme, tok.Line, tok.Column, tok.Offset)
			}
			for _, e := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", e)
			}
			if len(errs) > 0 {
				return fmt.Errorf("%d lexical error(s)", len(errs))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&specPath, "specs", "", "path to a YAML token-spec file (defaults to the built-in standard catalogue)")
	cmd.Flags().StringVar(&inputPath, "input", "", "path to the file to tokenize (defaults to stdin)")
	return cmd
}
