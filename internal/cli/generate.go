package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/crosswordgen/internal/factory"
	"github.com/mcoot/crosswordgen/internal/services/generator"
)

var errNoWords = errors.New("no words given: pass words as arguments or use --file")

func newGenerateCmd() *cobra.Command {
	var (
		flags    generateFlags
		file     string
		clueless bool
	)

	cmd := &cobra.Command{
		Use:   "generate [words...]",
		Short: "Generate a puzzle locally",
		Example: `  xword generate crossword puzzle grid clue answer
  xword generate --file words.txt --max-width 61 --policy skip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := collectWords(cmd, args, file)
			if err != nil {
				return err
			}
			if len(words) == 0 {
				return errNoWords
			}
			opts, err := flags.options()
			if err != nil {
				return err
			}

			gen, err := localGenerator(cmd)
			if err != nil {
				return err
			}
			puzzle, err := gen.Generate(cmd.Context(), words, opts)
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintPuzzle(puzzle, clueless)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read words from a file, one per line (- for stdin)")
	cmd.Flags().BoolVar(&clueless, "clueless", false, "Hide answers")

	return cmd
}

func localGenerator(cmd *cobra.Command) (*generator.Service, error) {
	app, err := factory.New(factory.Config{
		Logger: cfg.Logger(cmd.ErrOrStderr()),
	})
	if err != nil {
		return nil, err
	}
	return app.Generator, nil
}
