package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/crosswordgen/internal/api/request"
	"github.com/mcoot/crosswordgen/internal/api/response"
)

func newPuzzleCmd() *cobra.Command {
	var (
		flags    generateFlags
		file     string
		list     string
		clueless bool
	)

	cmd := &cobra.Command{
		Use:   "puzzle [words...]",
		Short: "Generate a puzzle on the server",
		Example: `  xword puzzle crossword puzzle grid
  xword puzzle --list animals --max-height 21`,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := collectWords(cmd, args, file)
			if err != nil {
				return err
			}
			if list != "" && len(words) > 0 {
				return errors.New("use either --list or words, not both")
			}
			if list == "" && len(words) == 0 {
				return errors.New("no words given: pass words as arguments, --file or --list")
			}
			if _, err := flags.options(); err != nil {
				return err
			}

			var result response.Puzzle
			if list != "" {
				err = client.Post(cmd.Context(), wordListPath(list)+"/puzzles", flags.request(), &result)
			} else {
				err = client.Post(cmd.Context(), "/api/v1/puzzles", request.GeneratePuzzleRequest{
					Words:           words,
					GenerateOptions: flags.request(),
				}, &result)
			}
			if err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintPuzzle(&result, clueless)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read words from a file, one per line (- for stdin)")
	cmd.Flags().StringVarP(&list, "list", "l", "", "Use a word list stored on the server")
	cmd.Flags().BoolVar(&clueless, "clueless", false, "Hide answers")

	return cmd
}
