package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/crosswordgen/internal/tui"
)

func newPlayCmd() *cobra.Command {
	var (
		flags generateFlags
		file  string
	)

	cmd := &cobra.Command{
		Use:   "play [words...]",
		Short: "Generate a puzzle and explore it in the terminal",
		Long: `play generates a puzzle sized to the terminal and shows it full screen.

Arrow keys (or hjkl) move between letters, s shows or hides the answers,
r generates a new layout and q quits.`,
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

			// Logs would draw over the screen
			cfg.Verbose = false
			gen, err := localGenerator(cmd)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), gen, tui.Config{
				Words:       words,
				Options:     opts,
				FitToWindow: true,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read words from a file, one per line (- for stdin)")

	return cmd
}
