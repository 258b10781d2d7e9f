package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/crosswordgen/internal/api/request"
	"github.com/mcoot/crosswordgen/internal/api/response"
)

func newWordListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "wordlist",
		Aliases: []string{"wl"},
		Short:   "Word list management commands",
	}

	cmd.AddCommand(newWordListPutCmd())
	cmd.AddCommand(newWordListGetCmd())
	cmd.AddCommand(newWordListListCmd())
	cmd.AddCommand(newWordListDeleteCmd())

	return cmd
}

func newWordListPutCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "put <name> [words...]",
		Short: "Store a word list, replacing any list of the same name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			words, err := collectWords(cmd, args[1:], file)
			if err != nil {
				return err
			}

			var result response.WordList
			if err := client.Put(cmd.Context(), wordListPath(name), request.PutWordListRequest{Words: words}, &result); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read words from a file, one per line (- for stdin)")

	return cmd
}

func newWordListGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordList

			if err := client.Get(cmd.Context(), wordListPath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newWordListListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored word lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.WordListNames

			if err := client.Get(cmd.Context(), "/api/v1/wordlists", &result); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newWordListDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := client.Delete(cmd.Context(), wordListPath(name)); err != nil {
				return err
			}

			out := NewOutput(cmd.OutOrStdout(), cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted word list %s", name))
			return nil
		},
	}
}
