package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/crosswordgen/internal/api/request"
	"github.com/mcoot/crosswordgen/internal/services/generator"
	"github.com/mcoot/crosswordgen/internal/services/placement"
	"github.com/mcoot/crosswordgen/internal/services/wordbank"
)

// generateFlags are the generation settings shared by the generate, play
// and puzzle commands
type generateFlags struct {
	maxHeight int
	maxWidth  int
	rounds    int
	policy    string
	refresh   bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	defaults := generator.DefaultOptions()
	cmd.Flags().IntVar(&f.maxHeight, "max-height", 0, "Maximum rendered board height in lines (0 for unbounded)")
	cmd.Flags().IntVar(&f.maxWidth, "max-width", 0, "Maximum rendered board width in columns (0 for unbounded)")
	cmd.Flags().IntVar(&f.rounds, "rounds", defaults.MaxRetryRounds, "Extra placement passes for deferred words")
	cmd.Flags().StringVar(&f.policy, "policy", defaults.BoundsPolicy.String(), "Bounds policy: filter, skip, abort")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "Regenerate the layout from the placed words once more")
}

func (f *generateFlags) options() (generator.Options, error) {
	if f.maxHeight < 0 || f.maxWidth < 0 || f.rounds < 0 {
		return generator.Options{}, fmt.Errorf("--max-height, --max-width and --rounds must not be negative")
	}
	policy, err := placement.ParseBoundsPolicy(f.policy)
	if err != nil {
		return generator.Options{}, err
	}
	return generator.Options{
		MaxHeight:      f.maxHeight,
		MaxWidth:       f.maxWidth,
		MaxRetryRounds: f.rounds,
		BoundsPolicy:   policy,
		Refresh:        f.refresh,
	}, nil
}

func (f *generateFlags) request() request.GenerateOptions {
	rounds := f.rounds
	return request.GenerateOptions{
		MaxHeight:      f.maxHeight,
		MaxWidth:       f.maxWidth,
		MaxRetryRounds: &rounds,
		BoundsPolicy:   f.policy,
		Refresh:        f.refresh,
	}
}

// collectWords combines words given as arguments with words read from
// file, one per line. A file of "-" reads stdin.
func collectWords(cmd *cobra.Command, args []string, file string) ([]string, error) {
	words := append([]string{}, args...)
	if file == "" {
		return words, nil
	}

	var r io.Reader
	if file == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open word file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	fromFile, err := wordbank.ReadWords(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}
	return append(words, fromFile...), nil
}
