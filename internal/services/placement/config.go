package placement

import (
	"fmt"

	"github.com/mcoot/crosswordgen/internal/model"
)

// BoundsPolicy decides what happens when a placement would grow the
// rendered board past MaxHeight or MaxWidth.
type BoundsPolicy int

const (
	// BoundsFilter drops out-of-bounds candidates during the search, so a
	// commit can never exceed the bounds.
	BoundsFilter BoundsPolicy = iota
	// BoundsSkipWord searches without bounds and defers only the word whose
	// chosen placement would exceed them.
	BoundsSkipWord
	// BoundsAbortPass searches without bounds and ends the whole pass on the
	// first commit that would exceed them. The rest of the pass is rejected
	// without retry.
	BoundsAbortPass
)

func (p BoundsPolicy) String() string {
	switch p {
	case BoundsFilter:
		return "filter"
	case BoundsSkipWord:
		return "skip"
	case BoundsAbortPass:
		return "abort"
	default:
		return fmt.Sprintf("BoundsPolicy(%d)", int(p))
	}
}

// ParseBoundsPolicy parses "filter", "skip" or "abort". An empty string
// selects BoundsFilter.
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch s {
	case "", "filter":
		return BoundsFilter, nil
	case "skip":
		return BoundsSkipWord, nil
	case "abort":
		return BoundsAbortPass, nil
	}
	return 0, fmt.Errorf("%w: unknown bounds policy %q", model.ErrInvalidInput, s)
}

// Config holds the placement engine configuration
type Config struct {
	// MaxRetryRounds is the number of extra passes over deferred words
	MaxRetryRounds int
	// EmptyMarker is used for empty cells by Engine.Lines
	EmptyMarker rune
	// MaxHeight and MaxWidth bound the rendered board in characters.
	// Zero means unbounded.
	MaxHeight int
	MaxWidth  int
	// BoundsPolicy applies when a placement would exceed the bounds
	BoundsPolicy BoundsPolicy
}

// DefaultConfig returns the default placement configuration
func DefaultConfig() Config {
	return Config{
		MaxRetryRounds: 1,
		EmptyMarker:    ' ',
		BoundsPolicy:   BoundsFilter,
	}
}

// RenderedHeight is the number of text rows a board with the given number
// of letter rows renders to.
func RenderedHeight(rows int) int {
	return rows*2 + 1
}

// RenderedWidth is the number of characters per row a board with the given
// number of letter columns renders to.
func RenderedWidth(cols int) int {
	return cols*4 + 1
}

// Fits reports whether a letter grid of the given size renders within the
// configured bounds.
func (c Config) Fits(rows, cols int) bool {
	if c.MaxHeight > 0 && RenderedHeight(rows) > c.MaxHeight {
		return false
	}
	if c.MaxWidth > 0 && RenderedWidth(cols) > c.MaxWidth {
		return false
	}
	return true
}
