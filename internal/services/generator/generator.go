// Package generator turns word lists into finished puzzles.
package generator

import (
	"context"
	"log/slog"

	"github.com/mcoot/crosswordgen/internal/dependencies/clock"
	"github.com/mcoot/crosswordgen/internal/dependencies/random"
	"github.com/mcoot/crosswordgen/internal/services/placement"
	"github.com/mcoot/crosswordgen/internal/services/wordbank"
)

// IDLength is the length of generated puzzle IDs
const IDLength = 12

// Options controls a single generation
type Options struct {
	MaxHeight      int
	MaxWidth       int
	MaxRetryRounds int
	BoundsPolicy   placement.BoundsPolicy
	// Refresh regenerates the layout from the placed words once more
	Refresh bool
}

// DefaultOptions returns unbounded options with one retry round
func DefaultOptions() Options {
	cfg := placement.DefaultConfig()
	return Options{
		MaxRetryRounds: cfg.MaxRetryRounds,
		BoundsPolicy:   cfg.BoundsPolicy,
	}
}

// Config converts the options to a placement configuration
func (o Options) Config() placement.Config {
	cfg := placement.DefaultConfig()
	cfg.MaxHeight = o.MaxHeight
	cfg.MaxWidth = o.MaxWidth
	cfg.MaxRetryRounds = o.MaxRetryRounds
	cfg.BoundsPolicy = o.BoundsPolicy
	return cfg
}

// Service generates puzzles
type Service struct {
	wordbank wordbank.ServiceInterface
	random   random.Random
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a new generator Service
func New(wb wordbank.ServiceInterface, rnd random.Random, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		wordbank: wb,
		random:   rnd,
		clock:    clk,
		logger:   logger,
	}
}

// Generate builds a puzzle from words. It returns model.ErrInvalidInput if
// none of the words are usable.
func (s *Service) Generate(ctx context.Context, words []string, opts Options) (*Puzzle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := s.clock.Now()

	engine, err := placement.Generate(words, opts.Config(), s.random, s.logger)
	if err != nil {
		return nil, err
	}

	if opts.Refresh {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := engine.Refresh(); err != nil {
			return nil, err
		}
	}

	puzzle := newPuzzle(s.random.String(IDLength, random.IDAlphabet), engine, s.clock.Now())

	s.logger.Info("puzzle generated",
		slog.String("puzzle_id", puzzle.ID),
		slog.Int("used", len(puzzle.WordsUsed)),
		slog.Int("rejected", len(puzzle.WordsRejected)),
		slog.Int("rows", puzzle.Rows),
		slog.Int("cols", puzzle.Cols),
		slog.Duration("elapsed", s.clock.Since(started)),
	)
	return puzzle, nil
}

// GenerateFromList builds a puzzle from a stored word list
func (s *Service) GenerateFromList(ctx context.Context, name string, opts Options) (*Puzzle, error) {
	list, err := s.wordbank.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, list.Words, opts)
}

// ServiceInterface for dependency injection
type ServiceInterface interface {
	Generate(ctx context.Context, words []string, opts Options) (*Puzzle, error)
	GenerateFromList(ctx context.Context, name string, opts Options) (*Puzzle, error)
}

var _ ServiceInterface = (*Service)(nil)
