// Package placement builds a crossword letter grid by repeatedly crossing
// new words through letters already on the grid.
package placement

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/crosswordgen/internal/dependencies/random"
	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/services/render"
	"github.com/mcoot/crosswordgen/internal/services/wordbank"
)

// Engine owns a growing letter grid and the words registered on it.
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg    Config
	rnd    random.Random
	logger *slog.Logger

	words      []string // normalized input, in input order
	pending    []string // longest first
	grid       model.Grid
	registered []model.RegisteredWord
	used       []string
	rejected   []string
}

// NewEngine normalizes words and seeds the grid with the longest one.
// It returns model.ErrInvalidInput if no word survives normalization.
func NewEngine(words []string, cfg Config, rnd random.Random, logger *slog.Logger) (*Engine, error) {
	normalized := wordbank.Normalize(words)
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: no usable words", model.ErrInvalidInput)
	}

	pending := slices.Clone(normalized)
	slices.SortStableFunc(pending, func(a, b string) int {
		return len(b) - len(a)
	})

	e := &Engine{
		cfg:     cfg,
		rnd:     rnd,
		logger:  logger,
		words:   normalized,
		pending: pending[1:],
	}
	e.seed(pending[0])
	return e, nil
}

// Generate creates an engine for words and places as many as it can
func Generate(words []string, cfg Config, rnd random.Random, logger *slog.Logger) (*Engine, error) {
	e, err := NewEngine(words, cfg, rnd, logger)
	if err != nil {
		return nil, err
	}
	e.Compute()
	return e, nil
}

func (e *Engine) seed(word string) {
	o := model.Horizontal
	if random.CoinFlip(e.rnd) {
		o = model.Vertical
	}
	if !e.cfg.Fits(seedDimensions(word, o)) && e.cfg.Fits(seedDimensions(word, o.Other())) {
		o = o.Other()
	}

	e.grid = model.NewGrid(seedDimensions(word, o))
	rw := e.commit(Placement{Word: word, Orientation: o})

	e.logger.Debug("grid seeded",
		slog.String("word", rw.Word),
		slog.String("orientation", rw.Orientation.String()),
	)
}

func seedDimensions(word string, o model.Orientation) (int, int) {
	if o == model.Vertical {
		return len(word), 1
	}
	return 1, len(word)
}

// Compute places every pending word it can. Words with no placement are
// retried for up to MaxRetryRounds further passes and then rejected.
func (e *Engine) Compute() {
	queue := e.pending
	e.pending = nil

	for pass := 0; len(queue) > 0; pass++ {
		placed, deferred, aborted := e.runPass(queue)
		e.logger.Info("placement pass complete",
			slog.Int("pass", pass),
			slog.Int("placed", placed),
			slog.Int("deferred", len(deferred)),
			slog.Int("rows", e.grid.Rows()),
			slog.Int("cols", e.grid.Cols()),
		)
		queue = deferred
		if aborted || placed == 0 || pass >= e.cfg.MaxRetryRounds {
			break
		}
	}

	e.rejected = append(e.rejected, queue...)
}

// runPass tries each word once in order and returns the words to retry
func (e *Engine) runPass(words []string) (int, []string, bool) {
	placed := 0
	var deferred []string
	for i, word := range words {
		err := e.place(word)
		switch {
		case err == nil:
			placed++
		case errors.Is(err, model.ErrBoundsExceeded) && e.cfg.BoundsPolicy == BoundsAbortPass:
			e.logger.Info("placement pass aborted",
				slog.String("error", err.Error()),
				slog.Int("dropped", len(words)-i),
			)
			return placed, append(deferred, words[i:]...), true
		default:
			e.logger.Debug("word deferred", slog.String("error", err.Error()))
			deferred = append(deferred, word)
		}
	}
	return placed, deferred, false
}

// place commits word at a random valid placement
func (e *Engine) place(word string) error {
	candidates := e.candidates(word, e.cfg.BoundsPolicy == BoundsFilter)
	if len(candidates) == 0 {
		return fmt.Errorf("%w: %s", model.ErrPlacementExhausted, word)
	}

	p := random.Pick(e.rnd, candidates)
	rows, cols := e.dimensionsAfter(p)
	if !e.cfg.Fits(rows, cols) {
		return fmt.Errorf("%w: %s needs %dx%d", model.ErrBoundsExceeded, word, rows, cols)
	}

	rw := e.commit(p)
	e.logger.Debug("word placed",
		slog.String("word", rw.Word),
		slog.String("orientation", rw.Orientation.String()),
		slog.Int("row", rw.Start.Row),
		slog.Int("col", rw.Start.Col),
		slog.Int("candidates", len(candidates)),
	)
	return nil
}

// candidates returns every distinct valid placement of word. When
// withinBounds is set, placements that would exceed the bounds are dropped.
func (e *Engine) candidates(word string, withinBounds bool) []Placement {
	var result []Placement
	seen := make(map[placementKey]struct{})

	for _, letter := range distinctLetters(word) {
		for r, row := range e.grid {
			for c, cell := range row {
				if cell != model.Cell(letter) {
					continue
				}
				anchor := model.Position{Row: r, Col: c}
				for i, ch := range word {
					if ch != letter {
						continue
					}
					for _, o := range model.Orientations {
						p := newPlacement(e.grid, word, anchor, i, o)
						if _, ok := seen[p.key()]; ok {
							continue
						}
						seen[p.key()] = struct{}{}

						if !e.valid(p) {
							continue
						}
						if withinBounds && !e.cfg.Fits(e.dimensionsAfter(p)) {
							continue
						}
						result = append(result, p)
					}
				}
			}
		}
	}
	return result
}

// valid checks a placement against the grid:
//   - every letter matches the cell or the cell is empty
//   - the cells just before and after the word are empty
//   - newly written cells have no perpendicular neighbours
//   - filled cells in the span are not already part of a word in the same
//     orientation
//   - at least one existing letter is crossed
func (e *Engine) valid(p Placement) bool {
	forward := p.Orientation.Forward()
	if !e.grid.Get(p.Start.Step(forward, -1)).IsEmpty() {
		return false
	}
	if !e.grid.Get(p.End().Step(forward, 1)).IsEmpty() {
		return false
	}

	crosses := false
	for i, ch := range p.Word {
		pos := p.Start.Step(forward, i)
		cell := e.grid.Get(pos)
		if cell.IsEmpty() {
			for _, d := range p.Orientation.Perpendicular() {
				if !e.grid.Get(pos.Step(d, 1)).IsEmpty() {
					return false
				}
			}
			continue
		}
		if cell != model.Cell(ch) || e.coveredBy(pos, p.Orientation) {
			return false
		}
		crosses = true
	}
	return crosses
}

func (e *Engine) coveredBy(pos model.Position, o model.Orientation) bool {
	for _, rw := range e.registered {
		if rw.Orientation == o && rw.Covers(pos) {
			return true
		}
	}
	return false
}

func (e *Engine) dimensionsAfter(p Placement) (int, int) {
	rows, cols := e.grid.Rows(), e.grid.Cols()
	if p.Orientation == model.Vertical {
		return rows + p.Growth(), cols
	}
	return rows, cols + p.Growth()
}

// commit grows the grid as needed, writes the word and registers it
func (e *Engine) commit(p Placement) model.RegisteredWord {
	start := p.Start
	if p.LeadGrowth > 0 {
		e.growLeading(p.Orientation, p.LeadGrowth)
		if p.Orientation == model.Vertical {
			start.Row += p.LeadGrowth
		} else {
			start.Col += p.LeadGrowth
		}
	}
	if p.TrailGrowth > 0 {
		e.growTrailing(p.Orientation, p.TrailGrowth)
	}

	forward := p.Orientation.Forward()
	for i, ch := range p.Word {
		e.grid.Set(start.Step(forward, i), model.Cell(ch))
	}

	rw := model.RegisteredWord{
		ID:          len(e.registered),
		Word:        p.Word,
		Orientation: p.Orientation,
		Start:       start,
	}
	e.registered = append(e.registered, rw)
	e.used = append(e.used, p.Word)
	return rw
}

// growLeading inserts n empty rows above (vertical) or columns to the left
// (horizontal) and shifts every registered word to match.
func (e *Engine) growLeading(o model.Orientation, n int) {
	if o == model.Vertical {
		e.grid = append(model.NewGrid(n, e.grid.Cols()), e.grid...)
		for i := range e.registered {
			e.registered[i].Start.Row += n
		}
		return
	}

	for r := range e.grid {
		e.grid[r] = append(make([]model.Cell, n), e.grid[r]...)
	}
	for i := range e.registered {
		e.registered[i].Start.Col += n
	}
}

// growTrailing appends n empty rows below or columns to the right
func (e *Engine) growTrailing(o model.Orientation, n int) {
	if o == model.Vertical {
		e.grid = append(e.grid, model.NewGrid(n, e.grid.Cols())...)
		return
	}
	for r := range e.grid {
		e.grid[r] = append(e.grid[r], make([]model.Cell, n)...)
	}
}

// Refresh regenerates the layout from scratch using only the words the
// current layout placed. Up to max(1, MaxRetryRounds) attempts are made,
// stopping once an attempt places all of them in a layout different from
// the current one. The attempt placing the most words is kept, a changed
// layout winning ties. Previously rejected words stay rejected.
func (e *Engine) Refresh() error {
	target := slices.Clone(e.used)
	attempts := max(1, e.cfg.MaxRetryRounds)
	previous := e.Lines()

	var best *Engine
	bestChanged := false
	for attempt := 0; attempt < attempts; attempt++ {
		next, err := Generate(target, e.cfg, e.rnd, e.logger)
		if err != nil {
			return err
		}
		changed := !slices.Equal(next.Lines(), previous)
		if best == nil || len(next.used) > len(best.used) ||
			(len(next.used) == len(best.used) && changed && !bestChanged) {
			best, bestChanged = next, changed
		}
		if len(best.used) == len(target) && bestChanged {
			break
		}
	}

	e.logger.Info("layout refreshed",
		slog.Int("target", len(target)),
		slog.Int("placed", len(best.used)),
		slog.Bool("changed", bestChanged),
	)

	e.grid = best.grid
	e.registered = best.registered
	e.used = best.used
	e.rejected = append(e.rejected, best.rejected...)
	e.pending = nil
	return nil
}

// GenerateBoard renders the current grid. The engine is not modified.
func (e *Engine) GenerateBoard() *render.Board {
	return render.Generate(e.grid, e.registered)
}

// Grid returns a copy of the letter grid
func (e *Engine) Grid() model.Grid {
	return e.grid.Clone()
}

// Lines returns the grid rows using the configured empty marker
func (e *Engine) Lines() []string {
	return e.grid.Lines(e.cfg.EmptyMarker)
}

// Registered returns a copy of the registered words in registration order
func (e *Engine) Registered() []model.RegisteredWord {
	return slices.Clone(e.registered)
}

// Dimensions returns the number of letter rows and columns
func (e *Engine) Dimensions() (int, int) {
	return e.grid.Rows(), e.grid.Cols()
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Words returns the normalized input words
func (e *Engine) Words() []string {
	return slices.Clone(e.words)
}

// WordsUsed returns the placed words in registration order
func (e *Engine) WordsUsed() []string {
	return slices.Clone(e.used)
}

// WordsRejected returns the words that could not be placed
func (e *Engine) WordsRejected() []string {
	return slices.Clone(e.rejected)
}
