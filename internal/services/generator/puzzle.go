package generator

import (
	"time"

	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/services/placement"
	"github.com/mcoot/crosswordgen/internal/services/render"
)

// Coord is a position on the serialized board
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Clue locates one answer on the board
type Clue struct {
	Number int     `json:"number"`
	Word   string  `json:"word"`
	Row    int     `json:"row"` // letter-grid origin
	Col    int     `json:"col"`
	Cells  []Coord `json:"cells"`
}

// Puzzle is an immutable snapshot of a generated crossword
type Puzzle struct {
	ID            string    `json:"id"`
	Rows          int       `json:"rows"`
	Cols          int       `json:"cols"`
	Board         []string  `json:"board"`
	Clueless      []string  `json:"clueless"`
	Across        []Clue    `json:"across"`
	Down          []Clue    `json:"down"`
	WordsUsed     []string  `json:"words_used"`
	WordsRejected []string  `json:"words_rejected"`
	GeneratedAt   time.Time `json:"generated_at"`

	board *render.Board
}

func newPuzzle(id string, engine *placement.Engine, generatedAt time.Time) *Puzzle {
	board := engine.GenerateBoard()
	rows, cols := engine.Dimensions()

	p := &Puzzle{
		ID:            id,
		Rows:          rows,
		Cols:          cols,
		Board:         board.Serialize(),
		Clueless:      board.Clueless().Serialize(),
		Across:        []Clue{},
		Down:          []Clue{},
		WordsUsed:     engine.WordsUsed(),
		WordsRejected: engine.WordsRejected(),
		GeneratedAt:   generatedAt,
		board:         board,
	}
	if p.WordsRejected == nil {
		p.WordsRejected = []string{}
	}

	for _, entry := range board.Entries() {
		clue := Clue{
			Number: entry.Number,
			Word:   entry.Word,
			Row:    entry.Origin.Row,
			Col:    entry.Origin.Col,
			Cells:  make([]Coord, len(entry.Cells)),
		}
		for i, pt := range entry.Cells {
			clue.Cells[i] = Coord{Row: pt.Row, Col: pt.Col}
		}
		if entry.Orientation == model.Vertical {
			p.Down = append(p.Down, clue)
		} else {
			p.Across = append(p.Across, clue)
		}
	}
	return p
}

// RenderedBoard returns the board the puzzle was serialized from, with
// answers. Puzzles decoded from JSON have no rendered board.
func (p *Puzzle) RenderedBoard() *render.Board {
	return p.board
}
