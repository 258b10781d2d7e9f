package model

import "strings"

// Position identifies a cell on a grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Add returns the position offset by the given deltas
func (p Position) Add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Step returns the position moved n cells in the given direction
func (p Position) Step(d Direction, n int) Position {
	dRow, dCol := d.Offset()
	return p.Add(dRow*n, dCol*n)
}

// Cell is a single letter-grid cell. EmptyCell means no letter.
type Cell rune

// EmptyCell is the zero Cell
const EmptyCell Cell = 0

// IsEmpty returns true if the cell holds no letter
func (c Cell) IsEmpty() bool {
	return c == EmptyCell
}

// Grid is a rectangular, row-major letter matrix: Grid[row][col]
type Grid [][]Cell

// NewGrid creates an empty grid of the given dimensions
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for i := range g {
		g[i] = make([]Cell, cols)
	}
	return g
}

// Rows returns the number of rows
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// InBounds returns true if the position is within the grid
func (g Grid) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < g.Rows() && pos.Col >= 0 && pos.Col < g.Cols()
}

// Get returns the cell at the given position, or EmptyCell if out of bounds
func (g Grid) Get(pos Position) Cell {
	if !g.InBounds(pos) {
		return EmptyCell
	}
	return g[pos.Row][pos.Col]
}

// Set writes a cell if the position is in bounds
func (g Grid) Set(pos Position, c Cell) {
	if g.InBounds(pos) {
		g[pos.Row][pos.Col] = c
	}
}

// IsRectangular returns true if every row has the same length
func (g Grid) IsRectangular() bool {
	for _, row := range g {
		if len(row) != g.Cols() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]Cell, len(row))
		copy(out[i], row)
	}
	return out
}

// Filled returns the number of non-empty cells
func (g Grid) Filled() int {
	count := 0
	for _, row := range g {
		for _, c := range row {
			if !c.IsEmpty() {
				count++
			}
		}
	}
	return count
}

// ReadWord reads length cells starting at start in the given orientation.
// Empty cells are read as the empty marker.
func (g Grid) ReadWord(start Position, o Orientation, length int, emptyMarker rune) string {
	var sb strings.Builder
	pos := start
	for i := 0; i < length; i++ {
		c := g.Get(pos)
		if c.IsEmpty() {
			sb.WriteRune(emptyMarker)
		} else {
			sb.WriteRune(rune(c))
		}
		pos = pos.Step(o.Forward(), 1)
	}
	return sb.String()
}

// Lines renders each row as a string, using emptyMarker for empty cells
func (g Grid) Lines(emptyMarker rune) []string {
	lines := make([]string, len(g))
	for i := range g {
		lines[i] = g.ReadWord(Position{Row: i}, Horizontal, g.Cols(), emptyMarker)
	}
	return lines
}

// RegisteredWord is a word committed to the grid
type RegisteredWord struct {
	ID          int // Registration index, stable for the life of a generation
	Word        string
	Orientation Orientation
	Start       Position
}

// End returns the position of the word's last letter
func (w RegisteredWord) End() Position {
	return w.Start.Step(w.Orientation.Forward(), len(w.Word)-1)
}

// CellAt returns the position of the i-th letter of the word
func (w RegisteredWord) CellAt(i int) Position {
	return w.Start.Step(w.Orientation.Forward(), i)
}

// Covers returns true if the word occupies the given position
func (w RegisteredWord) Covers(pos Position) bool {
	for i := range len(w.Word) {
		if w.CellAt(i) == pos {
			return true
		}
	}
	return false
}
