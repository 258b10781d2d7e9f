// Package render draws a letter grid as a box-drawn crossword board with
// clue numbers, and records where each word's letters ended up.
package render

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/mcoot/crosswordgen/internal/model"
)

// Point is a position on the serialized board: a text row and a character
// column.
type Point struct {
	Row int
	Col int
}

// CellPoint maps a letter-grid position to the start of its three-character
// content segment on the serialized board. The letter is one column right.
func CellPoint(pos model.Position) Point {
	return Point{Row: 2*pos.Row + 1, Col: 4*pos.Col + 1}
}

// SegmentColumn returns the serialized character column where segment x
// starts. Even segments are one-character borders, odd segments are
// three-character cells.
func SegmentColumn(x int) int {
	if x%2 == 0 {
		return 2 * x
	}
	return 2*x - 1
}

// ClueEntry locates one registered word on the board
type ClueEntry struct {
	Number      int
	Word        string
	Orientation model.Orientation
	Origin      model.Position // letter-grid position of the first letter
	Cells       []Point        // rendered position of each letter
}

// Covers reports whether the entry's word occupies the letter-grid position
func (e ClueEntry) Covers(pos model.Position) bool {
	for i := range len(e.Word) {
		if e.Origin.Step(e.Orientation.Forward(), i) == pos {
			return true
		}
	}
	return false
}

// Board is a rendered crossword. It is immutable once generated.
type Board struct {
	rows     int
	cols     int
	segments [][]string
	filled   [][]bool
	entries  []ClueEntry
}

// Generate renders grid and numbers every registered word.
// The grid and registered words are not retained.
func Generate(grid model.Grid, registered []model.RegisteredWord) *Board {
	b := &Board{
		rows:   grid.Rows(),
		cols:   grid.Cols(),
		filled: make([][]bool, grid.Rows()),
	}

	for r, row := range grid {
		b.filled[r] = make([]bool, len(row))
		for c, cell := range row {
			b.filled[r][c] = !cell.IsEmpty()
		}

		top, content, bottom := rowSegments(row)
		if r == 0 {
			b.segments = append(b.segments, top)
		} else {
			last := len(b.segments) - 1
			b.segments[last] = joinSegments(b.segments[last], top)
		}
		b.segments = append(b.segments, content, bottom)
	}

	b.number(registered)
	return b
}

// rowSegments draws one grid row on its own as three segment lines
func rowSegments(row []model.Cell) ([]string, []string, []string) {
	n := 2*len(row) + 1
	top := make([]string, n)
	content := make([]string, n)
	bottom := make([]string, n)

	for j := 0; j <= len(row); j++ {
		left := j > 0 && !row[j-1].IsEmpty()
		right := j < len(row) && !row[j].IsEmpty()

		var a arms
		if left {
			a |= armLeft
		}
		if right {
			a |= armRight
		}
		if a == 0 {
			top[2*j], content[2*j], bottom[2*j] = blankGlyph, blankGlyph, blankGlyph
		} else {
			top[2*j] = armGlyphs[a|armDown]
			content[2*j] = "│"
			bottom[2*j] = armGlyphs[a|armUp]
		}

		if j == len(row) {
			break
		}
		if right {
			top[2*j+1] = edgeH
			content[2*j+1] = " " + string(row[j]) + " "
			bottom[2*j+1] = edgeH
		} else {
			top[2*j+1], content[2*j+1], bottom[2*j+1] = blankCell, blankCell, blankCell
		}
	}
	return top, content, bottom
}

// number assigns clue numbers walking down and across words alternately
// in registration order. Words starting on the same cell share a number.
func (b *Board) number(registered []model.RegisteredWord) {
	var across, down []model.RegisteredWord
	for _, rw := range registered {
		if rw.Orientation == model.Vertical {
			down = append(down, rw)
		} else {
			across = append(across, rw)
		}
	}

	numbers := make(map[model.Position]int)
	assign := func(rw model.RegisteredWord) {
		n, ok := numbers[rw.Start]
		if !ok {
			n = len(numbers) + 1
			numbers[rw.Start] = n
			b.stamp(rw.Start, n)
		}
		b.entries = append(b.entries, newClueEntry(rw, n))
	}
	for i := 0; i < max(len(across), len(down)); i++ {
		if i < len(down) {
			assign(down[i])
		}
		if i < len(across) {
			assign(across[i])
		}
	}

	slices.SortStableFunc(b.entries, func(x, y ClueEntry) int {
		return cmp.Or(cmp.Compare(x.Number, y.Number), cmp.Compare(x.Orientation, y.Orientation))
	})
}

// stamp writes n into the top border of the cell, left-justified and
// padded with the border line, e.g. "12─"
func (b *Board) stamp(pos model.Position, n int) {
	label := strconv.Itoa(n)
	if len(label) > cellWidth {
		return
	}
	seg := &b.segments[2*pos.Row][2*pos.Col+1]
	if *seg != edgeH {
		return
	}
	*seg = label + strings.Repeat("─", cellWidth-len(label))
}

func newClueEntry(rw model.RegisteredWord, n int) ClueEntry {
	cells := make([]Point, len(rw.Word))
	for i := range cells {
		cells[i] = CellPoint(rw.CellAt(i))
	}
	return ClueEntry{
		Number:      n,
		Word:        rw.Word,
		Orientation: rw.Orientation,
		Origin:      rw.Start,
		Cells:       cells,
	}
}

// Rows returns the number of letter-grid rows
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of letter-grid columns
func (b *Board) Cols() int {
	return b.cols
}

// Height returns the number of serialized lines
func (b *Board) Height() int {
	return len(b.segments)
}

// Width returns the number of characters in each serialized line
func (b *Board) Width() int {
	if b.rows == 0 {
		return 0
	}
	return 4*b.cols + 1
}

// Segment returns segment x of rendered row y, or "" if out of range
func (b *Board) Segment(y, x int) string {
	if y < 0 || y >= len(b.segments) || x < 0 || x >= len(b.segments[y]) {
		return ""
	}
	return b.segments[y][x]
}

// Filled reports whether the letter-grid cell holds a letter. This is
// preserved on clueless boards.
func (b *Board) Filled(pos model.Position) bool {
	if pos.Row < 0 || pos.Row >= b.rows || pos.Col < 0 || pos.Col >= b.cols {
		return false
	}
	return b.filled[pos.Row][pos.Col]
}

// Letter returns the letter shown in a cell, or ' ' if none is shown
func (b *Board) Letter(pos model.Position) rune {
	seg := []rune(b.Segment(2*pos.Row+1, 2*pos.Col+1))
	if len(seg) != cellWidth {
		return ' '
	}
	return seg[1]
}

// Entries returns every clue entry ordered by number, across before down
func (b *Board) Entries() []ClueEntry {
	return slices.Clone(b.entries)
}

// Clues returns the position table for one orientation, keyed by word
func (b *Board) Clues(o model.Orientation) map[string]ClueEntry {
	clues := make(map[string]ClueEntry)
	for _, e := range b.entries {
		if e.Orientation == o {
			clues[e.Word] = e
		}
	}
	return clues
}

// EntriesAt returns the entries whose words cover the letter-grid position
func (b *Board) EntriesAt(pos model.Position) []ClueEntry {
	var result []ClueEntry
	for _, e := range b.entries {
		if e.Covers(pos) {
			result = append(result, e)
		}
	}
	return result
}

// Clueless returns a copy of the board with every letter blanked.
// Borders, clue numbers and entries are kept.
func (b *Board) Clueless() *Board {
	out := b.clone()
	for y := 1; y < len(out.segments); y += 2 {
		for x := 1; x < len(out.segments[y]); x += 2 {
			out.segments[y][x] = strings.Map(func(r rune) rune {
				if unicode.IsLetter(r) {
					return ' '
				}
				return r
			}, out.segments[y][x])
		}
	}
	return out
}

func (b *Board) clone() *Board {
	out := &Board{
		rows:     b.rows,
		cols:     b.cols,
		segments: make([][]string, len(b.segments)),
		filled:   make([][]bool, len(b.filled)),
		entries:  make([]ClueEntry, len(b.entries)),
	}
	for y, line := range b.segments {
		out.segments[y] = slices.Clone(line)
	}
	for r, row := range b.filled {
		out.filled[r] = slices.Clone(row)
	}
	for i, e := range b.entries {
		e.Cells = slices.Clone(e.Cells)
		out.entries[i] = e
	}
	return out
}

// Serialize returns the board as text lines of equal length
func (b *Board) Serialize() []string {
	lines := make([]string, len(b.segments))
	for y, line := range b.segments {
		lines[y] = strings.Join(line, "")
	}
	return lines
}

// String returns the serialized board joined by newlines
func (b *Board) String() string {
	return strings.Join(b.Serialize(), "\n")
}
