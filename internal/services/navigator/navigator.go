// Package navigator moves a cursor over the filled cells of a rendered
// board.
package navigator

import (
	"fmt"
	"regexp"

	"github.com/mcoot/crosswordgen/internal/model"
	"github.com/mcoot/crosswordgen/internal/services/render"
)

var numberPrefix = regexp.MustCompile(`^(\d+)(.*)$`)

// Neighbor is one of the eight rendered cells around the cursor
type Neighbor struct {
	Direction model.Direction
	Row       int // serialized line
	Col       int // serialized character column
	Text      string
}

// Navigator owns a cursor over a board it only reads
type Navigator struct {
	board  *render.Board
	cursor model.Position
}

// New places a cursor on the first filled cell, scanning rows then columns.
// It returns model.ErrInvalidInput if the board has no filled cell.
func New(board *render.Board) (*Navigator, error) {
	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			pos := model.Position{Row: r, Col: c}
			if board.Filled(pos) {
				return &Navigator{board: board, cursor: pos}, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: board has no filled cell", model.ErrInvalidInput)
}

// Board returns the board being navigated
func (n *Navigator) Board() *render.Board {
	return n.board
}

// Position returns the cursor's letter-grid position
func (n *Navigator) Position() model.Position {
	return n.cursor
}

// Loc returns the cursor's rendered position
func (n *Navigator) Loc() render.Point {
	return render.CellPoint(n.cursor)
}

// MoveUp moves to the next filled cell above, wrapping to the bottom
func (n *Navigator) MoveUp() {
	n.Move(model.Up)
}

// MoveDown moves to the next filled cell below, wrapping to the top
func (n *Navigator) MoveDown() {
	n.Move(model.Down)
}

// MoveLeft moves to the next filled cell to the left, wrapping to the right
func (n *Navigator) MoveLeft() {
	n.Move(model.Left)
}

// MoveRight moves to the next filled cell to the right, wrapping to the left
func (n *Navigator) MoveRight() {
	n.Move(model.Right)
}

// Move steps the cursor in an orthogonal direction, skipping empty cells
// and wrapping at the board edge. Diagonal directions are ignored.
func (n *Navigator) Move(d model.Direction) {
	switch d {
	case model.Up, model.Down, model.Left, model.Right:
	default:
		return
	}

	dRow, dCol := d.Offset()
	pos := n.cursor
	// The cursor's own row and column contain a filled cell, so this ends
	for {
		pos = model.Position{
			Row: wrap(pos.Row+dRow, n.board.Rows()),
			Col: wrap(pos.Col+dCol, n.board.Cols()),
		}
		if n.board.Filled(pos) {
			n.cursor = pos
			return
		}
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Neighbors returns the eight rendered cells around the cursor. The up and
// down cells are border segments; a clue number at their start is skipped,
// moving Col past the digits and leaving the rest of the segment as Text.
func (n *Navigator) Neighbors() []Neighbor {
	// segment coordinates of the cursor's content cell
	y, x := 2*n.cursor.Row+1, 2*n.cursor.Col+1

	neighbors := make([]Neighbor, 0, len(model.Directions))
	for _, d := range model.Directions {
		dy, dx := d.Offset()
		ny, nx := y+dy, x+dx

		nb := Neighbor{
			Direction: d,
			Row:       ny,
			Col:       render.SegmentColumn(nx),
			Text:      n.board.Segment(ny, nx),
		}
		if d.IsVertical() {
			if m := numberPrefix.FindStringSubmatch(nb.Text); m != nil {
				nb.Col += len(m[1])
				nb.Text = m[2]
			}
		}
		neighbors = append(neighbors, nb)
	}
	return neighbors
}

// CluesAt returns the clue entries whose words pass through the cursor
func (n *Navigator) CluesAt() []render.ClueEntry {
	return n.board.EntriesAt(n.cursor)
}
