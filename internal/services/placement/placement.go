package placement

import (
	"github.com/mcoot/crosswordgen/internal/model"
)

// Placement is a candidate position for a word that crosses the grid at
// Anchor. It is only a candidate until committed.
type Placement struct {
	Word        string
	Orientation model.Orientation
	Anchor      model.Position // existing cell holding Word[Index]
	Index       int
	Start       model.Position // current grid coordinates, may be negative
	LeadGrowth  int            // rows/cols to insert before the grid
	TrailGrowth int            // rows/cols to append after the grid
}

type placementKey struct {
	start       model.Position
	orientation model.Orientation
}

func newPlacement(grid model.Grid, word string, anchor model.Position, index int, o model.Orientation) Placement {
	start := anchor.Step(o.Backward(), index)

	first, size := start.Col, grid.Cols()
	if o == model.Vertical {
		first, size = start.Row, grid.Rows()
	}
	last := first + len(word) - 1

	return Placement{
		Word:        word,
		Orientation: o,
		Anchor:      anchor,
		Index:       index,
		Start:       start,
		LeadGrowth:  max(0, -first),
		TrailGrowth: max(0, last-(size-1)),
	}
}

// Prefix is the part of the word before the anchor letter
func (p Placement) Prefix() string {
	return p.Word[:p.Index]
}

// Suffix is the part of the word after the anchor letter
func (p Placement) Suffix() string {
	return p.Word[p.Index+1:]
}

// End returns the position of the last letter in current grid coordinates
func (p Placement) End() model.Position {
	return p.Start.Step(p.Orientation.Forward(), len(p.Word)-1)
}

// Growth is the total number of rows (vertical) or columns (horizontal)
// the grid gains on commit.
func (p Placement) Growth() int {
	return p.LeadGrowth + p.TrailGrowth
}

func (p Placement) key() placementKey {
	return placementKey{start: p.Start, orientation: p.Orientation}
}

// distinctLetters returns each letter of word once, in first-seen order
func distinctLetters(word string) []rune {
	seen := make(map[rune]struct{}, len(word))
	var letters []rune
	for _, ch := range word {
		if _, ok := seen[ch]; ok {
			continue
		}
		seen[ch] = struct{}{}
		letters = append(letters, ch)
	}
	return letters
}
