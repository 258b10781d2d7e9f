package model

import "fmt"

// Orientation is the reading direction of a word
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Orientations lists both orientations in a fixed order
var Orientations = []Orientation{Horizontal, Vertical}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Forward is the direction a word of this orientation is read in
func (o Orientation) Forward() Direction {
	if o == Vertical {
		return Down
	}
	return Right
}

// Backward is the opposite of Forward
func (o Orientation) Backward() Direction {
	if o == Vertical {
		return Up
	}
	return Left
}

// Perpendicular returns the two directions beside a word of this orientation
func (o Orientation) Perpendicular() [2]Direction {
	if o == Vertical {
		return [2]Direction{Left, Right}
	}
	return [2]Direction{Up, Down}
}

// Other returns the crossing orientation
func (o Orientation) Other() Orientation {
	if o == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseOrientation parses "horizontal"/"across" or "vertical"/"down"
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "across":
		return Horizontal, nil
	case "vertical", "down":
		return Vertical, nil
	}
	return 0, fmt.Errorf("%w: unknown orientation %q", ErrInvalidInput, s)
}

// Direction is one of the 8 compass neighbours of a cell
type Direction int

const (
	UpLeft Direction = iota
	Up
	UpRight
	Left
	Right
	DownLeft
	Down
	DownRight
)

// Directions lists all 8 directions, row-major around a cell
var Directions = []Direction{UpLeft, Up, UpRight, Left, Right, DownLeft, Down, DownRight}

// Offset returns the (row, col) delta of a single step
func (d Direction) Offset() (int, int) {
	switch d {
	case UpLeft:
		return -1, -1
	case Up:
		return -1, 0
	case UpRight:
		return -1, 1
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case DownLeft:
		return 1, -1
	case Down:
		return 1, 0
	case DownRight:
		return 1, 1
	default:
		panic(fmt.Sprintf("model: invalid direction %d", int(d)))
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case UpLeft:
		return DownRight
	case Up:
		return Down
	case UpRight:
		return DownLeft
	case Left:
		return Right
	case Right:
		return Left
	case DownLeft:
		return UpRight
	case Down:
		return Up
	case DownRight:
		return UpLeft
	default:
		panic(fmt.Sprintf("model: invalid direction %d", int(d)))
	}
}

// IsVertical returns true for Up and Down
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case UpLeft:
		return "up-left"
	case Up:
		return "up"
	case UpRight:
		return "up-right"
	case Left:
		return "left"
	case Right:
		return "right"
	case DownLeft:
		return "down-left"
	case Down:
		return "down"
	case DownRight:
		return "down-right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
