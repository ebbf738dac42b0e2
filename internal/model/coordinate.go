package model

import (
	"fmt"
)

// Size is the number of files and ranks on the board.
const Size = 8

// Coordinate is a zero-based (file, rank) pair. X is the file (a=0), Y is the rank (1=0),
// so White's back rank is Y=0.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

// ParseCoordinate reads algebraic square notation such as "e4".
func ParseCoordinate(notation string) (Coordinate, error) {
	if len(notation) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, notation)
	}
	c := Coordinate{X: int(notation[0]) - 'a', Y: int(notation[1]) - '1'}
	if !c.IsValid() {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, notation)
	}
	return c, nil
}

// MustParseCoordinate is like ParseCoordinate but panics on bad input.
func MustParseCoordinate(notation string) Coordinate {
	c, err := ParseCoordinate(notation)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Coordinate) IsValid() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Coordinate) Offset(dx, dy int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

func (c Coordinate) String() string {
	if !c.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", c.X+'a', c.Y+1)
}

// File returns the file letter of the coordinate.
func (c Coordinate) File() string {
	return fmt.Sprintf("%c", c.X+'a')
}
