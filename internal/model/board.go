package model

import (
	"fmt"
	"strings"
)

// Board is the piece placement grid, the move history and the current game state tag.
// Pieces is indexed as Pieces[y][x].
type Board struct {
	Pieces      [Size][Size]Piece `json:"pieces"`
	MoveHistory []Move            `json:"moveHistory"`
	State       BoardState        `json:"state"`
}

// NewEmptyBoard returns a board with no pieces and no history.
func NewEmptyBoard() *Board {
	return &Board{
		MoveHistory: make([]Move, 0),
		State:       Regular,
	}
}

// NewBoard returns a board seeded with the standard starting position.
func NewBoard() *Board {
	board := NewEmptyBoard()
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, t := range backRank {
		board.Pieces[0][x] = Piece{Type: t, Color: White}
		board.Pieces[1][x] = WhitePawn
		board.Pieces[6][x] = BlackPawn
		board.Pieces[7][x] = Piece{Type: t, Color: Black}
	}
	return board
}

func (b *Board) PieceAt(c Coordinate) Piece {
	return b.Pieces[c.Y][c.X]
}

func (b *Board) SetPieceAt(p Piece, c Coordinate) {
	b.Pieces[c.Y][c.X] = p
}

func (b *Board) IsEmpty(c Coordinate) bool {
	return b.PieceAt(c).IsEmpty()
}

// LastMove returns the most recent history entry.
func (b *Board) LastMove() (Move, bool) {
	if len(b.MoveHistory) == 0 {
		return Move{}, false
	}
	return b.MoveHistory[len(b.MoveHistory)-1], true
}

// SamePlacement reports whether both boards hold the same piece on every square.
func (b *Board) SamePlacement(other *Board) bool {
	return b.Pieces == other.Pieces
}

// Clone returns a copy that shares no mutable storage with b.
func (b *Board) Clone() *Board {
	history := make([]Move, len(b.MoveHistory))
	copy(history, b.MoveHistory)
	return &Board{
		Pieces:      b.Pieces,
		MoveHistory: history,
		State:       b.State,
	}
}

// Occupied returns the coordinates of every piece of the given color, rank by rank.
func (b *Board) Occupied(color Color) []Coordinate {
	var coords []Coordinate
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if p := b.Pieces[y][x]; !p.IsEmpty() && p.Color == color {
				coords = append(coords, Coordinate{X: x, Y: y})
			}
		}
	}
	return coords
}

// FindKing returns the coordinate of the king of the given color.
func (b *Board) FindKing(color Color) (Coordinate, bool) {
	king := Piece{Type: King, Color: color}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if b.Pieces[y][x] == king {
				return Coordinate{X: x, Y: y}, true
			}
		}
	}
	return Coordinate{}, false
}

// HasMoved reports whether any history entry started from or landed on c. It is used to
// derive castling rights: a king or rook still on its home square with no history touching
// that square has never moved.
func (b *Board) HasMoved(c Coordinate) bool {
	for _, m := range b.MoveHistory {
		if m.From == c || m.To == c {
			return true
		}
	}
	return false
}

// Dump renders the placement as a text grid with White at the bottom.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Size - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := 0; x < Size; x++ {
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", b.Pieces[y][x].Symbol()))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := 0; x < Size; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", NewCoordinate(x, 0).File()))
	}
	return builder.String()
}
