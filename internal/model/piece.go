package model

import "strings"

type PieceType string

func (p PieceType) Notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return ""
	}
	return ""
}

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// PieceTypes lists every piece type in a fixed order.
var PieceTypes = []PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection is the rank delta of a single pawn step for the color.
func (c Color) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRank is the rank the color's pieces start on.
func (c Color) BackRank() int {
	if c == White {
		return 0
	}
	return Size - 1
}

// PawnRank is the rank the color's pawns start on.
func (c Color) PawnRank() int {
	return c.BackRank() + c.PawnDirection()
}

// PromotionRank is the farthest rank for the color's pawns.
func (c Color) PromotionRank() int {
	return c.Opposite().BackRank()
}

// Piece is a (type, color) pair. The zero value is an empty square.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

var (
	NoPiece = Piece{}

	WhitePawn   = Piece{Type: Pawn, Color: White}
	WhiteKnight = Piece{Type: Knight, Color: White}
	WhiteBishop = Piece{Type: Bishop, Color: White}
	WhiteRook   = Piece{Type: Rook, Color: White}
	WhiteQueen  = Piece{Type: Queen, Color: White}
	WhiteKing   = Piece{Type: King, Color: White}

	BlackPawn   = Piece{Type: Pawn, Color: Black}
	BlackKnight = Piece{Type: Knight, Color: Black}
	BlackBishop = Piece{Type: Bishop, Color: Black}
	BlackRook   = Piece{Type: Rook, Color: Black}
	BlackQueen  = Piece{Type: Queen, Color: Black}
	BlackKing   = Piece{Type: King, Color: Black}
)

func (p Piece) IsEmpty() bool {
	return p.Type == ""
}

// Symbol is the FEN letter of the piece: upper case for White, lower case for Black and a
// space for an empty square.
func (p Piece) Symbol() string {
	if p.IsEmpty() {
		return " "
	}
	sym := p.Type.Notation()
	if p.Type == Pawn {
		sym = "P"
	}
	if p.Color == Black {
		return strings.ToLower(sym)
	}
	return sym
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return string(p.Color) + " " + string(p.Type)
}
