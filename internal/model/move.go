package model

// MoveType classifies a validated move. Promotion is not a move type: it is applied when the
// move is committed and the history entry keeps the pawn as the moved piece.
type MoveType string

const (
	// Attack is a regular, non-capturing advance.
	Attack    MoveType = "attack"
	Capture   MoveType = "capture"
	Castling  MoveType = "castling"
	EnPassant MoveType = "enPassant"
)

type BoardState string

const (
	Regular   BoardState = "regular"
	Check     BoardState = "check"
	CheckMate BoardState = "checkMate"
	StaleMate BoardState = "staleMate"
)

// Move is the immutable record produced by validation and stored in the board history.
type Move struct {
	From       Coordinate `json:"from"`
	To         Coordinate `json:"to"`
	MovedPiece Piece      `json:"movedPiece"`
	Type       MoveType   `json:"type"`
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Notation returns a short algebraic rendering of the move.
func (m Move) Notation() string {
	if m.Type == Castling {
		if m.To.X > m.From.X {
			return "O-O"
		}
		return "O-O-O"
	}
	prefix := m.MovedPiece.Type.Notation()
	capture := ""
	if m.Type == Capture || m.Type == EnPassant {
		if m.MovedPiece.Type == Pawn {
			prefix = m.From.File()
		}
		capture = "x"
	}
	suffix := ""
	if m.MovedPiece.Type == Pawn && m.To.Y == m.MovedPiece.Color.PromotionRank() {
		suffix = "=Q"
	}
	return prefix + capture + m.To.String() + suffix
}
