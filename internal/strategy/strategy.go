// Package strategy holds the movement rules of each piece type. Every strategy is a pure
// function of (from, to, board): it classifies the move or rejects it with
// model.ErrInvalidMove. None of them look at the safety of the mover's own king.
package strategy

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

type Strategy interface {
	CheckMoveValidation(from, to model.Coordinate, board *model.Board) (model.MoveType, error)
}

// StrategyFunc adapts a plain function to the Strategy interface.
type StrategyFunc func(from, to model.Coordinate, board *model.Board) (model.MoveType, error)

func (f StrategyFunc) CheckMoveValidation(from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	return f(from, to, board)
}

var registry = map[model.PieceType]Strategy{
	model.Pawn:   StrategyFunc(validatePawnMove),
	model.Knight: StrategyFunc(validateKnightMove),
	model.Bishop: StrategyFunc(validateBishopMove),
	model.Rook:   StrategyFunc(validateRookMove),
	model.Queen:  StrategyFunc(validateQueenMove),
	model.King:   StrategyFunc(validateKingMove),
}

// FindValidationStrategy returns the strategy for the piece type. Every piece type has one;
// asking for anything else is a programming error and panics.
func FindValidationStrategy(pieceType model.PieceType) Strategy {
	s, ok := registry[pieceType]
	if !ok {
		panic(fmt.Sprintf("strategy: no validation strategy for piece type %q", pieceType))
	}
	return s
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{model.ErrInvalidMove}, args...)...)
}

// movingPiece checks the common preconditions and returns the piece standing on from.
func movingPiece(from, to model.Coordinate, board *model.Board) (model.Piece, error) {
	if !from.IsValid() || !to.IsValid() {
		return model.NoPiece, invalid("%s-%s is off the board", from, to)
	}
	if from == to {
		return model.NoPiece, invalid("piece on %s must leave its square", from)
	}
	piece := board.PieceAt(from)
	if piece.IsEmpty() {
		return model.NoPiece, invalid("no piece at %s", from)
	}
	return piece, nil
}

// landing classifies the destination for the given mover: an empty square is an attack, an
// opposing piece a capture and an own piece is rejected.
func landing(mover model.Piece, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	target := board.PieceAt(to)
	if target.IsEmpty() {
		return model.Attack, nil
	}
	if target.Color == mover.Color {
		return "", invalid("%s is occupied by a %s", to, target)
	}
	return model.Capture, nil
}

// isPathClear reports whether every square strictly between from and to is empty. The two
// squares must share a file, a rank or a diagonal.
func isPathClear(from, to model.Coordinate, board *model.Board) bool {
	dx, dy := sign(to.X-from.X), sign(to.Y-from.Y)
	for c := from.Offset(dx, dy); c != to; c = c.Offset(dx, dy) {
		if !board.IsEmpty(c) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
