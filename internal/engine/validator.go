package engine

import (
	"fmt"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/strategy"
)

func validateMove(board *model.Board, from, to model.Coordinate) (model.Move, error) {
	if !from.IsValid() || !to.IsValid() {
		return model.Move{}, fmt.Errorf("%w: %s-%s is off the board", model.ErrInvalidMove, from, to)
	}
	piece := board.PieceAt(from)
	if piece.IsEmpty() {
		return model.Move{}, fmt.Errorf("%w: no piece at %s", model.ErrInvalidMove, from)
	}
	moveType, err := strategy.FindValidationStrategy(piece.Type).CheckMoveValidation(from, to, board)
	if err != nil {
		return model.Move{}, err
	}
	return model.Move{
		From:       from,
		To:         to,
		MovedPiece: piece,
		Type:       moveType,
	}, nil
}

// legalMove validates the move and then probes it on a scratch copy of the board, rejecting
// it if the mover's king ends up attacked.
func legalMove(board *model.Board, from, to model.Coordinate) (model.Move, error) {
	move, err := validateMove(board, from, to)
	if err != nil {
		return model.Move{}, err
	}
	if err := ensureKingSafe(board, move); err != nil {
		return model.Move{}, err
	}
	return move, nil
}

func ensureKingSafe(board *model.Board, move model.Move) error {
	color := move.MovedPiece.Color

	if move.Type == model.Castling {
		if isKingInCheck(board, color) {
			return fmt.Errorf("%w: %s king cannot castle out of check", model.ErrKingInCheck, color)
		}
		step := 1
		if move.To.X < move.From.X {
			step = -1
		}
		transit := move.From.Offset(step, 0)
		scratch := board.Clone()
		scratch.SetPieceAt(model.NoPiece, move.From)
		scratch.SetPieceAt(move.MovedPiece, transit)
		if isKingInCheck(scratch, color) {
			return fmt.Errorf("%w: %s king cannot castle through %s", model.ErrKingInCheck, color, transit)
		}
	}

	scratch := board.Clone()
	commit(scratch, move)
	if isKingInCheck(scratch, color) {
		return fmt.Errorf("%w: %s leaves the %s king attacked", model.ErrKingInCheck, move, color)
	}
	return nil
}
