package strategy

import "github.com/benbeisheim/chessrules-backend/internal/model"

func validatePawnMove(from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	pawn, err := movingPiece(from, to, board)
	if err != nil {
		return "", err
	}
	dir := pawn.Color.PawnDirection()
	dx, dy := to.X-from.X, to.Y-from.Y

	switch {
	case dx == 0 && dy == dir:
		if !board.IsEmpty(to) {
			return "", invalid("pawn advance to %s is blocked", to)
		}
		return model.Attack, nil

	case dx == 0 && dy == 2*dir:
		if from.Y != pawn.Color.PawnRank() {
			return "", invalid("pawn on %s is not on its starting rank", from)
		}
		if !board.IsEmpty(from.Offset(0, dir)) || !board.IsEmpty(to) {
			return "", invalid("pawn advance to %s is blocked", to)
		}
		return model.Attack, nil

	case abs(dx) == 1 && dy == dir:
		target := board.PieceAt(to)
		if target.IsEmpty() {
			if isEnPassant(pawn, from, to, board) {
				return model.EnPassant, nil
			}
			return "", invalid("pawn on %s has nothing to capture on %s", from, to)
		}
		if target.Color == pawn.Color {
			return "", invalid("%s is occupied by a %s", to, target)
		}
		return model.Capture, nil
	}

	return "", invalid("pawn cannot move from %s to %s", from, to)
}

// isEnPassant reports whether the last move was an opposing pawn's double step that landed
// beside from and skipped over to.
func isEnPassant(pawn model.Piece, from, to model.Coordinate, board *model.Board) bool {
	last, ok := board.LastMove()
	if !ok {
		return false
	}
	if last.MovedPiece.Type != model.Pawn || last.MovedPiece.Color == pawn.Color {
		return false
	}
	if abs(last.To.Y-last.From.Y) != 2 {
		return false
	}
	return last.To.Y == from.Y && last.To.X == to.X && board.PieceAt(last.To) == last.MovedPiece
}
