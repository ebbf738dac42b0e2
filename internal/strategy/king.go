package strategy

import "github.com/benbeisheim/chessrules-backend/internal/model"

// kingHomeFile is the e-file.
const kingHomeFile = 4

func validateKingMove(from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	king, err := movingPiece(from, to, board)
	if err != nil {
		return "", err
	}
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	if dx <= 1 && dy <= 1 {
		return landing(king, to, board)
	}
	if dx == 2 && dy == 0 {
		return validateCastling(king, from, to, board)
	}
	return "", invalid("king cannot move from %s to %s", from, to)
}

// validateCastling checks the placement part of castling. Castling rights are derived from
// the move history on every call: neither the king's nor the rook's home square may have
// been touched by any earlier move. Whether the king is attacked on its way is left to the
// caller, which owns check detection.
func validateCastling(king model.Piece, from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	home := model.NewCoordinate(kingHomeFile, king.Color.BackRank())
	if from != home {
		return "", invalid("king can only castle from %s", home)
	}
	rookFile := 0
	if to.X > from.X {
		rookFile = model.Size - 1
	}
	corner := model.NewCoordinate(rookFile, home.Y)
	if board.PieceAt(corner) != (model.Piece{Type: model.Rook, Color: king.Color}) {
		return "", invalid("no %s rook on %s to castle with", king.Color, corner)
	}
	if board.HasMoved(home) || board.HasMoved(corner) {
		return "", invalid("castling rights on %s are lost", corner)
	}
	if !isPathClear(from, corner, board) {
		return "", invalid("castling path from %s to %s is blocked", from, corner)
	}
	return model.Castling, nil
}
