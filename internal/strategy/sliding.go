package strategy

import "github.com/benbeisheim/chessrules-backend/internal/model"

func isDiagonal(from, to model.Coordinate) bool {
	return abs(to.X-from.X) == abs(to.Y-from.Y)
}

func isLateral(from, to model.Coordinate) bool {
	return from.X == to.X || from.Y == to.Y
}

func validateBishopMove(from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	bishop, err := movingPiece(from, to, board)
	if err != nil {
		return "", err
	}
	if !isDiagonal(from, to) {
		return "", invalid("bishop cannot move from %s to %s", from, to)
	}
	return slide(bishop, from, to, board)
}

func validateRookMove(from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	rook, err := movingPiece(from, to, board)
	if err != nil {
		return "", err
	}
	if !isLateral(from, to) {
		return "", invalid("rook cannot move from %s to %s", from, to)
	}
	return slide(rook, from, to, board)
}

func validateQueenMove(from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	queen, err := movingPiece(from, to, board)
	if err != nil {
		return "", err
	}
	if !isDiagonal(from, to) && !isLateral(from, to) {
		return "", invalid("queen cannot move from %s to %s", from, to)
	}
	return slide(queen, from, to, board)
}

func slide(piece model.Piece, from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	if !isPathClear(from, to, board) {
		return "", invalid("path from %s to %s is blocked", from, to)
	}
	return landing(piece, to, board)
}
