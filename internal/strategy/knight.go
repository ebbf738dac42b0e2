package strategy

import "github.com/benbeisheim/chessrules-backend/internal/model"

func validateKnightMove(from, to model.Coordinate, board *model.Board) (model.MoveType, error) {
	knight, err := movingPiece(from, to, board)
	if err != nil {
		return "", err
	}
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)
	if !(dx == 1 && dy == 2) && !(dx == 2 && dy == 1) {
		return "", invalid("knight cannot move from %s to %s", from, to)
	}
	return landing(knight, to, board)
}
