package engine

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// UpdateBoardState classifies the position for the side to move, stores the result on the
// board and returns it.
func (g *Game) UpdateBoardState() model.BoardState {
	color := g.SideToMove()
	inCheck := isKingInCheck(g.board, color)
	canMove := hasLegalMove(g.board, color)

	var state model.BoardState
	switch {
	case inCheck && canMove:
		state = model.Check
	case inCheck:
		state = model.CheckMate
	case canMove:
		state = model.Regular
	default:
		state = model.StaleMate
	}
	g.board.State = state
	return state
}

// hasLegalMove tries every piece of the color against every square of the board and stops
// at the first legal move.
func hasLegalMove(board *model.Board, color model.Color) bool {
	squares := allSquares()
	for _, from := range board.Occupied(color) {
		for _, to := range squares {
			if _, err := legalMove(board, from, to); err == nil {
				return true
			}
		}
	}
	return false
}
