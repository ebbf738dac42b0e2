package engine

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// isKingInCheck probes every opposing piece against the king's square and reports true on
// the first one that could capture there. A board without that king is never in check.
func isKingInCheck(board *model.Board, color model.Color) bool {
	king, ok := board.FindKing(color)
	if !ok {
		return false
	}
	for _, from := range board.Occupied(color.Opposite()) {
		move, err := validateMove(board, from, king)
		if err != nil {
			continue
		}
		if move.Type == model.Capture {
			return true
		}
	}
	return false
}
