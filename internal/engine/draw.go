package engine

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// fiftyMoveWindow is fifty moves of each player, counted in half-moves.
const fiftyMoveWindow = 100

// CheckThreefoldRepetitionRule reports whether the current placement has occurred at least
// three times. Only positions after the last capture, castling or en passant are compared,
// since no earlier position can come back. The comparison runs on a separate replayed game.
func (g *Game) CheckThreefoldRepetitionRule() bool {
	base := len(g.origin.MoveHistory)
	history := g.board.MoveHistory

	occurrences := 0
	start := g.lastNonAttackMoveIndex()
	if start < base {
		// nothing irreversible happened, the starting position itself takes part
		start = base
		if g.origin.SamePlacement(g.board) {
			occurrences++
		}
	}

	simulated := g.replay(start)
	for _, move := range history[start:] {
		commit(simulated.board, move)
		if simulated.board.SamePlacement(g.board) {
			occurrences++
		}
	}
	return occurrences >= 3
}

// CheckFiftyMoveRule reports whether each of the last 100 half-moves was a non-capturing
// advance by a piece other than a pawn.
func (g *Game) CheckFiftyMoveRule() bool {
	history := g.board.MoveHistory
	if len(history) < fiftyMoveWindow {
		return false
	}
	for _, move := range history[len(history)-fiftyMoveWindow:] {
		if move.Type != model.Attack || move.MovedPiece.Type == model.Pawn {
			return false
		}
	}
	return true
}

// lastNonAttackMoveIndex returns the history index of the last capture, castling or en
// passant, or -1 if there is none.
func (g *Game) lastNonAttackMoveIndex() int {
	index := -1
	for i, move := range g.board.MoveHistory {
		if move.Type != model.Attack {
			index = i
		}
	}
	return index
}

// replay builds an independent game holding the origin position plus every move before the
// given history index.
func (g *Game) replay(upto int) *Game {
	simulated := &Game{
		board:  g.origin.Clone(),
		origin: g.origin.Clone(),
	}
	for _, move := range g.board.MoveHistory[len(g.origin.MoveHistory):upto] {
		commit(simulated.board, move)
	}
	return simulated
}
