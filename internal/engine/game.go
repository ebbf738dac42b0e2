// Package engine applies the rules of chess to a single game: it validates and commits
// moves, detects check, classifies the position and evaluates the draw rules.
//
// A Game exclusively owns its board. Probes and simulations always work on clones, so the
// live board is only ever changed by a committed move or by UpdateBoardState.
package engine

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

type Game struct {
	board *model.Board

	// origin is the position the game started from. It is never mutated and is the base for
	// replays.
	origin *model.Board
}

// NewGame starts a game from the standard starting position.
func NewGame() *Game {
	board := model.NewBoard()
	return &Game{
		board:  board,
		origin: board.Clone(),
	}
}

// NewGameFromMoves replays the moves from the starting position. The moves are trusted and
// committed without validation.
func NewGameFromMoves(moves []model.Move) *Game {
	g := NewGame()
	for _, move := range moves {
		commit(g.board, move)
	}
	return g
}

// NewGameFromBoard continues a game from a prepared position. The board is copied.
func NewGameFromBoard(board *model.Board) *Game {
	return &Game{
		board:  board.Clone(),
		origin: board.Clone(),
	}
}

// Board returns a snapshot of the current board.
func (g *Game) Board() *model.Board {
	return g.board.Clone()
}

// PieceAt returns the piece on c, or model.NoPiece for an empty or off-board square.
func (g *Game) PieceAt(c model.Coordinate) model.Piece {
	if !c.IsValid() {
		return model.NoPiece
	}
	return g.board.PieceAt(c)
}

func (g *Game) State() model.BoardState {
	return g.board.State
}

func (g *Game) MoveHistory() []model.Move {
	history := make([]model.Move, len(g.board.MoveHistory))
	copy(history, g.board.MoveHistory)
	return history
}

// SideToMove alternates by history length: White moves when it is even.
func (g *Game) SideToMove() model.Color {
	return sideToMove(g.board)
}

func sideToMove(board *model.Board) model.Color {
	if len(board.MoveHistory)%2 == 0 {
		return model.White
	}
	return model.Black
}

// ValidateMove checks the move against the rules of the piece on from without changing the
// board. It does not check whether the mover's own king would be left in check.
func (g *Game) ValidateMove(from, to model.Coordinate) (model.Move, error) {
	return validateMove(g.board, from, to)
}

// PerformMove validates the move, rejects it with model.ErrKingInCheck if it would leave the
// mover's king attacked and commits it otherwise.
func (g *Game) PerformMove(from, to model.Coordinate) (model.Move, error) {
	move, err := legalMove(g.board, from, to)
	if err != nil {
		return model.Move{}, err
	}
	commit(g.board, move)
	return move, nil
}

// IsKingInCheck reports whether the king of the given color is attacked.
func (g *Game) IsKingInCheck(color model.Color) bool {
	return isKingInCheck(g.board, color)
}

// LegalMovesFrom lists every legal move of the piece on from, whoever's turn it is.
func (g *Game) LegalMovesFrom(from model.Coordinate) []model.Move {
	if !from.IsValid() || g.board.IsEmpty(from) {
		return nil
	}
	var moves []model.Move
	for _, to := range allSquares() {
		if move, err := legalMove(g.board, from, to); err == nil {
			moves = append(moves, move)
		}
	}
	return moves
}

// LegalMoves lists every legal move of the side to move.
func (g *Game) LegalMoves() []model.Move {
	var moves []model.Move
	for _, from := range g.board.Occupied(g.SideToMove()) {
		moves = append(moves, g.LegalMovesFrom(from)...)
	}
	return moves
}

func allSquares() []model.Coordinate {
	squares := make([]model.Coordinate, 0, model.Size*model.Size)
	for y := 0; y < model.Size; y++ {
		for x := 0; x < model.Size; x++ {
			squares = append(squares, model.NewCoordinate(x, y))
		}
	}
	return squares
}
