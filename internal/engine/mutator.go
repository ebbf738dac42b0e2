package engine

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// commit applies an already validated move. It has no failing step: relocation, promotion,
// the castling or en passant side effect and the history append always all happen.
func commit(board *model.Board, move model.Move) {
	board.SetPieceAt(model.NoPiece, move.From)
	board.SetPieceAt(move.MovedPiece, move.To)
	promote(board, move)

	switch move.Type {
	case model.Castling:
		relocateRook(board, move)
	case model.EnPassant:
		removeEnPassantPawn(board, move)
	}

	board.MoveHistory = append(board.MoveHistory, move)
}

// promote turns a pawn that reached its farthest rank into a queen of the same color.
func promote(board *model.Board, move model.Move) {
	pawn := move.MovedPiece
	if pawn.Type != model.Pawn || move.To.Y != pawn.Color.PromotionRank() {
		return
	}
	board.SetPieceAt(model.Piece{Type: model.Queen, Color: pawn.Color}, move.To)
}

// relocateRook moves the castling rook from its corner to the square the king passed over.
func relocateRook(board *model.Board, move model.Move) {
	corner := model.NewCoordinate(0, move.From.Y)
	landing := move.To.Offset(1, 0)
	if move.To.X > move.From.X {
		corner = model.NewCoordinate(model.Size-1, move.From.Y)
		landing = move.To.Offset(-1, 0)
	}
	rook := board.PieceAt(corner)
	board.SetPieceAt(model.NoPiece, corner)
	board.SetPieceAt(rook, landing)
}

// removeEnPassantPawn removes the pawn that made the previous double step. It sits beside
// the capturing pawn's origin, one rank behind the destination.
func removeEnPassantPawn(board *model.Board, move model.Move) {
	captured := move.To.Offset(0, -move.MovedPiece.Color.PawnDirection())
	if last, ok := board.LastMove(); ok {
		captured = last.To
	}
	board.SetPieceAt(model.NoPiece, captured)
}
