package engine

import (
	"strings"
	"testing"

	"github.com/notnil/chess"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

func sq(notation string) model.Coordinate {
	return model.MustParseCoordinate(notation)
}

// play performs space separated coordinate moves such as "e2e4 e7e5".
func play(t *testing.T, g *Game, moves string) {
	t.Helper()
	for _, mv := range strings.Fields(moves) {
		if _, err := g.PerformMove(sq(mv[:2]), sq(mv[2:])); err != nil {
			t.Fatalf("unexpected error on %s: %v", mv, err)
		}
	}
}

var (
	oraclePieceTypes = map[chess.PieceType]model.PieceType{
		chess.King:   model.King,
		chess.Queen:  model.Queen,
		chess.Rook:   model.Rook,
		chess.Bishop: model.Bishop,
		chess.Knight: model.Knight,
		chess.Pawn:   model.Pawn,
	}
	oracleColors = map[chess.Color]model.Color{
		chess.White: model.White,
		chess.Black: model.Black,
	}
)

func squareCoordinate(s chess.Square) model.Coordinate {
	return model.NewCoordinate(int(s.File()), int(s.Rank()))
}

// boardFromFEN loads the placement part of a FEN string. Castling rights, en passant square
// and clocks are ignored: the engine derives those from history.
func boardFromFEN(t *testing.T, fen string) *model.Board {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", fen, err)
	}
	pos := chess.NewGame(opt).Position()
	b := model.NewEmptyBoard()
	for s := chess.A1; s <= chess.H8; s++ {
		p := pos.Board().Piece(s)
		if p == chess.NoPiece {
			continue
		}
		b.SetPieceAt(model.Piece{Type: oraclePieceTypes[p.Type()], Color: oracleColors[p.Color()]}, squareCoordinate(s))
	}
	return b
}

func gameFromFEN(t *testing.T, fen string) *Game {
	t.Helper()
	return NewGameFromBoard(boardFromFEN(t, fen))
}
