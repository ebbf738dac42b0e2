package engine

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// Positions are chosen so the engine's history derived castling and en passant rights agree
// with the FEN fields: nothing has moved off its home square unless the FEN says so.
var oraclePositions = []struct {
	name  string
	fen   string
	moves string
}{
	{
		name: "starting position",
		fen:  "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	},
	{
		name: "kiwipete",
		fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	},
	{
		name: "rook endgame",
		fen:  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	},
	{
		name: "promotions and pins",
		fen:  "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	},
	{
		name: "discovered checks",
		fen:  "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	},
	{
		name:  "en passant available",
		fen:   "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		moves: "e2e4 d7d5 e4e5 f7f5",
	},
	{
		name:  "both sides castled",
		fen:   "r1bq1rk1/pppp1ppp/2n2n2/2b1p3/2B1P3/2N2N2/PPPP1PPP/R1BQ1RK1 w - - 8 6",
		moves: "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5 b1c3 g8f6 e1g1 e8g8",
	},
}

type squarePair struct {
	from, to model.Coordinate
}

func pairsOf(moves []model.Move) []squarePair {
	pairs := make([]squarePair, 0, len(moves))
	for _, m := range moves {
		pairs = append(pairs, squarePair{m.From, m.To})
	}
	return uniquePairs(pairs)
}

func sortPairs(pairs []squarePair) []squarePair {
	sort.Slice(pairs, func(i, j int) bool {
		a, b := pairs[i], pairs[j]
		if a.from != b.from {
			return a.from.String() < b.from.String()
		}
		return a.to.String() < b.to.String()
	})
	return pairs
}

// uniquePairs collapses the promotion variants the oracles report for one pawn step.
func uniquePairs(pairs []squarePair) []squarePair {
	seen := make(map[squarePair]bool)
	var out []squarePair
	for _, p := range pairs {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return sortPairs(out)
}

func notnilPairs(t *testing.T, fen string) []squarePair {
	t.Helper()
	opt, err := chess.FEN(fen)
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", fen, err)
	}
	var pairs []squarePair
	for _, m := range chess.NewGame(opt).Position().ValidMoves() {
		pairs = append(pairs, squarePair{squareCoordinate(m.S1()), squareCoordinate(m.S2())})
	}
	return uniquePairs(pairs)
}

func dragontoothPairs(fen string) []squarePair {
	board := dragontoothmg.ParseFen(fen)
	var pairs []squarePair
	for _, m := range board.GenerateLegalMoves() {
		pairs = append(pairs, squarePair{indexCoordinate(m.From()), indexCoordinate(m.To())})
	}
	return uniquePairs(pairs)
}

// indexCoordinate converts a little-endian rank-file square index, a1 = 0 and h8 = 63.
func indexCoordinate(index uint8) model.Coordinate {
	return model.NewCoordinate(int(index%model.Size), int(index/model.Size))
}

func oracleGame(t *testing.T, fen, moves string) *Game {
	t.Helper()
	if moves == "" {
		return gameFromFEN(t, fen)
	}
	g := NewGame()
	play(t, g, moves)
	if want := boardFromFEN(t, fen); !g.Board().SamePlacement(want) {
		t.Fatalf("moves %q do not reach %q:\n%s", moves, fen, g.Board().Dump())
	}
	return g
}

func comparePairs(t *testing.T, oracle string, got, want []squarePair) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("unexpected move count against %s: got=%d want=%d", oracle, len(got), len(want))
	}
	missing := make(map[squarePair]bool, len(want))
	for _, p := range want {
		missing[p] = true
	}
	for _, p := range got {
		if !missing[p] {
			t.Errorf("move %s%s not legal according to %s", p.from, p.to, oracle)
		}
		delete(missing, p)
	}
	for p := range missing {
		t.Errorf("move %s%s missing, legal according to %s", p.from, p.to, oracle)
	}
}

func TestLegalMovesAgainstOracles(t *testing.T) {
	t.Parallel()
	for _, tt := range oraclePositions {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := oracleGame(t, tt.fen, tt.moves)
			got := pairsOf(g.LegalMoves())
			comparePairs(t, "notnil/chess", got, notnilPairs(t, tt.fen))
			comparePairs(t, "dragontoothmg", got, dragontoothPairs(tt.fen))
			if t.Failed() {
				t.Logf("position:\n%s", g.Board().Dump())
			}
		})
	}
}

func TestUpdateBoardStateAgainstOracle(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		want model.BoardState
	}{
		{name: "checkmate", fen: "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", want: model.CheckMate},
		{name: "stalemate", fen: "k7/8/1Q6/8/8/8/8/6K1 b - - 0 1", want: model.StaleMate},
		{name: "check", fen: "4k3/8/8/8/8/8/8/R3K2r w - - 0 1", want: model.Check},
		{name: "regular", fen: "4k3/8/8/8/8/8/8/4K3 b - - 0 1", want: model.Regular},
	}

	oracleStates := map[chess.Method]model.BoardState{
		chess.Checkmate: model.CheckMate,
		chess.Stalemate: model.StaleMate,
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opt, err := chess.FEN(tt.fen)
			if err != nil {
				t.Fatalf("unexpected error parsing %q: %v", tt.fen, err)
			}
			oracle := chess.NewGame(opt)
			if want, ok := oracleStates[oracle.Method()]; ok && want != tt.want {
				t.Fatalf("oracle disagrees with the table: got=%v want=%v", want, tt.want)
			}

			b := boardFromFEN(t, tt.fen)
			if oracle.Position().Turn() == chess.Black {
				// an odd history hands the move to black
				b.MoveHistory = append(b.MoveHistory, model.Move{From: sq("h4"), To: sq("h4"), Type: model.Attack})
			}
			if got := NewGameFromBoard(b).UpdateBoardState(); got != tt.want {
				t.Errorf("unexpected state: got=%v want=%v", got, tt.want)
			}
		})
	}
}
