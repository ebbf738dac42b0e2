package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

var (
	lightSquare = color.New(color.FgBlack, color.BgHiWhite)
	darkSquare  = color.New(color.FgBlack, color.BgGreen)
	bold        = color.New(color.Bold)
	warning     = color.New(color.FgYellow)
)

// replay plays coordinate moves such as "e2e4" from the starting position, stopping at the
// first rejected move, and prints the resulting position.
func replay(w io.Writer, moves []string, drawEach bool) error {
	g := engine.NewGame()
	for i, mv := range moves {
		if len(mv) != 4 {
			return fmt.Errorf("move %d: %w: %q", i+1, model.ErrInvalidCoordinate, mv)
		}
		from, err := model.ParseCoordinate(mv[:2])
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		to, err := model.ParseCoordinate(mv[2:])
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		move, err := g.PerformMove(from, to)
		if err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, mv, err)
		}
		if drawEach {
			fmt.Fprintf(w, "%d. %s\n%s\n", i+1, move.Notation(), drawBoard(g.Board()))
		}
	}

	state := g.UpdateBoardState()
	if !drawEach || len(moves) == 0 {
		fmt.Fprintln(w, drawBoard(g.Board()))
	}
	fmt.Fprintln(w, "to move:", g.SideToMove())
	fmt.Fprintln(w, "state:", state)
	fmt.Fprintln(w, "legal moves:", len(g.LegalMoves()))
	if g.CheckThreefoldRepetitionRule() {
		warning.Fprintln(w, "threefold repetition can be claimed")
	}
	if g.CheckFiftyMoveRule() {
		warning.Fprintln(w, "fifty-move rule can be claimed")
	}
	return nil
}

// drawBoard renders the board with checkered colored squares, White at the bottom.
func drawBoard(b *model.Board) string {
	builder := strings.Builder{}
	for y := model.Size - 1; y >= 0; y-- {
		_, _ = builder.WriteString(bold.Sprintf(" %d ", y+1))
		for x := 0; x < model.Size; x++ {
			square := darkSquare
			if (x+y)%2 == 1 {
				square = lightSquare
			}
			_, _ = builder.WriteString(square.Sprintf(" %s ", b.Pieces[y][x].Symbol()))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < model.Size; x++ {
		_, _ = builder.WriteString(bold.Sprintf(" %s ", model.NewCoordinate(x, 0).File()))
	}
	return builder.String()
}
