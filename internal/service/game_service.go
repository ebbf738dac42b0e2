package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// GameService is the entry point used by the controllers. Moves arrive in algebraic
// coordinates and are parsed here.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) MatchmakingStatus(playerID string) (string, Match) {
	return gs.gameManager.MatchmakingStatus(playerID)
}

func (gs *GameService) GetGameState(gameID string) (SessionState, error) {
	return gs.gameManager.GetGameState(gameID)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move ws.MovePayload) (model.Move, SessionState, error) {
	from, err := model.ParseCoordinate(move.From)
	if err != nil {
		return model.Move{}, SessionState{}, err
	}
	to, err := model.ParseCoordinate(move.To)
	if err != nil {
		return model.Move{}, SessionState{}, err
	}
	return gs.gameManager.MakeMove(gameID, playerID, from, to)
}

// LegalDestinations lists the squares the piece on from can legally move to.
func (gs *GameService) LegalDestinations(gameID string, from string) ([]string, error) {
	square, err := model.ParseCoordinate(from)
	if err != nil {
		return nil, err
	}
	moves, err := gs.gameManager.LegalMoves(gameID, square)
	if err != nil {
		return nil, err
	}
	destinations := make([]string, 0, len(moves))
	for _, move := range moves {
		destinations = append(destinations, move.To.String())
	}
	return destinations, nil
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}
