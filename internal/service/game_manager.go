package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// GameManager owns every live session, the matchmaking queue and the pairings made from it.
type GameManager struct {
	games   map[string]*Session
	queue   *Queue
	matches map[string]Match
	mu      sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games:   make(map[string]*Session),
		queue:   NewQueue(),
		matches: make(map[string]Match),
	}
}

// RunMatchmaking pairs queued players every interval until ctx is done.
func (gm *GameManager) RunMatchmaking(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.processMatchmaking()
		}
	}
}

// processMatchmaking seats the two longest waiting players in a new game, as often as the
// queue allows.
func (gm *GameManager) processMatchmaking() int {
	paired := 0
	for {
		first, second, ok := gm.queue.NextPair()
		if !ok {
			return paired
		}

		gameID := uuid.New().String()
		session := NewSession(gameID)
		firstColor, err := session.AddPlayer(first)
		if err != nil {
			log.Printf("matchmaking: failed to seat player %s: %v", first, err)
			continue
		}
		secondColor, err := session.AddPlayer(second)
		if err != nil {
			log.Printf("matchmaking: failed to seat player %s: %v", second, err)
			continue
		}

		gm.mu.Lock()
		gm.games[gameID] = session
		gm.matches[first] = Match{GameID: gameID, Color: firstColor}
		gm.matches[second] = Match{GameID: gameID, Color: secondColor}
		gm.mu.Unlock()

		log.Printf("matchmaking: paired %s and %s in game %s", first, second, gameID)
		paired++
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return fmt.Errorf("%w: %s", ErrGameAlreadyExists, gameID)
	}
	gm.games[gameID] = NewSession(gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Color, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

// JoinMatchmaking forgets any earlier pairing of the player and queues them. Both happen under
// gm.mu so a pairing made right after queueing is never the one forgotten.
func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.matches, playerID)
	return gm.queue.AddPlayer(playerID)
}

// MatchmakingStatus reports "matched" with the pairing, "queued" while waiting, or "idle".
func (gm *GameManager) MatchmakingStatus(playerID string) (string, Match) {
	gm.mu.RLock()
	match, matched := gm.matches[playerID]
	gm.mu.RUnlock()

	switch {
	case matched:
		return "matched", match
	case gm.queue.Contains(playerID):
		return "queued", Match{}
	}
	return "idle", Match{}
}

func (gm *GameManager) GetGameState(gameID string) (SessionState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return SessionState{}, err
	}
	return game.State(), nil
}

func (gm *GameManager) MakeMove(gameID string, playerID string, from, to model.Coordinate) (model.Move, SessionState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Move{}, SessionState{}, err
	}
	return game.MakeMove(playerID, from, to)
}

func (gm *GameManager) LegalMoves(gameID string, from model.Coordinate) ([]model.Move, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(from), nil
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID, conn)
}
