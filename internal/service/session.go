package service

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/chessrules-backend/internal/engine"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// sessionConnections holds the open websockets of one session, keyed by player ID.
type sessionConnections struct {
	connections map[string]Conn
	mu          sync.RWMutex
}

// Session is one game between two seated players and the websockets watching it.
type Session struct {
	ID          string
	mu          sync.Mutex
	game        *engine.Game
	white       ClientPlayer
	black       ClientPlayer
	connections *sessionConnections
}

// SessionPlayers holds both seats of a session.
type SessionPlayers struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// SessionState is the snapshot sent to clients after every change.
type SessionState struct {
	ID        string           `json:"id"`
	Board     *model.Board     `json:"board"`
	ToMove    model.Color      `json:"toMove"`
	State     model.BoardState `json:"state"`
	IsCheck   bool             `json:"isCheck"`
	LastMove  *model.Move      `json:"lastMove"`
	Notation  []string         `json:"notation"`
	Threefold bool             `json:"threefoldRepetition"`
	FiftyMove bool             `json:"fiftyMoveRule"`
	Players   SessionPlayers   `json:"players"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		game:  engine.NewGame(),
		white: ClientPlayer{Color: model.White},
		black: ClientPlayer{Color: model.Black},
		connections: &sessionConnections{
			connections: make(map[string]Conn),
		},
	}
}

// AddPlayer seats the player on the first open seat, white first. A player who is already
// seated gets their seat back.
func (s *Session) AddPlayer(playerID string) (model.Color, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if color, ok := s.colorOf(playerID); ok {
		return color, nil
	}
	if s.white.ID == "" {
		s.white.ID = playerID
		return model.White, nil
	}
	if s.black.ID == "" {
		s.black.ID = playerID
		return model.Black, nil
	}
	return "", ErrGameFull
}

func (s *Session) colorOf(playerID string) (model.Color, bool) {
	switch {
	case playerID == "":
		return "", false
	case s.white.ID == playerID:
		return model.White, true
	case s.black.ID == playerID:
		return model.Black, true
	}
	return "", false
}

func (s *Session) hasOpenSeat() bool {
	return s.white.ID == "" || s.black.ID == ""
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) state() SessionState {
	board := s.game.Board()
	state := SessionState{
		ID:        s.ID,
		Board:     board,
		ToMove:    s.game.SideToMove(),
		State:     board.State,
		IsCheck:   board.State == model.Check || board.State == model.CheckMate,
		Notation:  make([]string, 0, len(board.MoveHistory)),
		Threefold: s.game.CheckThreefoldRepetitionRule(),
		FiftyMove: s.game.CheckFiftyMoveRule(),
	}
	if last, ok := board.LastMove(); ok {
		state.LastMove = &last
	}
	for _, move := range board.MoveHistory {
		state.Notation = append(state.Notation, move.Notation())
	}
	state.Players = SessionPlayers{White: s.white, Black: s.black}
	return state
}

// MakeMove performs the move for the seated player whose turn it is and pushes the new state
// to every open connection.
func (s *Session) MakeMove(playerID string, from, to model.Coordinate) (model.Move, SessionState, error) {
	s.mu.Lock()
	color, ok := s.colorOf(playerID)
	if !ok {
		s.mu.Unlock()
		return model.Move{}, SessionState{}, ErrNotInGame
	}
	if color != s.game.SideToMove() {
		s.mu.Unlock()
		return model.Move{}, SessionState{}, ErrNotYourTurn
	}
	if piece := s.game.PieceAt(from); !piece.IsEmpty() && piece.Color != color {
		s.mu.Unlock()
		return model.Move{}, SessionState{}, fmt.Errorf("%w: %s holds a %s piece", model.ErrInvalidMove, from, piece.Color)
	}
	move, err := s.game.PerformMove(from, to)
	if err != nil {
		s.mu.Unlock()
		return model.Move{}, SessionState{}, err
	}
	s.game.UpdateBoardState()
	state := s.state()
	s.mu.Unlock()

	s.broadcastState(state)
	return move, state, nil
}

// LegalMoves lists the legal moves of the piece on from.
func (s *Session) LegalMoves(from model.Coordinate) []model.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.LegalMovesFrom(from)
}

// RegisterConnection attaches a websocket for a seated player, or for anyone while a seat is
// still open. A second connection for the same player is closed and the first one kept.
func (s *Session) RegisterConnection(playerID string, conn Conn) error {
	s.mu.Lock()
	_, seated := s.colorOf(playerID)
	authorized := seated || s.hasOpenSeat()
	state := s.state()
	s.mu.Unlock()

	if !authorized {
		return ErrNotInGame
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		s.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
		)
		conn.Close()
		return nil
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()
	log.Printf("session %s: registered connection for player %s", s.ID, playerID)

	s.sendState(playerID, conn, state)
	return nil
}

// UnregisterConnection drops the player's connection if conn is still the registered one.
func (s *Session) UnregisterConnection(playerID string, conn Conn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	if current, exists := s.connections.connections[playerID]; exists && current == conn {
		delete(s.connections.connections, playerID)
		log.Printf("session %s: unregistered connection for player %s", s.ID, playerID)
	}
}

func (s *Session) broadcastState(state SessionState) {
	s.connections.mu.RLock()
	active := make(map[string]Conn, len(s.connections.connections))
	for playerID, conn := range s.connections.connections {
		active[playerID] = conn
	}
	s.connections.mu.RUnlock()

	for playerID, conn := range active {
		s.sendState(playerID, conn, state)
	}
}

// sendState writes the state to one connection and drops the connection if the write fails.
func (s *Session) sendState(playerID string, conn Conn, state SessionState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("session %s: failed to marshal state: %v", s.ID, err)
		return
	}
	if err := conn.WriteJSON(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}); err != nil {
		log.Printf("session %s: failed to send state to player %s: %v", s.ID, playerID, err)
		s.UnregisterConnection(playerID, conn)
	}
}
