package service

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type fakeConn struct {
	mu       sync.Mutex
	messages []ws.Message
	closed   bool
	failing  bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return errors.New("broken pipe")
	}
	c.messages = append(c.messages, v.(ws.Message))
	return nil
}

func (c *fakeConn) WriteMessage(messageType int, data []byte) error {
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) states(t *testing.T) []SessionState {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	var states []SessionState
	for _, msg := range c.messages {
		if msg.Type != ws.MessageTypeGameState {
			t.Fatalf("unexpected message type: got=%v want=%v", msg.Type, ws.MessageTypeGameState)
		}
		var state SessionState
		if err := json.Unmarshal(msg.Payload, &state); err != nil {
			t.Fatalf("unexpected error decoding state: %v", err)
		}
		states = append(states, state)
	}
	return states
}

func sq(notation string) model.Coordinate {
	return model.MustParseCoordinate(notation)
}

func seatedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession("test")
	for _, id := range []string{"alice", "bob"} {
		if _, err := s.AddPlayer(id); err != nil {
			t.Fatalf("unexpected error seating %s: %v", id, err)
		}
	}
	return s
}

func TestSessionAddPlayer(t *testing.T) {
	t.Parallel()
	s := NewSession("test")
	tests := []struct {
		player  string
		want    model.Color
		wantErr error
	}{
		{player: "alice", want: model.White},
		{player: "bob", want: model.Black},
		{player: "alice", want: model.White},
		{player: "carol", wantErr: ErrGameFull},
	}
	for _, tt := range tests {
		got, err := s.AddPlayer(tt.player)
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("unexpected error for %s: got=%v want=%v", tt.player, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("unexpected color for %s: got=%v want=%v", tt.player, got, tt.want)
		}
	}
}

func TestSessionMakeMove(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		player  string
		from    string
		to      string
		wantErr error
	}{
		{name: "white moves first", player: "alice", from: "e2", to: "e4"},
		{name: "black must wait", player: "bob", from: "e7", to: "e5", wantErr: ErrNotYourTurn},
		{name: "stranger", player: "carol", from: "e2", to: "e4", wantErr: ErrNotInGame},
		{name: "illegal move", player: "alice", from: "e2", to: "e5", wantErr: model.ErrInvalidMove},
		{name: "moving the opponent's piece", player: "alice", from: "e7", to: "e5", wantErr: model.ErrInvalidMove},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := seatedSession(t)
			move, state, err := s.MakeMove(tt.player, sq(tt.from), sq(tt.to))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if got := len(s.State().Board.MoveHistory); got != 0 {
					t.Errorf("rejected move changed the history: got=%d want=0", got)
				}
				return
			}
			if move.MovedPiece != model.WhitePawn {
				t.Errorf("unexpected moved piece: got=%v want=%v", move.MovedPiece, model.WhitePawn)
			}
			if state.ToMove != model.Black {
				t.Errorf("unexpected side to move: got=%v want=%v", state.ToMove, model.Black)
			}
		})
	}
}

func TestSessionStateAfterMate(t *testing.T) {
	t.Parallel()
	s := seatedSession(t)
	players := []string{"alice", "bob"}
	var state SessionState
	for i, mv := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		var err error
		if _, state, err = s.MakeMove(players[i%2], sq(mv[:2]), sq(mv[2:])); err != nil {
			t.Fatalf("unexpected error on %s: %v", mv, err)
		}
	}
	if state.State != model.CheckMate || !state.IsCheck {
		t.Errorf("unexpected state: got=%v,%v want=%v,true", state.State, state.IsCheck, model.CheckMate)
	}
	if state.LastMove == nil || state.LastMove.String() != "d8h4" {
		t.Errorf("unexpected last move: got=%v want=d8h4", state.LastMove)
	}
	want := []string{"f3", "e5", "g4", "Qh4"}
	for i := range want {
		if state.Notation[i] != want[i] {
			t.Errorf("unexpected notation %d: got=%s want=%s", i, state.Notation[i], want[i])
		}
	}
	if _, _, err := s.MakeMove("alice", sq("e2"), sq("e4")); !errors.Is(err, model.ErrKingInCheck) {
		t.Errorf("unexpected error after mate: got=%v want=%v", err, model.ErrKingInCheck)
	}
}

func TestSessionDrawFlags(t *testing.T) {
	t.Parallel()
	s := seatedSession(t)
	players := []string{"alice", "bob"}
	var state SessionState
	for i := 0; i < 8; i++ {
		mv := []string{"g1f3", "g8f6", "f3g1", "f6g8"}[i%4]
		var err error
		if _, state, err = s.MakeMove(players[i%2], sq(mv[:2]), sq(mv[2:])); err != nil {
			t.Fatalf("unexpected error on %s: %v", mv, err)
		}
	}
	if !state.Threefold {
		t.Error("expected a threefold repetition")
	}
	if state.FiftyMove {
		t.Error("unexpected fifty-move flag")
	}
}

func TestSessionBroadcast(t *testing.T) {
	t.Parallel()
	s := seatedSession(t)
	white, black := &fakeConn{}, &fakeConn{}
	if err := s.RegisterConnection("alice", white); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RegisterConnection("bob", black); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := s.MakeMove("alice", sq("e2"), sq("e4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, conn := range map[string]*fakeConn{"white": white, "black": black} {
		states := conn.states(t)
		if len(states) != 2 {
			t.Fatalf("unexpected message count for %s: got=%d want=2", name, len(states))
		}
		if got := states[1].ToMove; got != model.Black {
			t.Errorf("unexpected side to move for %s: got=%v want=%v", name, got, model.Black)
		}
	}
}

func TestSessionRegisterConnection(t *testing.T) {
	t.Parallel()
	s := seatedSession(t)

	if err := s.RegisterConnection("carol", &fakeConn{}); !errors.Is(err, ErrNotInGame) {
		t.Errorf("unexpected error for a stranger: got=%v want=%v", err, ErrNotInGame)
	}

	first, second := &fakeConn{}, &fakeConn{}
	if err := s.RegisterConnection("alice", first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RegisterConnection("alice", second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.closed || first.closed {
		t.Errorf("unexpected close flags: first=%v second=%v", first.closed, second.closed)
	}

	// a stale connection must not unregister the current one
	s.UnregisterConnection("alice", second)
	if _, _, err := s.MakeMove("alice", sq("d2"), sq("d4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(first.states(t)); got != 2 {
		t.Errorf("unexpected message count: got=%d want=2", got)
	}

	s.UnregisterConnection("alice", first)
	if _, _, err := s.MakeMove("bob", sq("d7"), sq("d5")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(first.states(t)); got != 2 {
		t.Errorf("unregistered connection still receives state: got=%d want=2", got)
	}
}

func TestSessionDropsFailingConnection(t *testing.T) {
	t.Parallel()
	s := seatedSession(t)
	conn := &fakeConn{}
	if err := s.RegisterConnection("alice", conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conn.mu.Lock()
	conn.failing = true
	conn.mu.Unlock()
	if _, _, err := s.MakeMove("alice", sq("e2"), sq("e4")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.connections.mu.RLock()
	_, exists := s.connections.connections["alice"]
	s.connections.mu.RUnlock()
	if exists {
		t.Error("failing connection should have been dropped")
	}
}
