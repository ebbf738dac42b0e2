package service

import (
	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// Conn is the part of a websocket connection a session writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// ClientPlayer is a seat as reported to clients. An empty ID is an open seat.
type ClientPlayer struct {
	ID    string      `json:"name"`
	Color model.Color `json:"color"`
}

// Match tells a queued player which game they were paired into.
type Match struct {
	GameID string      `json:"game_id"`
	Color  model.Color `json:"color"`
}
