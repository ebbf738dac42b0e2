package service

import (
	"sync"
)

// LockedConn serializes writes to a websocket. A connection is written to both by its own read
// loop (error replies) and by whichever goroutine broadcasts a move, and the websocket allows
// one writer at a time.
type LockedConn struct {
	conn Conn
	mu   sync.Mutex
}

func NewLockedConn(conn Conn) *LockedConn {
	return &LockedConn{conn: conn}
}

func (c *LockedConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *LockedConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(messageType, data)
}

// Close is not serialized with writes so it can interrupt a blocked one.
func (c *LockedConn) Close() error {
	return c.conn.Close()
}
