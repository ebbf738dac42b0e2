package model

import "errors"

var (
	// ErrInvalidMove is returned when a transition breaks the moving piece's rules, the path
	// is blocked, the target holds a piece of the same color or the source square is empty.
	ErrInvalidMove = errors.New("invalid move")

	// ErrKingInCheck is returned when an otherwise valid move would leave the mover's own
	// king attacked.
	ErrKingInCheck = errors.New("king in check")

	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
