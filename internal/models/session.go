package models

import (
	"time"
)

// SessionStatus represents the current state of a game session
type SessionStatus string

const (
	// SessionStatusWaiting indicates a session has been created but the
	// move order has not been determined yet
	SessionStatusWaiting SessionStatus = "waiting"

	// SessionStatusActive indicates a session is in progress
	SessionStatusActive SessionStatus = "active"

	// SessionStatusCompleted indicates both rounds resolved normally
	SessionStatusCompleted SessionStatus = "completed"

	// SessionStatusAborted indicates the user asked to leave at a prompt
	SessionStatusAborted SessionStatus = "aborted"
)

// Mover identifies one of the two parties in a session
type Mover string

const (
	// MoverComputer is the initiating party
	MoverComputer Mover = "computer"

	// MoverUser is the counterpart at the console
	MoverUser Mover = "user"
)

// Other returns the opposing mover
func (m Mover) Other() Mover {
	if m == MoverComputer {
		return MoverUser
	}
	return MoverComputer
}

// Session represents one play-through of the dice game
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// Status is the current state of the session
	Status SessionStatus

	// FirstMover is fixed by the move-order round and never changes
	FirstMover Mover

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session last changed state
	UpdatedAt time.Time
}
