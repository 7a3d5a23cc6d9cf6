package models

import (
	"time"
)

// RoundKind identifies what a fair number round decided
type RoundKind string

const (
	// RoundKindMoveOrder is the opening round that fixes who moves first
	RoundKindMoveOrder RoundKind = "move_order"

	// RoundKindComputerRoll picks the face of the computer's die
	RoundKindComputerRoll RoundKind = "computer_roll"

	// RoundKindUserRoll picks the face of the user's die
	RoundKindUserRoll RoundKind = "user_roll"
)

// RoundResult captures the revealed state of one resolved commit-reveal
// round. Everything a third party needs to re-verify the commitment is
// kept together: the digest published up front, the key and hidden value
// revealed afterward, and both contributions to the shared result.
type RoundResult struct {
	// ID is the unique identifier for the round
	ID string

	// SessionID is the session this round belongs to
	SessionID string

	// Kind is what the round decided
	Kind RoundKind

	// RangeN is the exclusive upper bound of the shared value
	RangeN int

	// OwnValue is the computer's hidden contribution, fixed before the
	// commitment was published
	OwnValue int

	// CounterpartValue is the user's answer
	CounterpartValue int

	// Result is (OwnValue + CounterpartValue) mod RangeN
	Result int

	// Digest is the commitment published before the user answered
	Digest string

	// Key is the single-use commitment key revealed at resolution
	Key []byte

	// Timestamp is when the round resolved
	Timestamp time.Time
}
