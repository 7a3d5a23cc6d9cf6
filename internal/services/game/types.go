package game

import (
	"fairdice/internal/common/clock"
	"fairdice/internal/common/uuid"
	"fairdice/internal/console"
	"fairdice/internal/dice"
	"fairdice/internal/models"
	"fairdice/internal/random"
	roundRepo "fairdice/internal/repositories/round"
	"fairdice/internal/services/fairnum"
)

// Config holds configuration for the game service
type Config struct {
	// Random picks the computer's die. The pick is private and the user
	// cannot contest it, so it runs outside the commit-reveal protocol.
	Random random.Source

	// FairNum runs one commit-reveal round per contested random value
	FairNum fairnum.Service

	// Prompter is the session's console handle
	Prompter console.Prompter

	// RoundRepo records each resolved fair number round
	RoundRepo roundRepo.Repository

	// Clock stamps session and round bookkeeping
	Clock clock.Clock

	// UUIDGenerator mints session and round identifiers
	UUIDGenerator uuid.UUID
}

// PlayInput contains parameters for playing a session
type PlayInput struct {
	// Dice is the validated die list, fixed for the session's lifetime
	Dice []dice.Die
}

// PlayOutput contains the result of a completed session
type PlayOutput struct {
	// Session is the final session record
	Session *models.Session

	// ComputerRoll and UserRoll are the rolled face values
	ComputerRoll int
	UserRoll     int

	// Winner is the mover with the higher roll, or empty on a tie
	Winner models.Mover

	// Rounds are the recorded fair number rounds, in resolution order
	Rounds []*models.RoundResult
}
