package round

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go fairdice/internal/repositories/round Repository

import (
	"context"
)

// Repository defines the interface for round result storage
type Repository interface {
	// SaveRound records a resolved fair number round
	SaveRound(ctx context.Context, input *SaveRoundInput) error

	// ListRounds returns the rounds recorded for a session, in resolution order
	ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error)
}
