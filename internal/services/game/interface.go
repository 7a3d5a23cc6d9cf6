package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// Play drives one full session from move-order determination to the
	// final roll comparison
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)
}
