package fairnum

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go fairdice/internal/services/fairnum Service

import "context"

// Service defines the interface for fair number generation
type Service interface {
	// Run performs one full commit-reveal exchange and returns the shared value
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}
