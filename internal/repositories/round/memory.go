package round

import (
	"context"
	"errors"
	"sync"

	"fairdice/internal/models"
)

// Repository errors
var (
	ErrNilInput = errors.New("input cannot be nil")
	ErrNilRound = errors.New("round cannot be nil")
)

// Memory is an in-memory Repository. Round results never outlive the
// process; cross-run persistence is deliberately out of scope.
type Memory struct {
	mu     sync.Mutex
	rounds map[string][]*models.RoundResult
}

// NewMemory creates an empty in-memory round store
func NewMemory() *Memory {
	return &Memory{
		rounds: make(map[string][]*models.RoundResult),
	}
}

// SaveRound records a resolved fair number round
func (m *Memory) SaveRound(ctx context.Context, input *SaveRoundInput) error {
	if input == nil {
		return ErrNilInput
	}
	if input.Round == nil {
		return ErrNilRound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.rounds[input.Round.SessionID] = append(m.rounds[input.Round.SessionID], input.Round)
	return nil
}

// ListRounds returns the rounds recorded for a session, in resolution order
func (m *Memory) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := m.rounds[input.SessionID]
	rounds := make([]*models.RoundResult, len(stored))
	copy(rounds, stored)

	return &ListRoundsOutput{Rounds: rounds}, nil
}
