package round

import "fairdice/internal/models"

type SaveRoundInput struct {
	Round *models.RoundResult
}

type ListRoundsInput struct {
	SessionID string
}

type ListRoundsOutput struct {
	Rounds []*models.RoundResult
}
