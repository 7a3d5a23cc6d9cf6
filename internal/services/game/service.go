package game

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fairdice/internal/common/clock"
	"fairdice/internal/common/uuid"
	"fairdice/internal/console"
	"fairdice/internal/dice"
	"fairdice/internal/models"
	"fairdice/internal/probability"
	"fairdice/internal/random"
	roundRepo "fairdice/internal/repositories/round"
	"fairdice/internal/services/fairnum"
)

// service implements the Service interface
type service struct {
	random    random.Source
	fairNum   fairnum.Service
	prompter  console.Prompter
	roundRepo roundRepo.Repository
	clock     clock.Clock
	uuid      uuid.UUID
}

// NewService creates a new game service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.FairNum == nil {
		return nil, ErrNilFairNum
	}
	if cfg.Prompter == nil {
		return nil, ErrNilPrompter
	}
	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		random:    cfg.Random,
		fairNum:   cfg.FairNum,
		prompter:  cfg.Prompter,
		roundRepo: cfg.RoundRepo,
		clock:     cfg.Clock,
		uuid:      cfg.UUIDGenerator,
	}, nil
}

// Play drives one full session: a fair round fixes the move order, then
// each side rolls once in that order. At most one protocol invocation is
// ever in flight; round n+1 never begins before round n has resolved.
// An exit request at any prompt aborts the whole session immediately.
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if len(input.Dice) < dice.MinDice {
		return nil, ErrNotEnoughDice
	}

	now := s.clock.Now()
	session := &models.Session{
		ID:        s.uuid.NewUUID(),
		Status:    models.SessionStatusWaiting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	help := func() {
		s.prompter.Print(probability.Table(input.Dice))
	}

	s.prompter.Print("Let's determine who makes the first move.")
	order, err := s.fairRound(ctx, session, models.RoundKindMoveOrder, 2, help)
	if err != nil {
		return nil, s.abort(session, err)
	}
	if order == 1 {
		session.FirstMover = models.MoverComputer
		s.prompter.Print("I make the first move.")
	} else {
		session.FirstMover = models.MoverUser
		s.prompter.Print("You make the first move.")
	}
	session.Status = models.SessionStatusActive
	session.UpdatedAt = s.clock.Now()

	var computerRoll, userRoll int
	for _, mover := range [2]models.Mover{session.FirstMover, session.FirstMover.Other()} {
		switch mover {
		case models.MoverComputer:
			computerRoll, err = s.computerRound(ctx, session, input.Dice, help)
		case models.MoverUser:
			userRoll, err = s.userRound(ctx, session, input.Dice, help)
		}
		if err != nil {
			return nil, s.abort(session, err)
		}
	}

	s.announceResult(computerRoll, userRoll)
	session.Status = models.SessionStatusCompleted
	session.UpdatedAt = s.clock.Now()

	listed, err := s.roundRepo.ListRounds(ctx, &roundRepo.ListRoundsInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	return &PlayOutput{
		Session:      session,
		ComputerRoll: computerRoll,
		UserRoll:     userRoll,
		Winner:       winner(computerRoll, userRoll),
		Rounds:       listed.Rounds,
	}, nil
}

// abort marks the session aborted when the user asked to leave; any
// other error passes through as an internal fault.
func (s *service) abort(session *models.Session, err error) error {
	if errors.Is(err, console.ErrExitRequested) {
		session.Status = models.SessionStatusAborted
		session.UpdatedAt = s.clock.Now()
	}
	return err
}

// fairRound runs one protocol invocation and records its reveal data so
// the session can surface everything a verifier needs afterwards.
func (s *service) fairRound(ctx context.Context, session *models.Session, kind models.RoundKind, rangeN int, help func()) (int, error) {
	out, err := s.fairNum.Run(ctx, &fairnum.RunInput{
		RangeN: rangeN,
		Help:   help,
	})
	if err != nil {
		return 0, err
	}

	err = s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{
		Round: &models.RoundResult{
			ID:               s.uuid.NewUUID(),
			SessionID:        session.ID,
			Kind:             kind,
			RangeN:           rangeN,
			OwnValue:         out.OwnValue,
			CounterpartValue: out.CounterpartValue,
			Result:           out.Result,
			Digest:           out.Digest,
			Key:              out.Key,
			Timestamp:        s.clock.Now(),
		},
	})
	if err != nil {
		return 0, err
	}

	return out.Result, nil
}

// computerRound picks the computer's die privately, then rolls its face
// through the protocol. Only the face is contested: both sides have an
// incentive to bias it, so it needs a commitment, while the die pick
// does not.
func (s *service) computerRound(ctx context.Context, session *models.Session, diceList []dice.Die, help func()) (int, error) {
	index, err := s.random.Uniform(len(diceList))
	if err != nil {
		return 0, err
	}
	chosen := diceList[index]
	s.prompter.Print(fmt.Sprintf("I make a roll of the %s die.", chosen))

	face, err := s.fairRound(ctx, session, models.RoundKindComputerRoll, chosen.FaceCount(), help)
	if err != nil {
		return 0, err
	}
	value, err := chosen.Roll(face)
	if err != nil {
		return 0, err
	}

	s.prompter.Print(fmt.Sprintf("My roll result is %d.", value))
	return value, nil
}

// userRound lets the user pick any die, then rolls its face through the
// protocol.
func (s *service) userRound(ctx context.Context, session *models.Session, diceList []dice.Die, help func()) (int, error) {
	index, err := s.pickDie(ctx, diceList)
	if err != nil {
		return 0, err
	}
	chosen := diceList[index]
	s.prompter.Print(fmt.Sprintf("You choose the %s die.", chosen))

	face, err := s.fairRound(ctx, session, models.RoundKindUserRoll, chosen.FaceCount(), help)
	if err != nil {
		return 0, err
	}
	value, err := chosen.Roll(face)
	if err != nil {
		return 0, err
	}

	s.prompter.Print(fmt.Sprintf("Your roll result is %d.", value))
	return value, nil
}

// pickDie prompts for a die index. Availability is never reduced: both
// sides may roll the same die. Help renders the win-probability table and
// re-prompts without changing any state.
func (s *service) pickDie(ctx context.Context, diceList []dice.Die) (int, error) {
	s.announceDice(diceList)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		answer, err := s.prompter.Prompt("Your selection: ")
		if err != nil {
			return 0, err
		}

		switch {
		case strings.EqualFold(answer, console.ExitToken):
			return 0, console.ErrExitRequested
		case answer == console.HelpToken:
			s.prompter.Print(probability.Table(diceList))
			s.announceDice(diceList)
			continue
		}

		index, err := strconv.Atoi(answer)
		if err != nil || index < 0 || index >= len(diceList) {
			s.prompter.Print(fmt.Sprintf("Invalid selection %q, enter a number between 0 and %d.", answer, len(diceList)-1))
			continue
		}
		return index, nil
	}
}

// announceDice prints the die menu for the user round.
func (s *service) announceDice(diceList []dice.Die) {
	s.prompter.Print("Choose your dice:")
	for i, d := range diceList {
		s.prompter.Print(fmt.Sprintf("%d - %s", i, d))
	}
	s.prompter.Print(fmt.Sprintf("%s - exit", console.ExitToken))
	s.prompter.Print(fmt.Sprintf("%s - help", console.HelpToken))
}

// announceResult reports the roll comparison.
func (s *service) announceResult(computerRoll, userRoll int) {
	switch {
	case userRoll > computerRoll:
		s.prompter.Print(fmt.Sprintf("You win (%d > %d)!", userRoll, computerRoll))
	case computerRoll > userRoll:
		s.prompter.Print(fmt.Sprintf("I win (%d > %d)!", computerRoll, userRoll))
	default:
		s.prompter.Print(fmt.Sprintf("It's a tie (%d = %d)!", userRoll, computerRoll))
	}
}

// winner returns the mover with the higher roll, or empty on a tie.
func winner(computerRoll, userRoll int) models.Mover {
	switch {
	case userRoll > computerRoll:
		return models.MoverUser
	case computerRoll > userRoll:
		return models.MoverComputer
	default:
		return ""
	}
}
