package fairnum

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"fairdice/internal/console"
	"fairdice/internal/crypto"
	"fairdice/internal/random"
)

// service implements the Service interface
type service struct {
	random   random.Source
	prompter console.Prompter
}

// NewService creates a new fair number service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Prompter == nil {
		return nil, ErrNilPrompter
	}

	return &service{
		random:   cfg.Random,
		prompter: cfg.Prompter,
	}, nil
}

// Run performs one self-contained commit-reveal invocation. The hidden
// value and its key are generated together and fixed before the
// commitment is announced; nothing about them is exposed until the
// counterpart has answered. The counterpart therefore cannot bias the
// result, and any reveal that contradicts the earlier digest is
// externally verifiable.
func (s *service) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.RangeN < 1 {
		return nil, ErrInvalidRange
	}

	ownValue, err := s.random.Uniform(input.RangeN)
	if err != nil {
		return nil, err
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	digest := crypto.Commit(key, ownValue)

	s.prompter.Print(fmt.Sprintf("I selected a random value in the range 0..%d (HMAC=%s).", input.RangeN-1, digest))
	s.announceMenu(input.RangeN)

	counterpart, err := s.awaitCounterpart(ctx, input)
	if err != nil {
		return nil, err
	}

	result := (ownValue + counterpart) % input.RangeN
	s.prompter.Print(fmt.Sprintf("My number is %d (KEY=%s).", ownValue, crypto.EncodeKey(key)))
	s.prompter.Print(fmt.Sprintf("The fair number generation result is %d + %d = %d (mod %d).",
		ownValue, counterpart, result, input.RangeN))

	return &RunOutput{
		Result:           result,
		OwnValue:         ownValue,
		CounterpartValue: counterpart,
		Key:              key,
		Digest:           digest,
	}, nil
}

// announceMenu prints the valid selections for the current range.
func (s *service) announceMenu(rangeN int) {
	s.prompter.Print(fmt.Sprintf("Add your number modulo %d.", rangeN))
	for v := 0; v < rangeN; v++ {
		s.prompter.Print(fmt.Sprintf("%d - %d", v, v))
	}
	s.prompter.Print(fmt.Sprintf("%s - exit", console.ExitToken))
	s.prompter.Print(fmt.Sprintf("%s - help", console.HelpToken))
}

// awaitCounterpart loops until the counterpart supplies a value in range
// or asks to leave. Help never touches the already-published commitment;
// it only re-displays the menu.
func (s *service) awaitCounterpart(ctx context.Context, input *RunInput) (int, error) {
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
			if input.Help != nil {
				input.Help()
			}
			s.announceMenu(input.RangeN)
			continue
		}

		value, err := strconv.Atoi(answer)
		if err != nil || value < 0 || value >= input.RangeN {
			s.prompter.Print(fmt.Sprintf("Invalid selection %q, enter a number between 0 and %d.", answer, input.RangeN-1))
			continue
		}
		return value, nil
	}
}
