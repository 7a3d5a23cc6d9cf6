package fairnum

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"fairdice/internal/console"
	"fairdice/internal/crypto"
	randomMocks "fairdice/internal/random/mocks"
)

type FairNumServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockRandom *randomMocks.MockSource
	ctx        context.Context
}

func (s *FairNumServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRandom = randomMocks.NewMockSource(s.mockCtrl)
	s.ctx = context.Background()
}

// newService builds a service wired to the mock source and a real
// prompter over scripted input, returning the captured transcript buffer.
func (s *FairNumServiceTestSuite) newService(input string) (Service, *bytes.Buffer) {
	out := &bytes.Buffer{}
	prompter := console.New(&console.Config{
		In:  strings.NewReader(input),
		Out: out,
	})

	svc, err := NewService(&Config{
		Random:   s.mockRandom,
		Prompter: prompter,
	})
	s.Require().NoError(err)
	return svc, out
}

func (s *FairNumServiceTestSuite) TestRunResolvesModuloSum() {
	s.mockRandom.EXPECT().Uniform(6).Return(3, nil)
	svc, out := s.newService("2\n")

	result, err := svc.Run(s.ctx, &RunInput{RangeN: 6})
	s.Require().NoError(err)

	s.Equal(5, result.Result)
	s.Equal(3, result.OwnValue)
	s.Equal(2, result.CounterpartValue)

	transcript := out.String()
	s.Contains(transcript, "I selected a random value in the range 0..5 (HMAC="+result.Digest+").")
	s.Contains(transcript, "Add your number modulo 6.")
	s.Contains(transcript, "Your selection: ")
	s.Contains(transcript, "My number is 3 (KEY="+crypto.EncodeKey(result.Key)+").")
	s.Contains(transcript, "The fair number generation result is 3 + 2 = 5 (mod 6).")
}

func (s *FairNumServiceTestSuite) TestRunCommitmentVerifiesAfterReveal() {
	s.mockRandom.EXPECT().Uniform(6).Return(4, nil)
	svc, _ := s.newService("1\n")

	result, err := svc.Run(s.ctx, &RunInput{RangeN: 6})
	s.Require().NoError(err)

	s.True(crypto.Verify(result.Key, result.OwnValue, result.Digest))
	s.False(crypto.Verify(result.Key, result.OwnValue+1, result.Digest))
}

func (s *FairNumServiceTestSuite) TestRunHelpKeepsCommitment() {
	s.mockRandom.EXPECT().Uniform(4).Return(1, nil)
	helpCalls := 0
	svc, out := s.newService("?\n2\n")

	result, err := svc.Run(s.ctx, &RunInput{
		RangeN: 4,
		Help:   func() { helpCalls++ },
	})
	s.Require().NoError(err)

	s.Equal(3, result.Result)
	s.Equal(1, helpCalls)

	transcript := out.String()
	s.Equal(1, strings.Count(transcript, "HMAC="), "help must never re-commit")
	s.Equal(2, strings.Count(transcript, "Add your number modulo 4."), "help re-displays the menu")
}

func (s *FairNumServiceTestSuite) TestRunInvalidSelectionReprompts() {
	s.mockRandom.EXPECT().Uniform(6).Return(0, nil)
	svc, out := s.newService("7\nabc\n-1\n4\n")

	result, err := svc.Run(s.ctx, &RunInput{RangeN: 6})
	s.Require().NoError(err)

	s.Equal(4, result.CounterpartValue)
	s.Equal(4, result.Result)

	transcript := out.String()
	s.Equal(3, strings.Count(transcript, "Invalid selection"))
	s.Contains(transcript, `Invalid selection "7", enter a number between 0 and 5.`)
	s.Equal(1, strings.Count(transcript, "HMAC="))
}

func (s *FairNumServiceTestSuite) TestRunExitSentinel() {
	for _, token := range []string{"X\n", "x\n"} {
		s.mockRandom.EXPECT().Uniform(6).Return(3, nil)
		svc, out := s.newService(token)

		result, err := svc.Run(s.ctx, &RunInput{RangeN: 6})
		s.Require().ErrorIs(err, console.ErrExitRequested)
		s.Nil(result)

		// An aborted invocation must not reveal the hidden value.
		s.NotContains(out.String(), "My number is")
		s.NotContains(out.String(), "KEY=")
	}
}

func (s *FairNumServiceTestSuite) TestRunInputValidation() {
	svc, _ := s.newService("")

	_, err := svc.Run(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = svc.Run(s.ctx, &RunInput{RangeN: 0})
	s.ErrorIs(err, ErrInvalidRange)
}

func (s *FairNumServiceTestSuite) TestRunCancelledContext() {
	s.mockRandom.EXPECT().Uniform(6).Return(3, nil)
	svc, _ := s.newService("2\n")

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := svc.Run(ctx, &RunInput{RangeN: 6})
	s.ErrorIs(err, context.Canceled)
}

func (s *FairNumServiceTestSuite) TestNewServiceValidation() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{Prompter: console.New(nil)})
	s.ErrorIs(err, ErrNilRandom)

	_, err = NewService(&Config{Random: s.mockRandom})
	s.ErrorIs(err, ErrNilPrompter)
}

func TestFairNumServiceSuite(t *testing.T) {
	suite.Run(t, new(FairNumServiceTestSuite))
}
