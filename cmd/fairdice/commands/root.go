package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fairdice/internal/common/clock"
	commonUUID "fairdice/internal/common/uuid"
	"fairdice/internal/console"
	"fairdice/internal/dice"
	"fairdice/internal/random"
	roundRepo "fairdice/internal/repositories/round"
	"fairdice/internal/services/fairnum"
	gameService "fairdice/internal/services/game"
)

const exampleArgs = "2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3"

// errReported marks errors already printed by the command itself, so
// Execute only decides the exit code.
var errReported = errors.New("reported")

func Execute() error {
	err := newRoot().Execute()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, console.ErrExitRequested):
		// A forfeit is a clean, silent termination.
		return nil
	default:
		return err
	}
}

func newRoot() *cobra.Command {
	return &cobra.Command{
		Use:   "fairdice die1 die2 die3 [die4 ...]",
		Short: "Provably fair non-transitive dice game",
		Long: "Play a non-transitive dice game against the computer. Every random\n" +
			"decision is settled by a commit-reveal protocol you can verify after\n" +
			"the fact: the computer publishes an HMAC of its hidden value before\n" +
			"you answer, and reveals the value and key once you have.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fail := func(err error) error {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return errReported
			}

			diceList, err := dice.Parse(args)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				fmt.Fprintf(cmd.ErrOrStderr(), "Example: fairdice %s\n", exampleArgs)
				return errReported
			}

			prompter := console.New(&console.Config{
				In:  cmd.InOrStdin(),
				Out: cmd.OutOrStdout(),
			})
			source := random.New(nil)

			fairSvc, err := fairnum.NewService(&fairnum.Config{
				Random:   source,
				Prompter: prompter,
			})
			if err != nil {
				return fail(err)
			}

			gameSvc, err := gameService.NewService(&gameService.Config{
				Random:        source,
				FairNum:       fairSvc,
				Prompter:      prompter,
				RoundRepo:     roundRepo.NewMemory(),
				Clock:         &clock.DefaultClock{},
				UUIDGenerator: commonUUID.New(),
			})
			if err != nil {
				return fail(err)
			}

			_, err = gameSvc.Play(cmd.Context(), &gameService.PlayInput{
				Dice: diceList,
			})
			if err != nil {
				if errors.Is(err, console.ErrExitRequested) {
					return err
				}
				return fail(err)
			}
			return nil
		},
	}
}
