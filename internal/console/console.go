package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_prompter.go fairdice/internal/console Prompter

// Sentinel tokens accepted at every prompt in the game.
const (
	// ExitToken forfeits the entire session (case-insensitive)
	ExitToken = "X"

	// HelpToken re-displays the current menu, plus any extra help the
	// prompt offers, without changing state
	HelpToken = "?"
)

// ErrExitRequested reports that the user asked to leave at a prompt. It
// is not a failure: callers propagate it untouched to the top-level
// handler, which terminates the session with no further output.
var ErrExitRequested = errors.New("exit requested")

// Prompter is the single console handle a session owns for its lifetime.
type Prompter interface {
	// Prompt prints label and blocks for one line of input
	Prompt(label string) (string, error)

	// Print writes one line of output
	Print(line string)
}

// Config holds configuration for the default prompter
type Config struct {
	// In is the input stream. Defaults to os.Stdin.
	In io.Reader

	// Out is the output stream. Defaults to os.Stdout.
	Out io.Writer
}

// DefaultPrompter implements Prompter over a line-buffered reader and a
// writer pair.
type DefaultPrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a new prompter
func New(cfg *Config) *DefaultPrompter {
	in := io.Reader(os.Stdin)
	out := io.Writer(os.Stdout)
	if cfg != nil && cfg.In != nil {
		in = cfg.In
	}
	if cfg != nil && cfg.Out != nil {
		out = cfg.Out
	}

	return &DefaultPrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Prompt prints label and blocks for one line of input, trimmed of
// surrounding whitespace. A closed input stream is an exit request.
func (p *DefaultPrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return ExitToken, nil
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// Print writes one line of output
func (p *DefaultPrompter) Print(line string) {
	fmt.Fprintln(p.out, line)
}
