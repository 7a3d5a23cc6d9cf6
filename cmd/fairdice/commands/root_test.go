package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"fairdice/internal/console"
)

func runRoot(t *testing.T, args []string, input string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := newRoot()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&errOut)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no dice", args: nil},
		{name: "two dice", args: []string{"1,2,3,4", "1,2,3,4"}},
		{name: "three faces", args: []string{"1,2,3", "1,2,3,4", "1,2,3,4"}},
		{name: "non-integer face", args: []string{"1,2,3,x", "1,2,3,4", "1,2,3,4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runRoot(t, tt.args, "")
			if !errors.Is(err, errReported) {
				t.Fatalf("got %v, want errReported", err)
			}
			if !strings.Contains(stderr, "Example: fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3") {
				t.Fatalf("stderr %q lacks the example invocation", stderr)
			}
			if strings.Contains(stdout, "first move") {
				t.Fatal("game started despite a config error")
			}
		})
	}
}

func TestRootExitAtFirstPrompt(t *testing.T) {
	stdout, _, err := runRoot(t, []string{"2,2,4,4,9,9", "6,8,1,1,8,6", "7,5,3,7,5,3"}, "X\n")
	if !errors.Is(err, console.ErrExitRequested) {
		t.Fatalf("got %v, want ErrExitRequested", err)
	}
	if strings.Contains(stdout, "Choose your dice:") {
		t.Fatal("die selection was reached after an exit request")
	}
}

func TestRootPlaysFullGame(t *testing.T) {
	// Whoever moves first, the session asks exactly four questions
	// (order, then a die pick and two face contributions in some order)
	// and 0 is a valid answer to each.
	stdout, _, err := runRoot(t,
		[]string{"2,2,4,4,9,9", "6,8,1,1,8,6", "7,5,3,7,5,3"},
		"0\n0\n0\n0\n")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	for _, want := range []string{
		"Let's determine who makes the first move.",
		"HMAC=",
		"KEY=",
		"The fair number generation result is",
		"Choose your dice:",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("transcript lacks %q", want)
		}
	}
}
