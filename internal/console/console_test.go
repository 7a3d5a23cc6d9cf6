package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPromptReadsTrimmedLine(t *testing.T) {
	var out bytes.Buffer
	prompter := New(&Config{
		In:  strings.NewReader("  3  \n"),
		Out: &out,
	})

	answer, err := prompter.Prompt("Your selection: ")
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if answer != "3" {
		t.Fatalf("Prompt = %q, want %q", answer, "3")
	}
	if out.String() != "Your selection: " {
		t.Fatalf("label = %q, want %q", out.String(), "Your selection: ")
	}
}

func TestPromptTreatsEOFAsExit(t *testing.T) {
	prompter := New(&Config{
		In:  strings.NewReader(""),
		Out: &bytes.Buffer{},
	})

	answer, err := prompter.Prompt("Your selection: ")
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if answer != ExitToken {
		t.Fatalf("Prompt on closed input = %q, want %q", answer, ExitToken)
	}
}

func TestPromptConsumesOneLinePerCall(t *testing.T) {
	prompter := New(&Config{
		In:  strings.NewReader("first\nsecond\n"),
		Out: &bytes.Buffer{},
	})

	for _, want := range []string{"first", "second"} {
		answer, err := prompter.Prompt("> ")
		if err != nil {
			t.Fatalf("Prompt: %v", err)
		}
		if answer != want {
			t.Fatalf("Prompt = %q, want %q", answer, want)
		}
	}
}

func TestPrintAppendsNewline(t *testing.T) {
	var out bytes.Buffer
	prompter := New(&Config{
		In:  strings.NewReader(""),
		Out: &out,
	})

	prompter.Print("My roll result is 9.")
	if out.String() != "My roll result is 9.\n" {
		t.Fatalf("Print wrote %q", out.String())
	}
}
