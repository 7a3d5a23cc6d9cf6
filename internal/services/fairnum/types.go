package fairnum

import (
	"fairdice/internal/console"
	"fairdice/internal/random"
)

// Config holds configuration for the fair number service
type Config struct {
	// Random supplies the hidden value for each invocation
	Random random.Source

	// Prompter carries the console exchange with the counterpart
	Prompter console.Prompter
}

// RunInput contains parameters for one protocol invocation
type RunInput struct {
	// RangeN is the exclusive upper bound of the shared value
	RangeN int

	// Help renders extra help content when the counterpart asks for it.
	// The selection menu is always re-displayed afterwards; a nil Help
	// adds nothing.
	Help func()
}

// RunOutput contains the revealed state of a resolved invocation
type RunOutput struct {
	// Result is (OwnValue + CounterpartValue) mod RangeN
	Result int

	// OwnValue is the hidden value, fixed before the commitment was published
	OwnValue int

	// CounterpartValue is the value the counterpart supplied
	CounterpartValue int

	// Key is the single-use commitment key, revealed at resolution
	Key []byte

	// Digest is the commitment published before the counterpart answered
	Digest string
}
