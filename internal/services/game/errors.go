package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilRandom        GameError = "random source cannot be nil"
	ErrNilFairNum       GameError = "fair number service cannot be nil"
	ErrNilPrompter      GameError = "prompter cannot be nil"
	ErrNilRoundRepo     GameError = "round repository cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilInput         GameError = "input cannot be nil"
	ErrNotEnoughDice    GameError = "at least three dice are required"
)
