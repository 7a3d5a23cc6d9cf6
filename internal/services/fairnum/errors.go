package fairnum

// ProtocolError is a custom error type for protocol-related errors
type ProtocolError string

// Error implements the error interface
func (e ProtocolError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    ProtocolError = "config cannot be nil"
	ErrNilRandom    ProtocolError = "random source cannot be nil"
	ErrNilPrompter  ProtocolError = "prompter cannot be nil"
	ErrNilInput     ProtocolError = "input cannot be nil"
	ErrInvalidRange ProtocolError = "range must cover at least one value"
)
