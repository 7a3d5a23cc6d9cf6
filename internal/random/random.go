package random

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go fairdice/internal/random Source

// DrawBytes is the width of one entropy draw. 256 bits keeps the rejected
// fraction negligible for any die-sized range.
const DrawBytes = 32

// ErrInvalidRange indicates a non-positive range reached the source. The
// game validates ranges upstream, so hitting this is an internal fault.
var ErrInvalidRange = errors.New("range must be positive")

// Source produces uniformly distributed integers in [0, rangeN).
type Source interface {
	Uniform(rangeN int) (int, error)
}

// Config holds configuration for the default source
type Config struct {
	// Entropy supplies random bytes. Defaults to crypto/rand.Reader.
	Entropy io.Reader
}

// DefaultSource implements Source by rejection sampling over a
// cryptographically strong byte stream. It keeps no state between calls
// beyond the reader handle; draws are independent.
type DefaultSource struct {
	entropy io.Reader
}

// New creates a new uniform source
func New(cfg *Config) *DefaultSource {
	entropy := io.Reader(rand.Reader)
	if cfg != nil && cfg.Entropy != nil {
		entropy = cfg.Entropy
	}

	return &DefaultSource{
		entropy: entropy,
	}
}

// maxDraw is 2^(8*DrawBytes), the number of distinct values one draw can take.
var maxDraw = new(big.Int).Lsh(big.NewInt(1), 8*DrawBytes)

// Uniform returns an integer in [0, rangeN) with no modulo bias. A draw is
// kept only if it falls below the largest multiple of rangeN expressible in
// DrawBytes bytes; otherwise it is discarded and redrawn. Reducing the draw
// without that cutoff would skew every range that does not divide 2^256.
func (s *DefaultSource) Uniform(rangeN int) (int, error) {
	if rangeN <= 0 {
		return 0, ErrInvalidRange
	}

	n := big.NewInt(int64(rangeN))
	limit := new(big.Int).Div(maxDraw, n)
	limit.Mul(limit, n)

	buf := make([]byte, DrawBytes)
	x := new(big.Int)
	for {
		if _, err := io.ReadFull(s.entropy, buf); err != nil {
			return 0, err
		}

		x.SetBytes(buf)
		if x.Cmp(limit) >= 0 {
			continue
		}

		x.Mod(x, n)
		return int(x.Int64()), nil
	}
}
