package random

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand/v2"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	max := big.NewInt(int64(n))
	result, err := rand.Int(rand.Reader, max)
	if err != nil {
		// Fall back to 0 on error (should never happen with crypto/rand)
		return 0
	}
	return int(result.Int64())
}

// SeededRandom implements Random with a deterministic PCG generator.
// Not safe for concurrent use.
type SeededRandom struct {
	rng *mathrand.Rand
}

// NewSeeded creates a SeededRandom; the same seed yields the same sequence
func NewSeeded(seed uint64) *SeededRandom {
	return &SeededRandom{rng: mathrand.New(mathrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.IntN(n)
}
