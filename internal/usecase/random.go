package usecase

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// RandomSource is the only source of randomness used by product generation.
// Tests pass a seeded source to get reproducible fallback products.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// lockedSource makes a *rand.Rand safe for concurrent use
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a concurrency-safe source. A zero seed picks one from the clock.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomToken returns n lowercase base36 characters
func randomToken(r RandomSource, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(tokenAlphabet[r.IntN(len(tokenAlphabet))])
	}
	return b.String()
}
