// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a random source so a seed gives a reproducible game.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a service with the given seed. Seed 0 means current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Centered returns a float in [-span/2, span/2).
func (s *PRNGService) Centered(span float64) float64 {
	return (s.rng.Float64() - 0.5) * span
}

// Between returns a float in [min, min+span).
func (s *PRNGService) Between(min, span float64) float64 {
	return s.rng.Float64()*span + min
}
