package rng

import (
	"math/rand"
	"time"

	"distlab/ports"
)

// source wraps math/rand behind the RandomSource port
type source struct {
	r *rand.Rand
}

// New returns a time-seeded uniform source for production generation
func New() ports.RandomSource {
	return &source{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeeded returns a deterministic source for reproducible runs and tests
func NewSeeded(seed int64) ports.RandomSource {
	return &source{r: rand.New(rand.NewSource(seed))}
}

func (s *source) Float64() float64 {
	return s.r.Float64()
}
