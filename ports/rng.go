package ports

// RandomSource supplies independent uniform(0,1) draws for the generators.
// Implementations carry no cross-call state visible to callers; a seeded
// source exists so generation is reproducible in tests.
type RandomSource interface {
	// Float64 returns the next uniform draw in [0,1)
	Float64() float64
}
