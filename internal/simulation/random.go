package simulation

import (
	"math/rand/v2"
	"time"
)

// Engine draws every random value of the simulation from one PRNG.
// It is not safe for concurrent use; each ticker owns its own Engine.
type Engine struct {
	rng *rand.Rand
}

// NewEngine returns an engine seeded with seed. A zero seed picks a time-based one.
func NewEngine(seed uint64) *Engine {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Engine{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float returns a uniform value in [0, 1).
func (e *Engine) Float() float64 {
	return e.rng.Float64()
}

// Jitter returns a uniform value in [-span/2, span/2).
func (e *Engine) Jitter(span float64) float64 {
	return (e.rng.Float64() - 0.5) * span
}

// Chance reports true with probability p.
func (e *Engine) Chance(p float64) bool {
	return e.rng.Float64() < p
}

// IntN returns a uniform int in [0, n).
func (e *Engine) IntN(n int) int {
	return e.rng.IntN(n)
}

// Clamp constrains v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
