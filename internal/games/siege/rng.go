// Package siege implements a physics-driven block-destruction game:
// a slingshot projectile is launched under gravity at procedurally
// generated structures of damageable blocks, and clearing enough of a
// structure advances to a harder, freshly generated one.
package siege

// Linear congruential generator constants (Numerical Recipes).
const (
	lcgMul uint32 = 1664525
	lcgInc uint32 = 1013904223
)

// Level seed derivation constants. A level's seed is a pure function of its
// index (plus an optional run offset), so restarting a level regenerates the
// exact same structure.
const (
	seedBase int64 = 0x5EED
	seedStep int64 = 7919
)

// RNG is a deterministic pseudo-random number generator on 32-bit LCG state.
// The generated stream is a pure function of (seed, call count); the
// structure generator depends on this for reproducible layouts.
type RNG struct {
	state uint32
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// LevelSeed derives the deterministic seed for a level index.
// The offset lets a run shift the whole seed space (the --seed flag)
// while keeping per-level restarts reproducible within that run.
func LevelSeed(level int, offset int64) uint32 {
	return uint32(seedBase + int64(level)*seedStep + offset) //#nosec G115 -- wraparound is part of the derivation
}

// Next advances the state and returns the next raw 32-bit value.
func (r *RNG) Next() uint32 {
	r.state = r.state*lcgMul + lcgInc
	return r.state
}

// Float returns the next value as a float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()) / (1 << 32)
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float() * float64(n))
}

// Range returns a random float64 in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// State exposes the raw generator state for snapshots.
func (r *RNG) State() uint32 {
	return r.state
}
