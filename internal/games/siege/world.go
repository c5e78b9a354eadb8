package siege

import (
	"github.com/vovakirdan/tui-siege/internal/config"
	"github.com/vovakirdan/tui-siege/internal/core"
)

// Phase is the projectile lifecycle state.
type Phase int

const (
	PhaseNone        Phase = iota // No projectile; a shot may be fired
	PhaseFlying                   // Projectile in flight
	PhaseResting                  // Projectile settled on the ground
	PhaseOutOfBounds              // Projectile left the play area
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhaseFlying:
		return "flying"
	case PhaseResting:
		return "resting"
	case PhaseOutOfBounds:
		return "out_of_bounds"
	default:
		return "unknown"
	}
}

// StepEvents reports what happened during one simulation step.
type StepEvents struct {
	Hit       bool       // A block was struck this step
	Destroyed []Material // Materials of blocks destroyed this step
	Advanced  bool       // The level was cleared and regenerated
	Settled   bool       // The projectile became inert this step
}

// World is the complete simulation state: the current level, the single
// projectile slot, and the play-area bounds. It is owned by one control
// loop and mutated in place; there is no internal locking. All operations
// are deterministic numeric transitions with no error surface — malformed
// requests (such as firing while a shot is alive) are silent no-ops.
type World struct {
	cfg        config.SiegeConfig
	bounds     Bounds
	seedOffset int64

	level *Level
	proj  *Projectile
	phase Phase
}

// NewWorld creates a world with the structure for startLevel generated.
func NewWorld(cfg config.SiegeConfig, bounds Bounds, seedOffset int64, startLevel int) *World {
	if startLevel < 1 {
		startLevel = 1
	}
	w := &World{
		cfg:        cfg,
		bounds:     bounds,
		seedOffset: seedOffset,
	}
	w.level = Generate(startLevel, seedOffset, bounds, cfg.Generator)
	return w
}

// Cannon returns the launch position: just above the ground near the
// left edge of the play area.
func (w *World) Cannon() core.Vec2 {
	return core.Vec2{X: 4, Y: w.bounds.GroundY - 1.5}
}

// Fire launches a projectile from a drag gesture running cannon -> aim.
// It is gated on "no live projectile": while one is alive the call is a
// no-op and returns false. On success the level's shot counter increments.
func (w *World) Fire(cannon, aim core.Vec2) bool {
	if w.proj != nil && w.proj.Alive {
		return false
	}
	w.proj = NewProjectile(cannon, aim, w.level.Index, w.level.Power, w.cfg.Launch)
	w.phase = PhaseFlying
	w.level.ShotsFired++
	return true
}

// Step advances the simulation by dt seconds. dt is clamped to the
// configured maximum step so a frame hitch cannot destabilize the
// integration. Order within a step: integration, ground collision,
// out-of-bounds check, at most one block collision, then the
// level-advance check (which regenerates the level in place).
func (w *World) Step(dt float64) StepEvents {
	var ev StepEvents

	if dt <= 0 {
		return ev
	}
	if dt > w.cfg.Physics.MaxStep {
		dt = w.cfg.Physics.MaxStep
	}

	if w.proj != nil && w.proj.Alive {
		w.integrate(w.proj, dt)

		if w.collideGround(w.proj) {
			w.proj.Alive = false
			w.phase = PhaseResting
			ev.Settled = true
		} else if w.outOfBounds(w.proj) {
			w.proj.Alive = false
			w.phase = PhaseOutOfBounds
			ev.Settled = true
		} else if hit, destroyed := w.collideBlocks(w.proj); hit != nil {
			ev.Hit = true
			if destroyed {
				ev.Destroyed = append(ev.Destroyed, hit.Material)
			}
		}
	}

	// Hard cut: crossing the threshold swaps in the next structure before
	// the next step runs, with the projectile forced inert.
	if w.level.DestroyedFraction() >= w.cfg.Generator.AdvanceThreshold {
		if w.proj != nil {
			w.proj.Alive = false
		}
		w.proj = nil
		w.phase = PhaseNone
		w.level = Generate(w.level.Index+1, w.seedOffset, w.bounds, w.cfg.Generator)
		ev.Advanced = true
	}

	return ev
}

// Restart regenerates the current level from its seed: an identical
// layout with the shot counter reset. Any live projectile is discarded.
func (w *World) Restart() {
	w.level = Generate(w.level.Index, w.seedOffset, w.bounds, w.cfg.Generator)
	w.proj = nil
	w.phase = PhaseNone
}

// Level returns the current level state.
func (w *World) Level() *Level {
	return w.level
}

// Projectile returns the live projectile, or nil when none is alive.
func (w *World) Projectile() *Projectile {
	if w.proj == nil || !w.proj.Alive {
		return nil
	}
	return w.proj
}

// LastProjectile returns the projectile slot regardless of liveness,
// so a settled shot can still be rendered. May be nil.
func (w *World) LastProjectile() *Projectile {
	return w.proj
}

// Phase returns the projectile lifecycle phase.
func (w *World) Phase() Phase {
	return w.phase
}

// CanFire reports whether a new shot may be launched.
func (w *World) CanFire() bool {
	return w.proj == nil || !w.proj.Alive
}

// Bounds returns the play-area bounds the world was built with.
func (w *World) Bounds() Bounds {
	return w.bounds
}
