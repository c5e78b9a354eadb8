package siege

import "github.com/vovakirdan/tui-siege/internal/core"

// Projectile is the single active shot. At most one exists at a time;
// a new one may be created only when none is alive.
type Projectile struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	Damage   float64 // Base damage potential, fixed at launch
	Alive    bool
	Traveled float64 // Accumulated path length (diagnostic)
}

// Speed returns the current speed magnitude.
func (p *Projectile) Speed() float64 {
	return p.Vel.Len()
}
