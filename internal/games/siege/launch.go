package siege

import (
	"math"

	"github.com/vovakirdan/tui-siege/internal/config"
	"github.com/vovakirdan/tui-siege/internal/core"
)

// defaultLaunchDir is used for a zero-length drag: fire up and to the
// right at 45 degrees instead of producing a NaN direction.
var defaultLaunchDir = core.Vec2{X: math.Sqrt2 / 2, Y: -math.Sqrt2 / 2}

// NewProjectile converts a slingshot drag gesture into a projectile.
// The drag runs from the cannon to the aim point; the projectile flies
// from the cannon in the opposite direction (pulling down-left fires
// up-right). Drag length is capped, and speed, damage and radius all
// scale with the level's power multiplier.
func NewProjectile(cannon, aim core.Vec2, levelIndex int, power float64, cfg config.LaunchConfig) *Projectile {
	drag := math.Min(cannon.Dist(aim), cfg.MaxDrag)

	dir := cannon.Sub(aim).Norm()
	if dir == (core.Vec2{}) {
		dir = defaultLaunchDir
	}

	speed := (cfg.BaseSpeed + drag*cfg.DragToSpeed) * power
	damage := (cfg.BaseDamage + drag*cfg.DragToDamage) * power
	radius := core.ClampF(cfg.MinRadius+float64(levelIndex)*cfg.RadiusGrowth, cfg.MinRadius, cfg.MaxRadius)

	return &Projectile{
		Pos:    cannon,
		Vel:    dir.Scale(speed),
		Radius: radius,
		Damage: damage,
		Alive:  true,
	}
}
