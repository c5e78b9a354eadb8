package siege

import (
	"math"

	"github.com/vovakirdan/tui-siege/internal/core"
)

// integrate advances the projectile by dt: gravity, a per-step
// multiplicative air drag, then position. Path length accumulates into
// Traveled.
func (w *World) integrate(p *Projectile, dt float64) {
	p.Vel.Y += w.cfg.Physics.Gravity * dt
	p.Vel = p.Vel.Scale(w.cfg.Physics.AirDrag)

	delta := p.Vel.Scale(dt)
	p.Pos = p.Pos.Add(delta)
	p.Traveled += delta.Len()
}

// collideGround clamps the projectile onto the ground and bounces it with
// energy loss. Returns true if the projectile came to rest.
func (w *World) collideGround(p *Projectile) bool {
	phys := w.cfg.Physics

	if p.Pos.Y+p.Radius < w.bounds.GroundY {
		return false
	}

	p.Pos.Y = w.bounds.GroundY - p.Radius
	p.Vel.Y = -math.Abs(p.Vel.Y) * phys.GroundRestitution
	p.Vel.X *= phys.GroundFriction

	if math.Abs(p.Vel.X) < phys.RestSpeed && math.Abs(p.Vel.Y) < phys.RestSpeed {
		p.Vel = core.Vec2{}
		p.Pos.Y = w.bounds.GroundY - p.Radius
		return true
	}
	return false
}

// outOfBounds reports whether the projectile left the play area plus a
// generous margin. Without this check a lost shot would block the next
// one indefinitely.
func (w *World) outOfBounds(p *Projectile) bool {
	m := w.cfg.Physics.BoundsMargin
	return p.Pos.X < -m || p.Pos.X > w.bounds.Width+m ||
		p.Pos.Y < -m || p.Pos.Y > w.bounds.Height+m
}

// closestPointOnBlock returns the point on the block's rectangle nearest
// to the given position.
func closestPointOnBlock(b *Block, pos core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(pos.X, b.X, b.Right()),
		Y: core.ClampF(pos.Y, b.Y, b.Bottom()),
	}
}

// collideBlocks resolves at most one block collision: the first live block
// in collection order whose rectangle comes within the projectile radius.
// Resolving a single contact per step is a deliberate stability choice,
// not an ordering rule; it avoids amplifying energy when several blocks
// overlap the projectile at once.
func (w *World) collideBlocks(p *Projectile) (hit *Block, destroyed bool) {
	phys := w.cfg.Physics

	for i := range w.level.Blocks {
		b := &w.level.Blocks[i]
		if !b.Alive {
			continue
		}

		cp := closestPointOnBlock(b, p.Pos)
		d := p.Pos.Sub(cp)
		if d.Len() > p.Radius {
			continue
		}

		// Damage scales with current impact speed, not launch speed:
		// a projectile that has slowed down deals less on later hits.
		frac := phys.BaseDamageFraction + core.ClampF(p.Speed()/phys.SpeedNormalizer, 0, phys.MaxSpeedBonus)
		destroyed = b.Damage(p.Damage * frac)

		w.bounce(p, d)
		return b, destroyed
	}
	return nil, false
}

// bounce reflects the projectile off a block. The separation vector d runs
// from the contact point to the projectile center; the axis with the larger
// separation is the contact normal (equivalently, the axis with the smaller
// penetration depth), and velocity reflects along it with damping. A small
// uniform damping models energy absorbed by the impact, and the projectile
// is nudged out along the normal so the same contact does not resolve twice.
func (w *World) bounce(p *Projectile, d core.Vec2) {
	phys := w.cfg.Physics

	ax, ay := math.Abs(d.X), math.Abs(d.Y)
	if ax > ay {
		p.Vel.X = -p.Vel.X * phys.BounceDamping
		if d.X != 0 {
			p.Pos.X += math.Copysign(p.Radius-ax, d.X)
		}
	} else {
		p.Vel.Y = -p.Vel.Y * phys.BounceDamping
		if d.Y != 0 {
			p.Pos.Y += math.Copysign(p.Radius-ay, d.Y)
		}
	}

	p.Vel = p.Vel.Scale(phys.ImpactDamping)
}
