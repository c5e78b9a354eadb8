package siege

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-siege/internal/config"
	"github.com/vovakirdan/tui-siege/internal/core"
)

func TestLaunchZeroDrag(t *testing.T) {
	cfg := config.DefaultSiegeConfig().Launch
	cannon := core.Vec2{X: 4, Y: 20}

	p := NewProjectile(cannon, cannon, 1, 1.0, cfg)

	if math.IsNaN(p.Vel.X) || math.IsNaN(p.Vel.Y) {
		t.Fatal("zero-length drag produced NaN velocity")
	}
	if got := p.Speed(); math.Abs(got-cfg.BaseSpeed) > 1e-9 {
		t.Errorf("zero-drag speed = %v, expected base speed %v", got, cfg.BaseSpeed)
	}
	if p.Vel.X <= 0 || p.Vel.Y >= 0 {
		t.Errorf("zero-drag default direction should be up-right, got %+v", p.Vel)
	}
}

func TestLaunchOppositeDrag(t *testing.T) {
	cfg := config.DefaultSiegeConfig().Launch
	cannon := core.Vec2{X: 4, Y: 20}
	aim := core.Vec2{X: 1, Y: 24} // Pull down-left

	p := NewProjectile(cannon, aim, 1, 1.0, cfg)

	if p.Vel.X <= 0 || p.Vel.Y >= 0 {
		t.Errorf("pulling down-left should fire up-right, got velocity %+v", p.Vel)
	}
}

func TestLaunchDragCapped(t *testing.T) {
	cfg := config.DefaultSiegeConfig().Launch
	cannon := core.Vec2{X: 4, Y: 20}
	far := core.Vec2{X: 4 - 500, Y: 20 + 500}

	p := NewProjectile(cannon, far, 1, 1.0, cfg)

	wantSpeed := cfg.BaseSpeed + cfg.MaxDrag*cfg.DragToSpeed
	if got := p.Speed(); math.Abs(got-wantSpeed) > 1e-9 {
		t.Errorf("capped-drag speed = %v, expected %v", got, wantSpeed)
	}
	wantDamage := cfg.BaseDamage + cfg.MaxDrag*cfg.DragToDamage
	if math.Abs(p.Damage-wantDamage) > 1e-9 {
		t.Errorf("capped-drag damage = %v, expected %v", p.Damage, wantDamage)
	}
}

func TestLaunchPowerScaling(t *testing.T) {
	cfg := config.DefaultSiegeConfig().Launch
	cannon := core.Vec2{X: 4, Y: 20}
	aim := core.Vec2{X: 0, Y: 24}

	base := NewProjectile(cannon, aim, 1, 1.0, cfg)
	boosted := NewProjectile(cannon, aim, 1, 2.0, cfg)

	if math.Abs(boosted.Speed()-2*base.Speed()) > 1e-9 {
		t.Errorf("power 2 speed = %v, expected %v", boosted.Speed(), 2*base.Speed())
	}
	if math.Abs(boosted.Damage-2*base.Damage) > 1e-9 {
		t.Errorf("power 2 damage = %v, expected %v", boosted.Damage, 2*base.Damage)
	}
}

func TestLaunchRadiusBand(t *testing.T) {
	cfg := config.DefaultSiegeConfig().Launch
	cannon := core.Vec2{X: 4, Y: 20}
	aim := core.Vec2{X: 0, Y: 24}

	low := NewProjectile(cannon, aim, 1, 1.0, cfg)
	if low.Radius < cfg.MinRadius || low.Radius > cfg.MaxRadius {
		t.Errorf("level 1 radius %v outside [%v, %v]", low.Radius, cfg.MinRadius, cfg.MaxRadius)
	}

	high := NewProjectile(cannon, aim, 1000, 1.0, cfg)
	if high.Radius != cfg.MaxRadius {
		t.Errorf("late-level radius = %v, expected cap %v", high.Radius, cfg.MaxRadius)
	}
	if high.Radius < low.Radius {
		t.Error("radius should not shrink with level")
	}
}
