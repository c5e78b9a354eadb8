package siege

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-siege/internal/config"
	"github.com/vovakirdan/tui-siege/internal/core"
)

func TestFireGatedOnLiveProjectile(t *testing.T) {
	w := NewWorld(config.DefaultSiegeConfig(), testBounds(), 0, 1)
	cannon := w.Cannon()
	aim := cannon.Add(core.Vec2{X: -6, Y: 4})

	if !w.Fire(cannon, aim) {
		t.Fatal("first fire should succeed")
	}
	if w.Level().ShotsFired != 1 {
		t.Fatalf("ShotsFired = %d, expected 1", w.Level().ShotsFired)
	}

	// The projectile is alive: firing again must be a silent no-op.
	if w.Fire(cannon, aim) {
		t.Error("fire while a projectile is alive should be rejected")
	}
	if w.Level().ShotsFired != 1 {
		t.Errorf("rejected fire changed ShotsFired to %d", w.Level().ShotsFired)
	}
}

func TestFireAllowedAfterSettle(t *testing.T) {
	w := NewWorld(config.DefaultSiegeConfig(), testBounds(), 0, 1)
	cannon := w.Cannon()

	w.Fire(cannon, cannon.Add(core.Vec2{X: -6, Y: 4}))

	for i := 0; i < 5000 && !w.CanFire(); i++ {
		w.Step(1.0 / 60.0)
	}
	if !w.CanFire() {
		t.Fatal("projectile never settled")
	}

	if !w.Fire(cannon, cannon.Add(core.Vec2{X: -6, Y: 4})) {
		t.Error("fire after settle should succeed")
	}
}

func TestRestartRegeneratesIdenticalLayout(t *testing.T) {
	w := NewWorld(config.DefaultSiegeConfig(), testBounds(), 77, 3)

	original := make([]Block, len(w.Level().Blocks))
	copy(original, w.Level().Blocks)

	// Mangle the level, then restart.
	w.Level().Blocks[0].Damage(1e9)
	w.Fire(w.Cannon(), w.Cannon().Add(core.Vec2{X: -6, Y: 4}))
	w.Restart()

	if !reflect.DeepEqual(w.Level().Blocks, original) {
		t.Error("restart should rebuild the exact same layout")
	}
	if w.Level().ShotsFired != 0 {
		t.Errorf("restart should reset the shot counter, got %d", w.Level().ShotsFired)
	}
	if w.Projectile() != nil || w.Phase() != PhaseNone {
		t.Error("restart should discard the live projectile")
	}
}

func TestEmptyLevelAdvancesImmediately(t *testing.T) {
	w := worldWithBlocks(nil)

	ev := w.Step(0.01)

	if !ev.Advanced {
		t.Fatal("a level with zero blocks should advance on the first step")
	}
	if w.Level().Index != 2 {
		t.Errorf("level index = %d, expected 2", w.Level().Index)
	}
	if w.Level().TotalBlocks == 0 {
		t.Error("regenerated level should have blocks")
	}
}

func TestAdvanceIncrementsExactlyOne(t *testing.T) {
	cfg := config.DefaultSiegeConfig()
	w := NewWorld(cfg, testBounds(), 0, 5)

	// Flatten the whole structure by hand, then step once.
	for i := range w.Level().Blocks {
		w.Level().Blocks[i].Damage(1e9)
	}
	ev := w.Step(0.01)

	if !ev.Advanced {
		t.Fatal("fully destroyed level should advance")
	}
	if w.Level().Index != 6 {
		t.Errorf("level index = %d, expected 6", w.Level().Index)
	}

	// The fresh level matches an independent generation of the same index.
	want := Generate(6, 0, testBounds(), cfg.Generator)
	if !reflect.DeepEqual(w.Level().Blocks, want.Blocks) {
		t.Error("advanced level does not match its seeded generation")
	}
}

func TestStartLevelFloor(t *testing.T) {
	w := NewWorld(config.DefaultSiegeConfig(), testBounds(), 0, -3)

	if w.Level().Index != 1 {
		t.Errorf("level index = %d, expected floor at 1", w.Level().Index)
	}
}
