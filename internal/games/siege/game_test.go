package siege

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-siege/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 0}
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestGameDeterminism(t *testing.T) {
	script := []core.InputFrame{
		frame(core.ActionLeft),
		frame(core.ActionDown),
		frame(core.ActionFire),
	}
	for i := 0; i < 300; i++ {
		script = append(script, frame())
	}
	script = append(script, frame(core.ActionFire))
	for i := 0; i < 300; i++ {
		script = append(script, frame())
	}

	run := func() []uint64 {
		g := New()
		g.Reset(testRuntime())

		hashes := make([]uint64, 0, len(script))
		for _, in := range script {
			g.Step(in, 1.0/60.0)
			snap := g.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at step %d: %x vs %x", i, a[i], b[i])
		}
	}
}

func TestGameSeedOffsetChangesRun(t *testing.T) {
	hashAt := func(seed int64) uint64 {
		g := New()
		rt := testRuntime()
		rt.Seed = seed
		g.Reset(rt)
		snap := g.Snapshot()
		return snap.Hash()
	}

	if hashAt(0) == hashAt(424242) {
		t.Error("different runtime seeds should generate different initial levels")
	}
}

func TestGameFireTransitionsToFlying(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if g.state != StateAiming {
		t.Fatalf("initial state = %q, expected aiming", g.state)
	}

	g.Step(frame(core.ActionFire), 1.0/60.0)

	if g.state != StateFlying {
		t.Errorf("state after fire = %q, expected flying", g.state)
	}
	if g.world.Level().ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, expected 1", g.world.Level().ShotsFired)
	}

	// Firing again while the shot is live does nothing.
	g.Step(frame(core.ActionFire), 1.0/60.0)
	if g.world.Level().ShotsFired != 1 {
		t.Errorf("fire during flight changed ShotsFired to %d", g.world.Level().ShotsFired)
	}
}

func TestGameAimClamped(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	in := frame(core.ActionLeft)
	for i := 0; i < 100; i++ {
		g.Step(in, 1.0/60.0)
	}

	maxDrag := g.cfg.Launch.MaxDrag
	if g.aim.X != -maxDrag {
		t.Errorf("aim.X = %v, expected clamp at %v", g.aim.X, -maxDrag)
	}
}

func TestGameScoresDestroyedBlocks(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	// Swap in a single wood block with a lethal projectile already in
	// flight, then let one step resolve the hit.
	lvl := &Level{Index: 1, Theme: ThemeCastle, Power: 1, Blocks: []Block{
		NewBlock(30, 18, 4, 2, MaterialWood),
	}}
	lvl.TotalBlocks = 1
	g.world.level = lvl
	g.world.injectProjectile(
		core.Vec2{X: 32, Y: 17.2},
		core.Vec2{X: 0, Y: 30},
		0.8, 500,
	)
	g.state = StateFlying

	g.Step(frame(), 0.01)

	want := MaterialWood.Info().ScoreWeight * g.cfg.Gameplay.ScorePerWeight
	if g.score != want {
		t.Errorf("score = %d, expected %d", g.score, want)
	}
	if g.state != StateAiming {
		t.Errorf("state after level advance = %q, expected aiming", g.state)
	}
	if g.world.Level().Index != 2 {
		t.Errorf("level = %d, expected 2", g.world.Level().Index)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frame(core.ActionFire), 1.0/60.0)

	g.Step(frame(core.ActionPause), 1.0/60.0)
	if !g.State().Paused {
		t.Fatal("pause action should pause the game")
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(frame(), 1.0/60.0)
	}
	after := g.Snapshot()

	if beforeHash, afterHash := before.Hash(), after.Hash(); beforeHash != afterHash {
		t.Error("simulation advanced while paused")
	}

	g.Step(frame(core.ActionPause), 1.0/60.0)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
	if g.state != StateFlying {
		t.Errorf("resume with a live projectile should return to flying, got %q", g.state)
	}
}

func TestGameRestartRebuildsSameLevel(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	original := make([]Block, len(g.world.Level().Blocks))
	copy(original, g.world.Level().Blocks)

	g.Step(frame(core.ActionFire), 1.0/60.0)
	for i := 0; i < 60; i++ {
		g.Step(frame(), 1.0/60.0)
	}

	g.Step(frame(core.ActionRestart), 1.0/60.0)

	if g.state != StateAiming {
		t.Errorf("state after restart = %q, expected aiming", g.state)
	}
	if len(g.world.Level().Blocks) != len(original) {
		t.Fatal("restart changed the block count")
	}
	for i := range original {
		if g.world.Level().Blocks[i] != original[i] {
			t.Fatalf("restart block %d differs from the seeded layout", i)
		}
	}
}

func TestGameShotBudget(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.cfg.Gameplay.ShotLimit = 1
	g.world.level.ShotsFired = 1

	// A projectile about to rest with the budget already spent: settling
	// should end the run.
	g.world.injectProjectile(
		core.Vec2{X: 60, Y: g.world.bounds.GroundY - 0.7},
		core.Vec2{X: 0.1, Y: 0.1},
		0.8, 50,
	)
	g.state = StateFlying

	g.Step(frame(), 0.02)

	if g.state != StateGameOver {
		t.Fatalf("state = %q, expected gameover after spending the shot budget", g.state)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should report true")
	}

	// While over, simulation input is ignored.
	g.Step(frame(core.ActionFire), 0.02)
	if g.world.Level().ShotsFired != 1 {
		t.Error("fire accepted after game over")
	}

	// Restart after game over performs a full reset.
	g.Step(frame(core.ActionRestart), 0.02)
	if g.state != StateAiming || g.score != 0 || g.world.Level().Index != 1 {
		t.Errorf("restart after game over should fully reset: state=%q score=%d level=%d",
			g.state, g.score, g.world.Level().Index)
	}
}

func TestGameZenModeFreezesDifficulty(t *testing.T) {
	g := NewZen()
	g.Reset(testRuntime())

	if g.cfg.Generator.PowerGrowth != 0 {
		t.Errorf("zen PowerGrowth = %v, expected 0", g.cfg.Generator.PowerGrowth)
	}

	// Even a deep level plays at power 1.
	g.world.level = Generate(20, 0, g.world.bounds, g.cfg.Generator)
	if g.world.Level().Power != 1 {
		t.Errorf("zen level 20 power = %v, expected 1", g.world.Level().Power)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60})

	res := g.Step(frame(core.ActionFire), 1.0/60.0)
	if res.State.GameOver {
		t.Error("small screen should not report game over")
	}

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("small screen should render a size warning")
	}
}

func TestGameRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Level: 1") {
		t.Error("HUD missing level indicator")
	}
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD missing score")
	}
	if !strings.ContainsRune(out, GroundChar) {
		t.Error("ground line not rendered")
	}
	if !strings.ContainsRune(out, CannonChar) {
		t.Error("cannon not rendered")
	}

	g.Step(frame(core.ActionFire), 1.0/60.0)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), ProjectileChar) {
		t.Error("projectile not rendered in flight")
	}
}

func TestGameRegistryIDs(t *testing.T) {
	if New().ID() != "siege" {
		t.Error("standard game ID mismatch")
	}
	if NewZen().ID() != "siege_zen" {
		t.Error("zen game ID mismatch")
	}
	if New().Title() == "" || NewZen().Title() == "" {
		t.Error("games should have display titles")
	}
}
