package siege

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-siege/internal/config"
	"github.com/vovakirdan/tui-siege/internal/core"
	"github.com/vovakirdan/tui-siege/internal/registry"
)

// Visual characters for rendering
const (
	CannonChar     = '▲'
	ProjectileChar = '●'
	AimChar        = '+'
	GroundChar     = '═'
	TrailChar      = '·'
)

// Block glyphs by remaining hit-point fraction.
var damageGlyphs = []rune{'░', '▒', '▓', '█'}

// GameState constants
const (
	StateAiming   = "aiming"   // Waiting for a shot, aim cursor active
	StateFlying   = "flying"   // Projectile in flight
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // Shot budget exhausted
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeStandard GameMode = iota // Difficulty grows with every level
	ModeZen                      // Difficulty frozen at level 1
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the initial level index set via CLI
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the level the game starts at.
func SetStartLevel(level int) {
	startLevel = level
}

// aimStep is how far one key press moves the aim point, in cells.
const aimStep = 1.0

// Game implements the siege game logic on top of the simulation World.
type Game struct {
	mode GameMode

	world *World
	cfg   config.SiegeConfig

	// aim is the pull point offset relative to the cannon. The projectile
	// fires opposite the pull (slingshot).
	aim core.Vec2

	state           string
	score           int
	shotsTotal      int
	blocksDestroyed int

	runtime        core.RuntimeConfig
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
	hudRows        int
}

// New creates a new siege game instance (standard mode).
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewZen creates a new siege game instance with frozen difficulty.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "siege_zen"
	}
	return "siege"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Siege (Zen)"
	}
	return "Siege"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSiege(configPath)
	if err != nil {
		cfg = config.DefaultSiegeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySiegePreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeZen {
		config.ApplySiegePreset(&cfg, config.DifficultyFixed)
	}
	g.cfg = cfg

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.hudRows = 2
	bounds := Bounds{
		Width:   float64(runtime.ScreenW),
		Height:  float64(runtime.ScreenH),
		GroundY: float64(runtime.ScreenH - 2),
	}

	level := 1
	if startLevel > 1 {
		level = startLevel
	}

	g.world = NewWorld(cfg, bounds, runtime.Seed, level)
	g.aim = core.Vec2{X: -7, Y: 5} // Pull down-left: first shot arcs up-right
	g.score = 0
	g.shotsTotal = 0
	g.blocksDestroyed = 0
	g.state = StateAiming
}

// Step advances the game by dt seconds of wall-clock time.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart: full reset after game over, otherwise regenerate
	// the current level from its seed (identical layout).
	if in.Has(core.ActionRestart) {
		if g.state == StateGameOver {
			g.Reset(g.runtime)
		} else {
			g.world.Restart()
			g.state = StateAiming
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StateAiming
			if !g.world.CanFire() {
				g.state = StateFlying
			}
		case StateAiming, StateFlying:
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver {
		return core.StepResult{State: g.State()}
	}

	g.updateAim(in)

	if in.Has(core.ActionFire) && g.world.CanFire() {
		cannon := g.world.Cannon()
		if g.world.Fire(cannon, cannon.Add(g.aim)) {
			g.shotsTotal++
			g.state = StateFlying
		}
	}

	ev := g.world.Step(dt)

	for _, m := range ev.Destroyed {
		g.score += m.Info().ScoreWeight * g.cfg.Gameplay.ScorePerWeight
		g.blocksDestroyed++
	}

	if ev.Advanced {
		g.state = StateAiming
	} else if ev.Settled {
		g.state = StateAiming
		g.checkShotBudget()
	}

	return core.StepResult{State: g.State()}
}

// updateAim moves the pull point, keeping the drag within the slingshot's
// reach so the HUD matches what a fire would actually use.
func (g *Game) updateAim(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.aim.X -= aimStep
	}
	if in.Has(core.ActionRight) {
		g.aim.X += aimStep
	}
	if in.Has(core.ActionUp) {
		g.aim.Y -= aimStep
	}
	if in.Has(core.ActionDown) {
		g.aim.Y += aimStep
	}

	maxDrag := g.cfg.Launch.MaxDrag
	g.aim.X = core.ClampF(g.aim.X, -maxDrag, maxDrag)
	g.aim.Y = core.ClampF(g.aim.Y, -maxDrag, maxDrag)
}

// checkShotBudget ends the run when a level was not cleared within the
// configured number of shots. A zero limit means endless play.
func (g *Game) checkShotBudget() {
	limit := g.cfg.Gameplay.ShotLimit
	if limit > 0 && g.world.Level().ShotsFired >= limit {
		g.state = StateGameOver
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderGround(dst)
	g.renderBlocks(dst)
	g.renderCannon(dst)
	g.renderProjectile(dst)
	g.renderOverlay(dst)
}

// renderHUD draws level, shot and destruction statistics.
func (g *Game) renderHUD(dst *core.Screen) {
	lvl := g.world.Level()

	left := fmt.Sprintf("Level: %d (%s)", lvl.Index, lvl.Theme)
	dst.DrawText(1, 0, left)

	mid := fmt.Sprintf("Shots: %d", lvl.ShotsFired)
	if limit := g.cfg.Gameplay.ShotLimit; limit > 0 {
		mid = fmt.Sprintf("Shots: %d/%d", lvl.ShotsFired, limit)
	}
	dst.DrawTextCentered(0, mid)

	right := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	destroyed := fmt.Sprintf("Destroyed: %3.0f%%  Power: x%.2f", g.world.Level().DestroyedFraction()*100, lvl.Power)
	dst.DrawText(1, 1, destroyed)
}

// renderGround draws the ground line.
func (g *Game) renderGround(dst *core.Screen) {
	y := int(g.world.Bounds().GroundY)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, y, GroundChar, core.ColorGreen)
	}
}

// renderBlocks draws all live blocks, shaded by remaining hit points.
func (g *Game) renderBlocks(dst *core.Screen) {
	for i := range g.world.Level().Blocks {
		b := &g.world.Level().Blocks[i]
		if !b.Alive {
			continue
		}

		glyph := damageGlyph(b)
		color := b.Material.Info().Color

		x0, y0 := int(b.X), int(b.Y)
		x1, y1 := int(math.Ceil(b.Right()))-1, int(math.Ceil(b.Bottom()))-1
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
}

// damageGlyph picks a block fill by remaining hp fraction.
func damageGlyph(b *Block) rune {
	frac := b.HP / b.MaxHP
	idx := int(frac * float64(len(damageGlyphs)))
	if idx >= len(damageGlyphs) {
		idx = len(damageGlyphs) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return damageGlyphs[idx]
}

// renderCannon draws the cannon and, while aiming, the pull cursor with a
// short trail showing the launch direction.
func (g *Game) renderCannon(dst *core.Screen) {
	cannon := g.world.Cannon()
	dst.SetColored(int(cannon.X), int(cannon.Y), CannonChar, core.ColorBrightYellow)

	if g.state != StateAiming {
		return
	}

	pull := cannon.Add(g.aim)
	dst.SetColored(int(pull.X), int(pull.Y), AimChar, core.ColorBrightRed)

	// Launch direction is opposite the pull.
	dir := g.aim.Scale(-1).Norm()
	for i := 1; i <= 3; i++ {
		p := cannon.Add(dir.Scale(float64(i * 2)))
		dst.SetColored(int(p.X), int(p.Y), TrailChar, core.ColorGray)
	}
}

// renderProjectile draws the projectile, including a settled one.
func (g *Game) renderProjectile(dst *core.Screen) {
	p := g.world.LastProjectile()
	if p == nil {
		return
	}
	if g.world.Phase() == PhaseOutOfBounds {
		return
	}
	dst.SetColored(int(p.Pos.X), int(p.Pos.Y), ProjectileChar, core.ColorBrightRed)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateAiming:
		dst.DrawTextCentered(dst.Height()-1, "Arrows: pull  SPACE: fire  R: rebuild level")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// RunStats returns cumulative run totals across level advances, for
// persistence alongside the score.
func (g *Game) RunStats() (shots, blocksDestroyed int) {
	return g.shotsTotal, g.blocksDestroyed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.world.Level().Index,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("siege", func() registry.Game {
		return New()
	})
	registry.Register("siege_zen", func() registry.Game {
		return NewZen()
	})
}
