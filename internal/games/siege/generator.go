package siege

import (
	"github.com/vovakirdan/tui-siege/internal/config"
	"github.com/vovakirdan/tui-siege/internal/core"
)

// Bounds describes the play area the generator and physics operate in,
// in world cells. GroundY is the y-coordinate of the ground surface;
// structures stand on it.
type Bounds struct {
	Width   float64
	Height  float64
	GroundY float64
}

// genParams are the difficulty-derived generation parameters for one level.
type genParams struct {
	power   float64 // speed/damage multiplier
	floors  int     // structure height cap in blocks
	density float64 // probability a candidate grid cell receives a block
	bias    float64 // material draw shift toward tougher materials
	bw, bh  float64 // grid cell size
}

// deriveParams computes clamped difficulty parameters from the level index.
func deriveParams(index int, cfg config.GeneratorConfig) genParams {
	floors := core.Clamp(2+index/2, 3, cfg.MaxFloors)
	return genParams{
		power:   1 + float64(index-1)*cfg.PowerGrowth,
		floors:  floors,
		density: core.ClampF(cfg.DensityBase+float64(index)*cfg.DensityGrowth, cfg.DensityBase, cfg.DensityMax),
		bias:    core.ClampF(float64(index)*cfg.BiasGrowth, 0, cfg.BiasMax),
		bw:      cfg.BlockWidth,
		bh:      cfg.BlockHeight,
	}
}

// gen is the working state of one generation run. It exists to keep the
// RNG draw order explicit: layouts are reproducible because every
// placement decision consults the stream exactly once, in source order.
type gen struct {
	rng    *RNG
	cfg    config.GeneratorConfig
	p      genParams
	bounds Bounds
	baseX  float64 // left edge of the structure region
	blocks []Block
}

// Generate builds the structure for a level index. The same
// (index, seedOffset, bounds, cfg) always yields a bit-identical layout.
func Generate(index int, seedOffset int64, bounds Bounds, cfg config.GeneratorConfig) *Level {
	p := deriveParams(index, cfg)
	g := &gen{
		rng:    NewRNG(LevelSeed(index, seedOffset)),
		cfg:    cfg,
		p:      p,
		bounds: bounds,
		baseX:  bounds.Width * 0.42,
	}

	lvl := &Level{Index: index, Power: p.power}

	// Draw 1: theme selection.
	roll := g.rng.Float()
	switch {
	case roll < cfg.ThemeCastleMax:
		lvl.Theme = ThemeCastle
		g.buildCastle()
	case roll < cfg.ThemeCityMax:
		lvl.Theme = ThemeCity
		g.buildCity()
	default:
		lvl.Theme = ThemeTowers
		g.buildTowers()
	}

	g.scatterDecor()

	lvl.Blocks = g.blocks
	lvl.TotalBlocks = len(lvl.Blocks)
	return lvl
}

// place adds a block at grid position (col, floor). Floor 0 rests on the
// ground. Placements that would leave the play area are dropped.
func (g *gen) place(col, floor int, m Material) {
	x := g.baseX + float64(col)*g.p.bw
	y := g.bounds.GroundY - float64(floor+1)*g.p.bh
	if x+g.p.bw > g.bounds.Width-1 || x < 0 || y < 0 {
		return
	}
	g.blocks = append(g.blocks, NewBlock(x, y, g.p.bw, g.p.bh, m))
}

// rollMaterial draws a material with one RNG consultation. The glass band
// is constant; the remaining probability mass is split by weights that
// shift toward tougher materials as the bias grows.
func (g *gen) rollMaterial() Material {
	r := g.rng.Float()
	if r < g.cfg.GlassChance {
		return MaterialGlass
	}

	bias := g.p.bias
	weights := [...]float64{
		1.6*(1-bias) + 0.2, // wood
		1.0,                // brick
		0.8 + 0.8*bias,     // stone
		0.3 + 1.6*bias,     // metal
	}
	total := 0.0
	for _, w := range weights {
		total += w
	}

	// Rescale the remaining roll into the weighted bands.
	u := (r - g.cfg.GlassChance) / (1 - g.cfg.GlassChance) * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if u < acc {
			return MaterialWood + Material(i)
		}
	}
	return MaterialMetal
}

// rollWeak draws one of the two weakest materials with a single
// consultation; used for bridges, battlements and decoration.
func (g *gen) rollWeak() Material {
	if g.rng.Float() < 0.5 {
		return MaterialGlass
	}
	return MaterialWood
}

// buildCity places several independent buildings at varying offsets.
// Draw order per building: width, height, then one density roll per cell
// (plus a material roll when the cell is populated), then the gap to the
// next building.
func (g *gen) buildCity() {
	buildings := 2 + g.rng.Intn(3)
	col := g.rng.Intn(2)

	for i := 0; i < buildings; i++ {
		wb := 2 + g.rng.Intn(3)
		hb := core.Min(2+g.rng.Intn(g.p.floors), g.p.floors)

		for f := 0; f < hb; f++ {
			for c := 0; c < wb; c++ {
				if g.rng.Float() < g.p.density {
					g.place(col+c, f, g.rollMaterial())
				}
			}
		}

		col += wb + 1 + g.rng.Intn(2)
	}
}

// buildTowers places 2-3 narrow towers joined by a fragile bridge above
// the shortest one.
func (g *gen) buildTowers() {
	towers := 2 + g.rng.Intn(2)
	col := g.rng.Intn(2)

	firstCol := col
	lastCol := col
	minH := g.p.floors

	for i := 0; i < towers; i++ {
		h := core.Min(3+g.rng.Intn(g.p.floors), g.p.floors)
		if h < minH {
			minH = h
		}

		// Towers are two blocks wide.
		for f := 0; f < h; f++ {
			for c := 0; c < 2; c++ {
				if g.rng.Float() < g.p.density {
					g.place(col+c, f, g.rollMaterial())
				}
			}
		}

		lastCol = col + 1
		col += 2 + 2 + g.rng.Intn(2)
	}

	// Bridge of weak blocks above the shortest tower, sparser than the
	// towers themselves.
	for c := firstCol; c <= lastCol; c++ {
		if g.rng.Float() < g.cfg.BridgeDensity {
			g.place(c, minH, g.rollWeak())
		}
	}
}

// buildCastle places a wall capped with the toughest material, flanked by
// two wider towers topped with weak battlements.
func (g *gen) buildCastle() {
	wallH := 2 + g.rng.Intn(2)
	wallW := 6 + g.rng.Intn(5)
	towerH := wallH + 2 + g.rng.Intn(2)

	const towerW = 3
	wallStart := towerW
	rightTower := wallStart + wallW

	// Left and right corner towers.
	for _, base := range [2]int{0, rightTower} {
		for f := 0; f < towerH; f++ {
			for c := 0; c < towerW; c++ {
				if g.rng.Float() < g.p.density {
					g.place(base+c, f, g.rollMaterial())
				}
			}
		}
		// Battlement merlons on every other column.
		for c := 0; c < towerW; c += 2 {
			g.place(base+c, towerH, g.rollWeak())
		}
	}

	// Wall body; the top row is a solid cap of the toughest material.
	for f := 0; f < wallH; f++ {
		for c := 0; c < wallW; c++ {
			if f == wallH-1 {
				g.place(wallStart+c, f, Toughest())
				continue
			}
			if g.rng.Float() < g.p.density {
				g.place(wallStart+c, f, g.rollMaterial())
			}
		}
	}
}

// scatterDecor adds a few floating weak blocks above the structure.
// Purely cosmetic mass; each candidate is included independently.
func (g *gen) scatterDecor() {
	regionW := g.bounds.Width - g.baseX - g.p.bw - 1
	if regionW <= 0 {
		return
	}

	top := g.bounds.GroundY - float64(g.p.floors+2)*g.p.bh

	for i := 0; i < g.cfg.DecorCandidates; i++ {
		if g.rng.Float() >= g.cfg.DecorChance {
			continue
		}
		x := g.baseX + g.rng.Float()*regionW
		y := top - g.rng.Float()*3*g.p.bh
		m := g.rollWeak()
		if y < 1 {
			y = 1
		}
		g.blocks = append(g.blocks, NewBlock(x, y, g.p.bw, g.p.bh, m))
	}
}
