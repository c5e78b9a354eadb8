package siege

import "math"

// Snapshot contains the complete simulation state for determinism tests
// and diagnostics. Uses primitive types only for stable hashing.
type Snapshot struct {
	LevelIndex  int
	Theme       int
	Power       uint64 // Float64bits
	ShotsFired  int
	TotalBlocks int
	Score       int
	State       string
	Phase       int

	// Block states, 7 values per block:
	// X, Y, W, H, HP (Float64bits), material, alive.
	BlockData []uint64

	// Projectile state, 8 values when present:
	// posX, posY, velX, velY, radius, damage, traveled (Float64bits), alive.
	ProjData []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	lvl := g.world.Level()

	blockData := make([]uint64, 0, len(lvl.Blocks)*7)
	for i := range lvl.Blocks {
		b := &lvl.Blocks[i]
		alive := uint64(0)
		if b.Alive {
			alive = 1
		}
		blockData = append(blockData,
			math.Float64bits(b.X),
			math.Float64bits(b.Y),
			math.Float64bits(b.W),
			math.Float64bits(b.H),
			math.Float64bits(b.HP),
			uint64(b.Material), //#nosec G115 -- small enum
			alive,
		)
	}

	var projData []uint64
	if p := g.world.LastProjectile(); p != nil {
		alive := uint64(0)
		if p.Alive {
			alive = 1
		}
		projData = []uint64{
			math.Float64bits(p.Pos.X),
			math.Float64bits(p.Pos.Y),
			math.Float64bits(p.Vel.X),
			math.Float64bits(p.Vel.Y),
			math.Float64bits(p.Radius),
			math.Float64bits(p.Damage),
			math.Float64bits(p.Traveled),
			alive,
		}
	}

	return Snapshot{
		LevelIndex:  lvl.Index,
		Theme:       int(lvl.Theme),
		Power:       math.Float64bits(lvl.Power),
		ShotsFired:  lvl.ShotsFired,
		TotalBlocks: lvl.TotalBlocks,
		Score:       g.score,
		State:       g.state,
		Phase:       int(g.world.Phase()),
		BlockData:   blockData,
		ProjData:    projData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Theme)       //#nosec G115 -- hash computation
	h = h*31 + snap.Power
	h = h*31 + uint64(snap.ShotsFired)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TotalBlocks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)       //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}
	for _, v := range snap.BlockData {
		h = h*31 + v
	}
	for _, v := range snap.ProjData {
		h = h*31 + v
	}

	return h
}
