package siege

// Theme selects the structural motif a level is built from.
type Theme int

const (
	ThemeCastle Theme = iota
	ThemeCity
	ThemeTowers
)

// String returns the theme name.
func (t Theme) String() string {
	switch t {
	case ThemeCastle:
		return "castle"
	case ThemeCity:
		return "city"
	case ThemeTowers:
		return "towers"
	default:
		return "unknown"
	}
}

// Level holds the mutable state of one generated structure.
// Blocks never migrate between levels; dead blocks stay in the slice
// so aggregate statistics keep a stable denominator.
type Level struct {
	Index       int     // 1-based level number
	Theme       Theme   // Structural motif used by the generator
	Power       float64 // Difficulty multiplier for projectile speed and damage
	Blocks      []Block
	TotalBlocks int // Frozen at generation; never changes as blocks die
	ShotsFired  int // Shots fired at this structure
}

// LiveBlocks returns the number of blocks still alive.
func (l *Level) LiveBlocks() int {
	n := 0
	for i := range l.Blocks {
		if l.Blocks[i].Alive {
			n++
		}
	}
	return n
}

// DestroyedBlocks returns the number of blocks destroyed so far.
func (l *Level) DestroyedBlocks() int {
	return l.TotalBlocks - l.LiveBlocks()
}

// DestroyedFraction returns the destroyed share of the structure in [0, 1].
// An empty structure counts as fully destroyed, so a degenerate level
// advances immediately instead of dividing by zero.
func (l *Level) DestroyedFraction() float64 {
	if l.TotalBlocks == 0 {
		return 1
	}
	return 1 - float64(l.LiveBlocks())/float64(l.TotalBlocks)
}
