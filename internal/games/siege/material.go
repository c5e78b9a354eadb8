package siege

import "github.com/vovakirdan/tui-siege/internal/core"

// Material identifies a block material. Materials form a fixed catalog
// ordered by strictly increasing toughness.
type Material int

const (
	MaterialGlass Material = iota
	MaterialWood
	MaterialBrick
	MaterialStone
	MaterialMetal

	materialCount
)

// MaterialInfo describes the immutable properties of a material.
type MaterialInfo struct {
	Name        string
	BaseHP      float64    // Hit points a fresh block of this material spawns with
	Color       core.Color // Render color
	ScoreWeight int        // Relative score value when destroyed
}

// materials is the catalog, indexed by Material. BaseHP is strictly
// increasing: glass < wood < brick < stone < metal.
var materials = [materialCount]MaterialInfo{
	{Name: "glass", BaseHP: 30, Color: core.ColorBrightCyan, ScoreWeight: 1},
	{Name: "wood", BaseHP: 90, Color: core.ColorYellow, ScoreWeight: 2},
	{Name: "brick", BaseHP: 150, Color: core.ColorOrange, ScoreWeight: 3},
	{Name: "stone", BaseHP: 240, Color: core.ColorGray, ScoreWeight: 4},
	{Name: "metal", BaseHP: 400, Color: core.ColorBrightWhite, ScoreWeight: 5},
}

// Info returns the catalog entry for the material.
func (m Material) Info() MaterialInfo {
	if m < 0 || m >= materialCount {
		return materials[MaterialGlass]
	}
	return materials[m]
}

// String returns the material name.
func (m Material) String() string {
	return m.Info().Name
}

// Toughest returns the strongest material in the catalog.
func Toughest() Material {
	return materialCount - 1
}
