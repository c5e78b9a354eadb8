// Package config provides YAML-based game configuration loading and
// difficulty presets for the siege platform.
package config

// SiegeConfig contains all tunable parameters for the siege game.
type SiegeConfig struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Launch    LaunchConfig    `yaml:"launch"`
	Generator GeneratorConfig `yaml:"generator"`
	Gameplay  GameplayConfig  `yaml:"gameplay"`
}

// PhysicsConfig defines the projectile integration and collision response.
// Distances are in screen cells, times in seconds.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`              // Downward acceleration (cells/s^2)
	AirDrag            float64 `yaml:"air_drag"`             // Per-step multiplicative velocity damping
	MaxStep            float64 `yaml:"max_step"`             // Upper bound on a single dt (s)
	GroundRestitution  float64 `yaml:"ground_restitution"`   // Vertical bounce retention on ground hit
	GroundFriction     float64 `yaml:"ground_friction"`      // Horizontal damping on ground hit
	RestSpeed          float64 `yaml:"rest_speed"`           // Below this per-axis speed the projectile rests
	BoundsMargin       float64 `yaml:"bounds_margin"`        // Out-of-bounds margin around the play area
	BounceDamping      float64 `yaml:"bounce_damping"`       // Reflected-axis retention on block hit
	ImpactDamping      float64 `yaml:"impact_damping"`       // Uniform damping applied on block hit
	BaseDamageFraction float64 `yaml:"base_damage_fraction"` // Damage fraction dealt regardless of speed
	SpeedNormalizer    float64 `yaml:"speed_normalizer"`     // Impact speed yielding the full bonus
	MaxSpeedBonus      float64 `yaml:"max_speed_bonus"`      // Cap on the speed-scaled damage bonus
}

// LaunchConfig defines how a slingshot drag becomes a projectile.
type LaunchConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`     // Speed with a zero-length drag
	DragToSpeed  float64 `yaml:"drag_to_speed"`  // Extra speed per cell of drag
	BaseDamage   float64 `yaml:"base_damage"`    // Damage potential with a zero-length drag
	DragToDamage float64 `yaml:"drag_to_damage"` // Extra damage per cell of drag
	MaxDrag      float64 `yaml:"max_drag"`       // Drag distance cap
	MinRadius    float64 `yaml:"min_radius"`     // Projectile radius floor
	MaxRadius    float64 `yaml:"max_radius"`     // Projectile radius ceiling
	RadiusGrowth float64 `yaml:"radius_growth"`  // Radius gained per level
}

// GeneratorConfig defines the procedural structure generator.
type GeneratorConfig struct {
	PowerGrowth      float64 `yaml:"power_growth"`      // Power multiplier gained per level
	AdvanceThreshold float64 `yaml:"advance_threshold"` // Destroyed fraction that clears a level
	ThemeCastleMax   float64 `yaml:"theme_castle_max"`  // Theme roll below this picks castle
	ThemeCityMax     float64 `yaml:"theme_city_max"`    // Theme roll below this (and above castle) picks city
	BlockWidth       float64 `yaml:"block_width"`       // Grid cell width (screen cells)
	BlockHeight      float64 `yaml:"block_height"`      // Grid cell height (screen cells)
	MaxFloors        int     `yaml:"max_floors"`        // Cap on structure height in blocks
	DensityBase      float64 `yaml:"density_base"`      // Placement probability at level 1
	DensityGrowth    float64 `yaml:"density_growth"`    // Placement probability gained per level
	DensityMax       float64 `yaml:"density_max"`       // Placement probability cap
	BridgeDensity    float64 `yaml:"bridge_density"`    // Sparser placement probability for tower bridges
	GlassChance      float64 `yaml:"glass_chance"`      // Constant glass band of the material draw
	BiasGrowth       float64 `yaml:"bias_growth"`       // Toughness bias gained per level
	BiasMax          float64 `yaml:"bias_max"`          // Toughness bias cap
	DecorCandidates  int     `yaml:"decor_candidates"`  // Decorative scatter candidate count
	DecorChance      float64 `yaml:"decor_chance"`      // Inclusion probability per decor candidate
}

// GameplayConfig defines the outer game loop around the simulation.
type GameplayConfig struct {
	// ShotLimit ends the run when a level is not cleared within this many
	// shots. 0 disables the limit (endless play).
	ShotLimit int `yaml:"shot_limit"`
	// ScorePerWeight converts a destroyed block's material weight to points.
	ScorePerWeight int `yaml:"score_per_weight"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
