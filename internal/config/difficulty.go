package config

// ApplySiegePreset modifies the config based on a difficulty preset.
// Presets shift the two real difficulty knobs: how fast the power
// multiplier grows and how much of a structure must fall to advance.
func ApplySiegePreset(cfg *SiegeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generator.PowerGrowth = 0.10
		cfg.Generator.AdvanceThreshold = 0.75
		cfg.Generator.BiasGrowth = 0.03
	case DifficultyNormal:
		// Defaults already describe normal play.
	case DifficultyHard:
		cfg.Generator.PowerGrowth = 0.20
		cfg.Generator.AdvanceThreshold = 0.92
		cfg.Generator.BiasGrowth = 0.08
	case DifficultyFixed:
		// No progression: every level plays like the first.
		cfg.Generator.PowerGrowth = 0
		cfg.Generator.BiasGrowth = 0
		cfg.Generator.DensityGrowth = 0
	}
}

// ParsePreset maps a CLI string to a difficulty preset.
// Unknown values return the empty preset (config defaults untouched).
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}
