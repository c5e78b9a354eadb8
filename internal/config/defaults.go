package config

import (
	_ "embed"
)

//go:embed defaults/siege.yaml
var defaultSiegeYAML []byte

// DefaultSiegeConfig returns the hardcoded default siege configuration.
// Used as the last-resort fallback when the embedded YAML cannot be parsed.
func DefaultSiegeConfig() SiegeConfig {
	return SiegeConfig{
		Physics: PhysicsConfig{
			Gravity:            28.0,
			AirDrag:            0.998,
			MaxStep:            0.0333,
			GroundRestitution:  0.45,
			GroundFriction:     0.72,
			RestSpeed:          0.9,
			BoundsMargin:       30.0,
			BounceDamping:      0.62,
			ImpactDamping:      0.9,
			BaseDamageFraction: 0.4,
			SpeedNormalizer:    40.0,
			MaxSpeedBonus:      0.6,
		},
		Launch: LaunchConfig{
			BaseSpeed:    16.0,
			DragToSpeed:  1.8,
			BaseDamage:   40.0,
			DragToDamage: 5.0,
			MaxDrag:      14.0,
			MinRadius:    0.6,
			MaxRadius:    1.4,
			RadiusGrowth: 0.04,
		},
		Generator: GeneratorConfig{
			PowerGrowth:      0.15,
			AdvanceThreshold: 0.85,
			ThemeCastleMax:   0.34,
			ThemeCityMax:     0.67,
			BlockWidth:       4.0,
			BlockHeight:      2.0,
			MaxFloors:        7,
			DensityBase:      0.6,
			DensityGrowth:    0.025,
			DensityMax:       0.9,
			BridgeDensity:    0.65,
			GlassChance:      0.12,
			BiasGrowth:       0.05,
			BiasMax:          0.6,
			DecorCandidates:  5,
			DecorChance:      0.35,
		},
		Gameplay: GameplayConfig{
			ShotLimit:      0,
			ScorePerWeight: 10,
		},
	}
}
