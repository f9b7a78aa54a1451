package config

import (
	_ "embed"
)

//go:embed defaults/exodus.yaml
var defaultYAML []byte

// Default returns the built-in match configuration. It matches the embedded
// defaults/exodus.yaml and serves as the last-resort fallback if the embed
// itself fails to parse.
func Default() MatchConfig {
	return MatchConfig{
		Area: AreaConfig{
			Width:  1920,
			Height: 1080,
		},
		Player: PlayerConfig{
			Width:       60,
			Height:      60,
			Speed:       5,
			SpawnBottom: 150,
		},
		Bullet: BulletConfig{
			Width:       20,
			Height:      40,
			Speed:       70,
			FireDelayMS: 50,
		},
		Adversary: AdversaryConfig{
			Width:     60,
			Height:    60,
			SpawnYMin: 50,
			SpawnYMax: 300,
		},
		Rules: RulesConfig{
			Collision:   CollisionRadius,
			HitRadius:   40,
			Fire:        FireMulti,
			KillPoints:  10,
			Damage:      DamageHits,
			HitsPerLife: 3,
			InvulnMS:    1000,
			Lives:       3,
		},
		Difficulty: DifficultyConfig{
			Tiers: map[Tier]TierProfile{
				TierEasy:   {Count: 25, Speed: 4, Drop: 40},
				TierMedium: {Count: 40, Speed: 6, Drop: 60},
				TierHard:   {Count: 60, Speed: 8, Drop: 80},
			},
		},
	}
}
