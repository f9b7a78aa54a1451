// Package config provides YAML-based match configuration loading and the
// difficulty tier table for the exodus shooter.
package config

import "fmt"

// MatchConfig contains all tunable parameters for a match.
// The simulation runs in an abstract unit space defined by Area; the
// platform layer scales positions to terminal cells at draw time.
type MatchConfig struct {
	Area       AreaConfig       `yaml:"area"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Adversary  AdversaryConfig  `yaml:"adversary"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AreaConfig defines the play-area dimensions in simulation units.
type AreaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player craft parameters.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`        // Units per tick while a direction is held
	SpawnBottom float64 `yaml:"spawn_bottom"` // Spawn offset from the bottom edge
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`         // Units per tick, upward
	FireDelayMS int64   `yaml:"fire_delay_ms"` // Minimum interval between accepted shots
}

// AdversaryConfig defines adversary parameters shared by all tiers.
type AdversaryConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Respawned adversaries are placed at a random x and a random y within
	// [SpawnYMin, SpawnYMax], the spawn band near the top of the area.
	SpawnYMin float64 `yaml:"spawn_y_min"`
	SpawnYMax float64 `yaml:"spawn_y_max"`
}

// CollisionMode selects the adversary-projectile hit test.
// Adversary-player checks always use rectangle overlap.
type CollisionMode string

const (
	CollisionRect   CollisionMode = "rect"   // Axis-aligned bounding-box overlap
	CollisionRadius CollisionMode = "radius" // Euclidean distance between reference points
)

// FirePolicy selects how many projectiles may be in flight.
type FirePolicy string

const (
	FireMulti  FirePolicy = "multi"  // Unbounded projectile list
	FireSingle FirePolicy = "single" // At most one projectile in flight
)

// DamageModel selects how adversary-player hits consume lives.
type DamageModel string

const (
	DamageHits  DamageModel = "hits"  // HitsPerLife hits cost one life
	DamageLives DamageModel = "lives" // Every hit costs one life directly
)

// RulesConfig encodes the divergent gameplay policies as explicit
// configuration rather than silently merging them.
type RulesConfig struct {
	Collision   CollisionMode `yaml:"collision"`     // Adversary-projectile test
	HitRadius   float64       `yaml:"hit_radius"`    // Threshold for radius mode
	Fire        FirePolicy    `yaml:"fire"`          //
	KillPoints  int           `yaml:"kill_points"`   // Score per destroyed adversary
	Damage      DamageModel   `yaml:"damage"`        //
	HitsPerLife int           `yaml:"hits_per_life"` // Used when Damage == hits
	InvulnMS    int64         `yaml:"invuln_ms"`     // Invulnerability window after a hit
	Lives       int           `yaml:"lives"`         // Starting lives
}

// Validate checks the configuration for values the simulation cannot run with.
func (c MatchConfig) Validate() error {
	if c.Area.Width <= 0 || c.Area.Height <= 0 {
		return fmt.Errorf("config: play area must be positive, got %gx%g", c.Area.Width, c.Area.Height)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("config: player speed must be positive, got %g", c.Player.Speed)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("config: bullet speed must be positive, got %g", c.Bullet.Speed)
	}
	if c.Adversary.SpawnYMin < 0 || c.Adversary.SpawnYMax <= c.Adversary.SpawnYMin ||
		c.Adversary.SpawnYMax >= c.Area.Height {
		return fmt.Errorf("config: spawn band [%g, %g] must sit inside the area height %g",
			c.Adversary.SpawnYMin, c.Adversary.SpawnYMax, c.Area.Height)
	}
	if c.Rules.Lives <= 0 {
		return fmt.Errorf("config: lives must be positive, got %d", c.Rules.Lives)
	}
	if c.Rules.Damage == DamageHits && c.Rules.HitsPerLife <= 0 {
		return fmt.Errorf("config: hits_per_life must be positive, got %d", c.Rules.HitsPerLife)
	}
	if c.Rules.Collision == CollisionRadius && c.Rules.HitRadius <= 0 {
		return fmt.Errorf("config: hit_radius must be positive, got %g", c.Rules.HitRadius)
	}
	switch c.Rules.Collision {
	case CollisionRect, CollisionRadius:
	default:
		return fmt.Errorf("config: unknown collision mode %q", c.Rules.Collision)
	}
	switch c.Rules.Fire {
	case FireMulti, FireSingle:
	default:
		return fmt.Errorf("config: unknown fire policy %q", c.Rules.Fire)
	}
	switch c.Rules.Damage {
	case DamageHits, DamageLives:
	default:
		return fmt.Errorf("config: unknown damage model %q", c.Rules.Damage)
	}
	for _, tier := range AllTiers() {
		p, ok := c.Difficulty.Tiers[tier]
		if !ok {
			return fmt.Errorf("config: difficulty tier %q missing", tier)
		}
		if p.Count <= 0 || p.Speed <= 0 || p.Drop <= 0 {
			return fmt.Errorf("config: difficulty tier %q must have positive count/speed/drop", tier)
		}
	}
	return nil
}
