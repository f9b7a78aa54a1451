package config

// Tier is a named difficulty level, chosen once per match on the start screen.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// AllTiers returns the tiers in menu order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierMedium, TierHard}
}

// Title returns a display name for the tier.
func (t Tier) Title() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	default:
		return string(t)
	}
}

// Valid reports whether the tier is one of the known levels.
func (t Tier) Valid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

// TierProfile is the static per-tier adversary profile. It is consulted
// exactly once, when a match starts; difficulty never changes mid-match.
type TierProfile struct {
	Count int     `yaml:"count"` // Adversary population, constant for the match
	Speed float64 `yaml:"speed"` // Horizontal sweep speed magnitude
	Drop  float64 `yaml:"drop"`  // Vertical descent applied on each edge bounce
}

// DifficultyConfig holds the tier table.
type DifficultyConfig struct {
	Tiers map[Tier]TierProfile `yaml:"tiers"`
}

// Profile returns the profile for a tier, falling back to Medium for
// unknown tiers so a stale config cannot stall match start.
func (d DifficultyConfig) Profile(t Tier) TierProfile {
	if p, ok := d.Tiers[t]; ok {
		return p
	}
	return d.Tiers[TierMedium]
}
