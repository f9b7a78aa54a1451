package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	med := cfg.Difficulty.Profile(TierMedium)
	if med.Count != 40 || med.Speed != 6 || med.Drop != 60 {
		t.Errorf("medium tier = %+v, expected count 40 speed 6 drop 60", med)
	}
	if cfg.Rules.Fire != FireMulti {
		t.Errorf("default fire policy = %q, expected multi", cfg.Rules.Fire)
	}
}

func TestLoadCustomPathOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exodus.yaml")
	custom := []byte("rules:\n  fire: single\n  kill_points: 1\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rules.Fire != FireSingle {
		t.Errorf("fire = %q, expected single", cfg.Rules.Fire)
	}
	if cfg.Rules.KillPoints != 1 {
		t.Errorf("kill_points = %d, expected 1", cfg.Rules.KillPoints)
	}
	// Untouched sections keep defaults
	if cfg.Area.Width != 1920 {
		t.Errorf("area width = %g, expected default 1920", cfg.Area.Width)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed explicit config")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MatchConfig)
	}{
		{"zero area", func(c *MatchConfig) { c.Area.Width = 0 }},
		{"negative player speed", func(c *MatchConfig) { c.Player.Speed = -1 }},
		{"inverted spawn band", func(c *MatchConfig) { c.Adversary.SpawnYMin = 400; c.Adversary.SpawnYMax = 100 }},
		{"band below area bottom", func(c *MatchConfig) { c.Adversary.SpawnYMax = 2000 }},
		{"zero lives", func(c *MatchConfig) { c.Rules.Lives = 0 }},
		{"unknown collision mode", func(c *MatchConfig) { c.Rules.Collision = "sphere" }},
		{"unknown fire policy", func(c *MatchConfig) { c.Rules.Fire = "burst" }},
		{"unknown damage model", func(c *MatchConfig) { c.Rules.Damage = "shield" }},
		{"hits model without counter", func(c *MatchConfig) { c.Rules.HitsPerLife = 0 }},
		{"missing tier", func(c *MatchConfig) { delete(c.Difficulty.Tiers, TierHard) }},
		{"empty tier", func(c *MatchConfig) { c.Difficulty.Tiers[TierEasy] = TierProfile{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestTierProfileFallback(t *testing.T) {
	cfg := Default()
	got := cfg.Difficulty.Profile(Tier("nightmare"))
	want := cfg.Difficulty.Tiers[TierMedium]
	if got != want {
		t.Errorf("unknown tier profile = %+v, expected medium fallback %+v", got, want)
	}
}
