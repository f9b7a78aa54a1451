package game

import "github.com/arcadelab/exodus/internal/config"

// EntityBox is the position and extent of one entity in simulation units,
// as reported to the rendering collaborator.
type EntityBox struct {
	X, Y float64
	W, H float64
}

// Snapshot is the complete per-tick view of the session: entity boxes for
// drawing plus the HUD scalars and the active state. The renderer draws it
// without feeding anything back.
type Snapshot struct {
	State  State
	Paused bool
	Tier   config.Tier

	Score     int
	HighScore int
	Lives     int
	Hits      int

	Username     string
	Invulnerable bool

	AreaW, AreaH float64
	Player       EntityBox
	Projectiles  []EntityBox
	Adversaries  []EntityBox
}

// Snapshot captures the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:     s.state,
		Paused:    s.paused,
		Tier:      s.tier,
		HighScore: s.highScore,
		Lives:     s.cfg.Rules.Lives,
		Username:  s.username,
		AreaW:     s.cfg.Area.Width,
		AreaH:     s.cfg.Area.Height,
	}

	m := s.match
	if m == nil {
		return snap
	}

	snap.Score = m.score
	snap.Lives = m.lives
	snap.Hits = m.hits
	snap.Invulnerable = m.player.Invulnerable
	snap.Player = EntityBox{X: m.player.X, Y: m.player.Y, W: m.player.W, H: m.player.H}

	snap.Projectiles = make([]EntityBox, len(m.projectiles))
	for i, b := range m.projectiles {
		snap.Projectiles[i] = EntityBox{X: b.X, Y: b.Y, W: b.W, H: b.H}
	}

	snap.Adversaries = make([]EntityBox, len(m.adversaries))
	for i, a := range m.adversaries {
		snap.Adversaries[i] = EntityBox{X: a.X, Y: a.Y, W: a.W, H: a.H}
	}

	return snap
}
