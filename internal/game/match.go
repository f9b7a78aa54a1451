package game

import (
	"math/rand"

	"github.com/arcadelab/exodus/internal/config"
	"github.com/arcadelab/exodus/internal/core"
)

// Match owns every entity and counter of one in-progress match. All mutation
// happens inside Step; nothing in the package touches shared state. The
// difficulty tier is fixed when the match is created and never changes.
type Match struct {
	cfg  config.MatchConfig
	tier config.Tier
	prof config.TierProfile
	rng  *rand.Rand

	player      PlayerCraft
	projectiles []Projectile
	adversaries []Adversary

	score      int
	lives      int
	hits       int // Sub-counter for the hits damage model
	lastFireMS int64
	tick       int
	over       bool
}

// NewMatch creates a match for the given tier. The tier profile is consulted
// exactly here to size and seed the adversary population. now is the current
// monotonic time in milliseconds; the fire limiter is primed so the first
// shot is accepted immediately.
func NewMatch(cfg config.MatchConfig, tier config.Tier, seed int64, now int64) *Match {
	m := &Match{
		cfg:        cfg,
		tier:       tier,
		prof:       cfg.Difficulty.Profile(tier),
		rng:        rand.New(rand.NewSource(seed)),
		lives:      cfg.Rules.Lives,
		lastFireMS: now - cfg.Bullet.FireDelayMS - 1,
	}

	m.player = PlayerCraft{
		X: (cfg.Area.Width - cfg.Player.Width) / 2,
		Y: cfg.Area.Height - cfg.Player.SpawnBottom,
		W: cfg.Player.Width,
		H: cfg.Player.Height,
	}

	m.adversaries = make([]Adversary, m.prof.Count)
	for i := range m.adversaries {
		a := &m.adversaries[i]
		a.W = cfg.Adversary.Width
		a.H = cfg.Adversary.Height
		a.VX = m.prof.Speed
		if m.rng.Intn(2) == 0 {
			a.VX = -a.VX
		}
		a.respawn(m.rng, cfg.Area.Width, cfg.Adversary.SpawnYMin, cfg.Adversary.SpawnYMax)
	}

	return m
}

// Step advances the match by one tick. The input frame is sampled once and
// held fixed for the whole tick; motion is applied before collision
// detection, and collision resolution is immediate, so later checks in the
// same tick observe the post-resolution state.
func (m *Match) Step(in core.InputFrame, now int64) {
	if m.over {
		return
	}
	m.tick++

	m.updatePlayer(in, now)
	m.updateFire(in, now)
	m.updateProjectiles()
	m.updateAdversaries()
	m.resolveCollisions(now)

	if m.lives <= 0 {
		m.lives = 0
		m.over = true
	}
}

// updatePlayer derives velocity from the held directions and moves the craft.
func (m *Match) updatePlayer(in core.InputFrame, now int64) {
	speed := m.cfg.Player.Speed

	m.player.VX = 0
	m.player.VY = 0
	if in.Has(core.ActionLeft) {
		m.player.VX -= speed
	}
	if in.Has(core.ActionRight) {
		m.player.VX += speed
	}
	if in.Has(core.ActionUp) {
		m.player.VY -= speed
	}
	if in.Has(core.ActionDown) {
		m.player.VY += speed
	}

	m.player.Move(m.cfg.Area.Width, m.cfg.Area.Height)

	// Invulnerability is a wall-clock window, not a tick count
	if m.player.Invulnerable && now-m.player.InvulnSince >= m.cfg.Rules.InvulnMS {
		m.player.Invulnerable = false
	}
}

// updateFire applies the fire-rate limiter and spawns a projectile at the
// muzzle when a shot is accepted.
func (m *Match) updateFire(in core.InputFrame, now int64) {
	if !in.Has(core.ActionFire) {
		return
	}
	if now-m.lastFireMS <= m.cfg.Bullet.FireDelayMS {
		return
	}
	if m.cfg.Rules.Fire == config.FireSingle && len(m.projectiles) > 0 {
		return
	}

	m.lastFireMS = now
	m.projectiles = append(m.projectiles, Projectile{
		X:     m.player.X + m.player.W/2 - m.cfg.Bullet.Width/2,
		Y:     m.player.Y - m.cfg.Bullet.Height,
		W:     m.cfg.Bullet.Width,
		H:     m.cfg.Bullet.Height,
		Speed: m.cfg.Bullet.Speed,
	})
}

// updateProjectiles moves every projectile and culls the ones that left the
// top of the play area.
func (m *Match) updateProjectiles() {
	live := m.projectiles[:0]
	for i := range m.projectiles {
		b := m.projectiles[i]
		b.Move()
		if !b.Gone() {
			live = append(live, b)
		}
	}
	m.projectiles = live
}

// updateAdversaries applies one tick of sweep motion to the whole wave.
func (m *Match) updateAdversaries() {
	for i := range m.adversaries {
		m.adversaries[i].Move(m.cfg.Area.Width, m.prof.Drop)
	}
}

// resolveCollisions runs all pairwise checks and applies outcomes in place.
// The adversary population never shrinks: a destroyed adversary is respawned
// into the same slot within the spawn band.
func (m *Match) resolveCollisions(now int64) {
	for i := range m.adversaries {
		a := &m.adversaries[i]

		for j := range m.projectiles {
			if projectileHits(m.cfg.Rules, &m.projectiles[j], a) {
				// Both are consumed; the adversary no longer exists for
				// further bullet checks this frame.
				m.projectiles = append(m.projectiles[:j], m.projectiles[j+1:]...)
				a.respawn(m.rng, m.cfg.Area.Width, m.cfg.Adversary.SpawnYMin, m.cfg.Adversary.SpawnYMax)
				m.score += m.cfg.Rules.KillPoints
				break
			}
		}

		if adversaryHitsPlayer(a, &m.player) {
			if !m.player.Invulnerable {
				m.registerPlayerHit(now)
				a.respawn(m.rng, m.cfg.Area.Width, m.cfg.Adversary.SpawnYMin, m.cfg.Adversary.SpawnYMax)
			}
			// Hits during the invulnerability window are ignored entirely
		}

		if a.Breached(m.cfg.Area.Height) {
			// Unconditional loss, independent of remaining lives
			m.lives = 0
		}
	}
}

// registerPlayerHit applies the configured damage model and opens the
// invulnerability window. The window is never retriggered while active;
// callers check Invulnerable first.
func (m *Match) registerPlayerHit(now int64) {
	switch m.cfg.Rules.Damage {
	case config.DamageLives:
		m.lives--
	default: // hits sub-counter
		m.hits++
		if m.hits >= m.cfg.Rules.HitsPerLife {
			m.lives--
			m.hits = 0
		}
	}

	m.player.Invulnerable = true
	m.player.InvulnSince = now
}

// Score returns the current match score.
func (m *Match) Score() int {
	return m.score
}

// Lives returns the remaining lives.
func (m *Match) Lives() int {
	return m.lives
}

// Over reports whether the match has ended.
func (m *Match) Over() bool {
	return m.over
}

// Tier returns the difficulty tier the match was started with.
func (m *Match) Tier() config.Tier {
	return m.tier
}
