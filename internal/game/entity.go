// Package game contains the exodus simulation core: entity motion, collision
// resolution, the per-tick match loop and the session state machine. It has
// no rendering or terminal dependencies so the whole simulation is testable
// headless.
package game

import (
	"math/rand"

	"github.com/arcadelab/exodus/internal/core"
)

// PlayerCraft is the player-controlled ship. Velocity is a discrete step per
// axis, set from held direction input each tick; there is no acceleration.
type PlayerCraft struct {
	X, Y         float64
	VX, VY       float64
	W, H         float64
	Invulnerable bool
	InvulnSince  int64 // Timestamp (ms) the current invulnerability window started
}

// Box returns the craft's bounding box.
func (p *PlayerCraft) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Move applies one tick of motion and clamps the craft to the play area.
func (p *PlayerCraft) Move(areaW, areaH float64) {
	p.X += p.VX
	p.Y += p.VY
	p.X = core.ClampF(p.X, 0, areaW-p.W)
	p.Y = core.ClampF(p.Y, 0, areaH-p.H)
}

// Projectile is a fired bullet moving straight up.
type Projectile struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Units per tick, subtracted from Y
}

// Box returns the projectile's bounding box.
func (b *Projectile) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Move advances the projectile one tick toward the top of the area.
func (b *Projectile) Move() {
	b.Y -= b.Speed
}

// Gone reports whether the projectile has crossed the top boundary and
// should be culled.
func (b *Projectile) Gone() bool {
	return b.Y <= 0
}

// Adversary is one member of the sweeping wave. It moves horizontally at a
// fixed tier speed, bounces at the play-area edges and descends by the tier
// drop step on each bounce.
type Adversary struct {
	X, Y float64
	VX   float64 // Signed; magnitude fixed by the difficulty tier
	W, H float64
}

// Box returns the adversary's bounding box.
func (a *Adversary) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.W, a.H)
}

// Move applies one tick of sweep motion: horizontal step, then bounce and
// drop when an edge is reached.
func (a *Adversary) Move(areaW, drop float64) {
	a.X += a.VX
	if a.X <= 0 || a.X+a.W >= areaW {
		a.VX = -a.VX
		a.Y += drop
	}
}

// Breached reports whether the adversary has descended past the play-area
// bottom. This is an unconditional match-loss condition.
func (a *Adversary) Breached(areaH float64) bool {
	return a.Y > areaH
}

// respawn places the adversary at a new random x and a random y inside the
// spawn band. The horizontal direction is preserved.
func (a *Adversary) respawn(rng *rand.Rand, areaW, bandMin, bandMax float64) {
	a.X = rng.Float64() * (areaW - a.W)
	a.Y = bandMin + rng.Float64()*(bandMax-bandMin)
}
