package game

import (
	"github.com/arcadelab/exodus/internal/config"
	"github.com/arcadelab/exodus/internal/core"
)

// projectileHits reports whether a projectile has struck an adversary,
// using the configured detection mode. The radius test measures the
// distance between entity centers; sprites are roughly circular so a
// fixed threshold is a good fit there.
func projectileHits(rules config.RulesConfig, b *Projectile, a *Adversary) bool {
	switch rules.Collision {
	case config.CollisionRadius:
		bx, by := b.Box().Center()
		ax, ay := a.Box().Center()
		return core.Dist(bx, by, ax, ay) < rules.HitRadius
	default:
		return b.Box().Intersects(a.Box())
	}
}

// adversaryHitsPlayer reports whether an adversary has struck the player
// craft. Craft silhouettes are rectangular, so this check always uses
// bounding-box overlap regardless of the projectile mode.
func adversaryHitsPlayer(a *Adversary, p *PlayerCraft) bool {
	return a.Box().Intersects(p.Box())
}
