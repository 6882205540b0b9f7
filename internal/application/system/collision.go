package system

import (
	"math"
	"slices"

	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
)

// contactEpsilon bounds the float error when an actor rests exactly on a
// platform surface
const contactEpsilon = 1e-6

// Side is the face of a platform an actor was pushed out through
type Side int

const (
	SideNone   Side = iota
	SideTop         // resolved from above (standing)
	SideBottom      // resolved from below (ceiling bump)
	SideLeft
	SideRight
)

// Contact summarizes one actor's resolution for the frame
type Contact struct {
	OnGround bool // supported from above by a platform or prop
	Landed   bool // was moving down before a from-above resolution
	OnTop    bool // soft-landed on a prop
}

// CollisionSystem pushes actors out of platforms and reports contacts.
// Platforms are resolved in index order; props are queried after platforms.
type CollisionSystem struct {
	config *config.PhysicsConfig
	broad  *broadPhase

	OnPropLanded    func(target entity.SoftLandingTarget)
	OnPropDeparted  func(target entity.SoftLandingTarget)
	OnProjectileHit func(p *entity.Projectile, platform *entity.Platform)
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(cfg *config.PhysicsConfig) *CollisionSystem {
	return &CollisionSystem{
		config: cfg,
		broad:  newBroadPhase(cfg.Collision.BroadPhaseCell),
	}
}

// SetConfig swaps the tuning (hot reload). The broad phase is rebuilt on
// the next update when the cell size changed.
func (s *CollisionSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
	if cfg.Collision.BroadPhaseCell != s.broad.cellSize {
		s.broad = newBroadPhase(cfg.Collision.BroadPhaseCell)
	}
}

// Update resolves every active actor against the world's platforms and
// returns the player's contact
func (s *CollisionSystem) Update(w *entity.World) Contact {
	s.broad.sync(w)

	var playerContact Contact
	for _, prop := range w.Props {
		prop.BeginFrame()
	}
	if w.Player != nil && w.Player.Active {
		playerContact = s.ResolveBody(w, &w.Player.Body)
		s.resolveProps(w, &playerContact)
	}

	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		s.ResolveBody(w, &e.Body)
	}

	for _, it := range w.Items {
		if !it.Active {
			continue
		}
		s.resolveItem(w, it)
	}

	for _, p := range w.Projectiles {
		if !p.Active || p.Stuck {
			continue
		}
		s.resolveProjectile(w, p)
	}

	return playerContact
}

// ResolveBody pushes b out of every overlapping platform in index order.
// OnGround is recomputed from scratch every call.
func (s *CollisionSystem) ResolveBody(w *entity.World, b *entity.Body) Contact {
	s.broad.sync(w)

	b.OnGround = false
	b.OnWallLeft = false
	b.OnWallRight = false

	var c Contact
	cands := s.broad.query(b.HitRect())
	for i := 0; i < len(cands); i++ {
		idx := cands[i]
		x, y := b.X, b.Y
		side, landed := ResolvePlatform(b, &w.Platforms[idx])
		if b.X != x || b.Y != y {
			// The snap may reach platforms the previous query missed.
			cands = s.broad.query(b.HitRect())
			next, _ := slices.BinarySearch(cands, idx+1)
			i = next - 1
		}
		switch side {
		case SideTop:
			c.OnGround = true
			c.Landed = c.Landed || landed
		case SideLeft:
			b.OnWallRight = true
		case SideRight:
			b.OnWallLeft = true
		}
	}

	b.OnGround = c.OnGround
	return c
}

func (s *CollisionSystem) resolveProps(w *entity.World, c *Contact) {
	b := &w.Player.Body
	for _, prop := range w.Props {
		wasFalling := b.VY > 0
		onTop := ResolveSoftLanding(b, prop, s.config.Collision.SoftLandingTolerance)
		prop.SetPlayerOnTop(onTop)
		if onTop {
			c.OnTop = true
			c.OnGround = true
			c.Landed = c.Landed || wasFalling
		}

		if prop.Landed() && s.OnPropLanded != nil {
			s.OnPropLanded(prop)
		}
		if prop.Departed() && s.OnPropDeparted != nil {
			s.OnPropDeparted(prop)
		}
	}
}

// resolveItem resolves a loose item; support from above settles it and
// losing all support lets it fall again
func (s *CollisionSystem) resolveItem(w *entity.World, it *entity.Item) {
	c := s.ResolveBody(w, &it.Body)
	if c.OnGround {
		it.Settle()
		return
	}
	it.Settled = false
}

// resolveProjectile sticks a flying projectile into the first platform it
// overlaps. One-way platforms never stop projectiles.
func (s *CollisionSystem) resolveProjectile(w *entity.World, p *entity.Projectile) {
	s.broad.sync(w)

	r := p.HitRect()
	for _, idx := range s.broad.query(r) {
		platform := &w.Platforms[idx]
		if platform.Type == entity.PlatformOneWay {
			continue
		}
		if !entity.Overlaps(r, platform.Rect()) {
			continue
		}

		if s.OnProjectileHit != nil {
			s.OnProjectileHit(p, platform)
		}
		p.StickToWall(s.config.Combat.ProjectileStuckDuration)
		return
	}
}

// ResolvePlatform pushes b out of a single platform along the axis of least
// penetration (ties go to Y). landed is true only for a from-above
// resolution of a body that was moving down.
func ResolvePlatform(b *entity.Body, p *entity.Platform) (Side, bool) {
	if !p.Collides() {
		return SideNone, false
	}

	a := b.HitRect()
	pr := p.Rect()

	if !entity.Overlaps(a, pr) {
		if restingOn(a, pr) && b.VY >= 0 {
			return landOn(b, a, pr)
		}
		return SideNone, false
	}

	overlapX, overlapY := entity.Penetration(a, pr)

	fromAbove := a.Top() < pr.Top()

	if p.Type == entity.PlatformOneWay {
		if overlapX < overlapY || !fromAbove || b.VY < 0 {
			return SideNone, false
		}
		return landOn(b, a, pr)
	}

	if overlapX < overlapY {
		if a.Right()-pr.Left() < pr.Right()-a.Left() {
			b.SetHitX(pr.Left() - a.W)
			b.VX = math.Min(0, b.VX)
			return SideLeft, false
		}
		b.SetHitX(pr.Right())
		b.VX = math.Max(0, b.VX)
		return SideRight, false
	}

	if fromAbove {
		return landOn(b, a, pr)
	}
	b.SetHitY(pr.Bottom())
	b.VY = math.Max(0, b.VY)
	return SideBottom, false
}

func landOn(b *entity.Body, a, pr entity.Rect) (Side, bool) {
	landed := b.VY > 0
	b.SetHitY(pr.Top() - a.H)
	b.VY = math.Min(0, b.VY)
	return SideTop, landed
}

// restingOn reports an exact surface contact: bottom edge on the platform
// top with strict horizontal overlap
func restingOn(a, pr entity.Rect) bool {
	return math.Abs(a.Bottom()-pr.Top()) <= contactEpsilon && entity.OverlapsX(a, pr)
}

// ResolveSoftLanding snaps a descending body onto target when its bottom
// edge lies within tolerance below the target's top and the horizontal
// spans overlap. It never pushes horizontally.
func ResolveSoftLanding(b *entity.Body, target entity.SoftLandingTarget, tolerance float64) bool {
	r := target.LandingRect()
	if r.Empty() || b.VY < 0 {
		return false
	}

	a := b.HitRect()
	if !entity.OverlapsX(a, r) {
		return false
	}

	bottom := a.Bottom()
	if bottom < r.Top()-contactEpsilon || bottom > r.Top()+tolerance {
		return false
	}

	b.SetHitY(r.Top() - a.H)
	b.VY = 0
	b.OnGround = true
	return true
}
