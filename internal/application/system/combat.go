package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

// Item kinds with built-in pickup effects
const (
	ItemGold   = "gold"
	ItemPotion = "potion"
)

const (
	// playerHitShake scales the screen shake when the player is the one hit
	playerHitShake = 1.5
	// potionHeal is the health restored per potion
	potionHeal = 25
)

// CombatSystem consumes the resolved positions of a tick: projectile hits,
// contact damage, hazards and item pickup
type CombatSystem struct {
	config *config.PhysicsConfig
	ai     *AISystem

	// Event callbacks
	OnHitstop     func(frames int)
	OnScreenShake func(intensity float64)
	OnPickup      func(player *entity.Player, item *entity.Item)
}

// NewCombatSystem creates a new combat system. Enemy damage is routed
// through ai so death handling runs.
func NewCombatSystem(cfg *config.PhysicsConfig, ai *AISystem) *CombatSystem {
	return &CombatSystem{config: cfg, ai: ai}
}

// SetConfig swaps the tuning (hot reload)
func (s *CombatSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// Update runs every consumer for the tick
func (s *CombatSystem) Update(w *entity.World, dt float64) {
	s.updateItems(w, dt)
	s.checkProjectiles(w)

	if w.Player == nil || !w.Player.IsAlive() {
		return
	}
	s.checkContactDamage(w)
	s.checkHazards(w)
}

func (s *CombatSystem) updateItems(w *entity.World, dt float64) {
	player := w.Player
	for _, it := range w.Items {
		if !it.Active {
			continue
		}

		// Update collect delay timer
		if it.CollectDelay > 0 {
			it.CollectDelay -= dt
		}

		if player == nil || !player.IsAlive() || !it.CanCollect() {
			continue
		}

		px, py := player.Center()
		ix, iy := it.Center()
		if math.Hypot(px-ix, py-iy) >= it.CollectRadius {
			continue
		}

		s.collect(player, it)
	}
}

func (s *CombatSystem) collect(player *entity.Player, it *entity.Item) {
	switch it.Kind {
	case ItemGold:
		player.Gold += it.Amount
	case ItemPotion:
		player.Health = min(player.Health+it.Amount*potionHeal, player.Stats.MaxHealth)
	default:
		player.Score += it.Amount
	}
	it.Active = false

	logger.Log.WithFields(logrus.Fields{
		"kind":   it.Kind,
		"amount": it.Amount,
	}).Debug("Item collected")

	if s.OnPickup != nil {
		s.OnPickup(player, it)
	}
}

func (s *CombatSystem) checkProjectiles(w *entity.World) {
	for _, proj := range w.Projectiles {
		if !proj.Active || proj.Stuck {
			continue
		}

		source := s.projectileSource(w, proj)
		r := proj.HitRect()

		if p := w.Player; p != nil && p.ID != proj.Owner && p.IsAlive() && entity.Overlaps(r, p.HitRect()) {
			proj.Deactivate()
			if _, ok := p.TakeDamage(proj.Damage, source); ok {
				s.shake(playerHitShake)
			}
			continue
		}

		enemy := firstOverlapping(w.Enemies, r, func(e *entity.Enemy) bool {
			return e.ID != proj.Owner
		})
		if enemy == nil {
			continue
		}

		proj.Deactivate()
		if _, ok := s.ai.DamageEnemy(w, enemy, proj.Damage, source); ok {
			s.hitstop()
			s.shake(1)
		}
	}
}

// firstOverlapping returns the live enemy with the lowest ID overlapping r,
// so simultaneous hits resolve the same way whatever the slice order
func firstOverlapping(enemies []*entity.Enemy, r entity.Rect, accept func(*entity.Enemy) bool) *entity.Enemy {
	var best *entity.Enemy
	for _, e := range enemies {
		if !e.Active || e.IsDying() || !accept(e) {
			continue
		}
		if !entity.Overlaps(r, e.HitRect()) {
			continue
		}
		if best == nil || e.ID < best.ID {
			best = e
		}
	}
	return best
}

// projectileSource is the owner when still registered, else the projectile
func (s *CombatSystem) projectileSource(w *entity.World, proj *entity.Projectile) entity.Actor {
	if owner, ok := w.Actor(proj.Owner); ok {
		return owner
	}
	return proj
}

func (s *CombatSystem) checkContactDamage(w *entity.World) {
	player := w.Player
	if player.IsInvincible() {
		return
	}

	enemy := firstOverlapping(w.Enemies, player.HitRect(), func(e *entity.Enemy) bool {
		return e.Stats.ContactDamage > 0
	})
	if enemy == nil {
		return
	}
	if _, ok := player.TakeDamage(enemy.Stats.ContactDamage, enemy); ok {
		s.shake(playerHitShake)
	}
}

func (s *CombatSystem) checkHazards(w *entity.World) {
	player := w.Player
	if player.IsInvincible() {
		return
	}

	pr := player.HitRect()
	for _, h := range w.Hazards {
		if !entity.Overlaps(pr, h.HazardRect()) {
			continue
		}
		if _, ok := player.TakeDamage(h.ContactDamage(), nil); ok {
			s.shake(playerHitShake)
			return
		}
	}
}

func (s *CombatSystem) hitstop() {
	if s.OnHitstop != nil && s.config.Feedback.Hitstop.Enabled {
		s.OnHitstop(s.config.Feedback.Hitstop.Frames)
	}
}

func (s *CombatSystem) shake(scale float64) {
	if s.OnScreenShake != nil && s.config.Feedback.ScreenShake.Enabled {
		s.OnScreenShake(s.config.Feedback.ScreenShake.Intensity * scale)
	}
}
