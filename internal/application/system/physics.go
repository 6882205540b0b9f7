package system

import (
	"math"

	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
)

// restSpeed is the horizontal speed below which a damped item stops rolling
const restSpeed = 0.01

// PhysicsSystem integrates gravity and velocity for every kinetic entity.
// Each entity only reads and writes its own fields, so the pass is
// independent of iteration order.
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// SetConfig swaps the tuning (hot reload)
func (s *PhysicsSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// Update advances all kinetic entities by dt seconds
func (s *PhysicsSystem) Update(w *entity.World, dt float64) {
	if w.Player != nil && w.Player.Active {
		s.IntegrateBody(&w.Player.Body, dt)
	}

	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		s.IntegrateBody(&e.Body, dt)
	}

	for _, it := range w.Items {
		if !it.Active {
			continue
		}
		s.IntegrateItem(it, dt)
	}

	for _, p := range w.Projectiles {
		if !p.Active {
			continue
		}
		s.IntegrateProjectile(p, dt)
	}
}

// IntegrateBody applies gravity (when airborne) then moves by velocity
func (s *PhysicsSystem) IntegrateBody(b *entity.Body, dt float64) {
	if !b.OnGround {
		b.VY += b.Gravity * dt
		if maxFall := s.config.Physics.MaxFallSpeed; maxFall > 0 && b.VY > maxFall {
			b.VY = maxFall
		}
	}

	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// IntegrateItem moves a loose item with rolling friction.
// Settled items keep their rest height until the resolver unsettles them.
func (s *PhysicsSystem) IntegrateItem(it *entity.Item, dt float64) {
	if it.Settled {
		it.VY = 0
		it.X += it.VX * dt
		it.Y = it.RestY
	} else {
		s.IntegrateBody(&it.Body, dt)
	}

	it.VX *= s.config.Physics.ItemDamping
	if math.Abs(it.VX) < restSpeed {
		it.VX = 0
	}
}

// IntegrateProjectile moves an in-flight projectile or ages a stuck one
func (s *PhysicsSystem) IntegrateProjectile(p *entity.Projectile, dt float64) {
	if p.Stuck {
		p.StuckTimer += dt
		if p.StuckTimer >= p.StuckDuration {
			p.Deactivate()
		}
		return
	}

	p.VY += p.Gravity * dt
	if p.MaxFallSpeed > 0 && p.VY > p.MaxFallSpeed {
		p.VY = p.MaxFallSpeed
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt

	if p.OutOfRange() {
		p.Deactivate()
	}
}
