package system

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

// PlayerProjectile is the projectile archetype fired by the player
const PlayerProjectile = "playerArrow"

// Simulation owns the systems and runs one fixed-step tick at a time:
// control, AI, integrate, resolve, consumers, reap.
type Simulation struct {
	World *entity.World

	Control   *ControlSystem
	AI        *AISystem
	Physics   *PhysicsSystem
	Collision *CollisionSystem
	Combat    *CombatSystem
	Spawner   *Spawner

	dt float64

	// LastPlayerContact is the player's resolution from the latest tick
	LastPlayerContact Contact

	OnEnemyDeath func(ev DeathEvent)
	OnJump       func(player *entity.Player)
}

// NewSimulation wires the systems around a world. rng drives every random
// decision, so a fixed seed gives a reproducible run.
func NewSimulation(cfg *config.GameConfig, w *entity.World, rng *rand.Rand) *Simulation {
	spawner := NewSpawner(cfg)
	ai := NewAISystem(rng, spawner)

	sim := &Simulation{
		World:     w,
		Control:   NewControlSystem(cfg.Physics),
		AI:        ai,
		Physics:   NewPhysicsSystem(cfg.Physics),
		Collision: NewCollisionSystem(cfg.Physics),
		Combat:    NewCombatSystem(cfg.Physics, ai),
		Spawner:   spawner,
		dt:        cfg.Physics.Dt(),
	}
	ai.OnEnemyDeath = sim.handleEnemyDeath
	return sim
}

// Dt returns the fixed tick length in seconds
func (s *Simulation) Dt() float64 {
	return s.dt
}

// SetWorld swaps in a freshly built world (stage load or reset)
func (s *Simulation) SetWorld(w *entity.World) {
	s.World = w
	s.LastPlayerContact = Contact{}
}

// SetConfig applies a reloaded configuration to every system
func (s *Simulation) SetConfig(cfg *config.GameConfig) {
	s.Control.SetConfig(cfg.Physics)
	s.Physics.SetConfig(cfg.Physics)
	s.Collision.SetConfig(cfg.Physics)
	s.Combat.SetConfig(cfg.Physics)
	s.Spawner.SetConfig(cfg)
	s.dt = cfg.Physics.Dt()
	logger.Log.WithField("dt", s.dt).Info("Simulation config updated")
}

// Step advances the world by one tick
func (s *Simulation) Step(input PlayerInput) {
	w := s.World
	if w == nil {
		return
	}

	if p := w.Player; p != nil && p.IsAlive() {
		for _, intent := range s.Control.UpdatePlayer(p, input, s.dt) {
			s.applyPlayerIntent(w, p, intent)
		}
	}

	s.AI.Update(w, s.dt)
	s.Physics.Update(w, s.dt)
	s.LastPlayerContact = s.Collision.Update(w)
	s.Combat.Update(w, s.dt)

	w.Reap()
	w.Frame++
}

func (s *Simulation) applyPlayerIntent(w *entity.World, p *entity.Player, intent Intent) {
	switch in := intent.(type) {
	case ShootIntent:
		if _, err := s.Spawner.SpawnProjectile(w, PlayerProjectile, p, in.TargetX, in.TargetY); err != nil {
			logger.Log.WithError(err).Warn("Shot dropped")
		}
	case JumpIntent:
		if s.OnJump != nil {
			s.OnJump(p)
		}
	}
}

func (s *Simulation) handleEnemyDeath(ev DeathEvent) {
	if p := s.World.Player; p != nil {
		p.Score += ev.Score
	}
	logger.Log.WithFields(logrus.Fields{
		"enemy": ev.EnemyID,
		"score": ev.Score,
	}).Debug("Score awarded")

	if s.OnEnemyDeath != nil {
		s.OnEnemyDeath(ev)
	}
}
