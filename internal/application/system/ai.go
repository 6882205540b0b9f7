package system

import (
	"cmp"
	"math"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

const (
	// arriveDistance stops a chasing enemy from jittering around its goal
	arriveDistance = 2.0
	// hurtDamping bleeds off knockback while an enemy is hurt
	hurtDamping = 0.9
)

// DeathEvent is delivered once per enemy death
type DeathEvent struct {
	EnemyID entity.EntityID
	Kind    string
	Score   int
	X, Y    float64
	Drop    *entity.Item // nil when the drop roll failed
}

// AISystem drives the enemy state machine. All perception reads happen
// against start-of-pass state; attacks are queued as intents and applied
// once every enemy has been updated.
type AISystem struct {
	rng     *rand.Rand
	spawner *Spawner
	intents []Intent

	OnEnemyDeath func(ev DeathEvent)
}

// NewAISystem creates an AI system. rng drives drop rolls and must be
// seeded for reproducible runs.
func NewAISystem(rng *rand.Rand, spawner *Spawner) *AISystem {
	return &AISystem{
		rng:     rng,
		spawner: spawner,
		intents: make([]Intent, 0, 8),
	}
}

// Update runs one AI tick for every active enemy
func (s *AISystem) Update(w *entity.World, dt float64) {
	s.intents = s.intents[:0]

	for _, e := range w.Enemies {
		if !e.Active {
			continue
		}
		s.updateEnemy(w, e, dt)
	}

	s.applyIntents(w)
}

func (s *AISystem) updateEnemy(w *entity.World, e *entity.Enemy, dt float64) {
	if e.StunTime > 0 {
		e.StunTime = math.Max(0, e.StunTime-dt)
		return
	}

	e.StateTime += dt
	if e.AttackCooldown > 0 {
		e.AttackCooldown = math.Max(0, e.AttackCooldown-dt)
	}

	switch e.State {
	case entity.StatePatrol:
		s.patrol(w, e, dt)
	case entity.StateChase:
		s.chase(w, e, dt)
	case entity.StateAttack:
		s.attack(w, e)
	case entity.StateHurt:
		s.hurt(w, e)
	case entity.StateDeath:
		s.death(w, e, dt)
	}
}

func (s *AISystem) patrol(w *entity.World, e *entity.Enemy, dt float64) {
	walkPatrol(e)

	target, ok := resolveTarget(w, e)
	if !ok {
		e.Target = entity.NoEntity
		if w.Player != nil && w.Player.IsAlive() {
			target = w.Player
		}
	}
	if target == nil {
		e.CanSeeTarget = false
		return
	}

	e.CanSeeTarget = canSee(e, target)
	if !e.CanSeeTarget {
		if !e.Aggressive {
			e.Target = entity.NoEntity
		}
		e.ReactionTimer = 0
		return
	}

	if e.Target != target.EntityID() {
		e.Target = target.EntityID()
		e.ReactionTimer = e.Stats.ReactionDelay
		if e.Aggressive {
			e.ReactionTimer = 0
		}
	} else {
		e.ReactionTimer -= dt
	}

	if e.ReactionTimer <= 0 {
		s.transition(e, entity.StateChase)
	}
}

// walkPatrol bounces between PatrolStartX ± PatrolDistance/2 and turns
// around early when blocked by a wall
func walkPatrol(e *entity.Enemy) {
	half := e.Stats.PatrolDistance / 2
	left, right := e.PatrolStartX-half, e.PatrolStartX+half

	if e.PatrolDir == 0 {
		e.PatrolDir = 1
	}
	switch {
	case e.PatrolDir > 0 && (e.X >= right || e.OnWallRight):
		e.PatrolDir = -1
	case e.PatrolDir < 0 && (e.X <= left || e.OnWallLeft):
		e.PatrolDir = 1
	}

	e.VX = float64(e.PatrolDir) * e.Stats.PatrolSpeed
	e.FacingRight = e.PatrolDir > 0
}

func (s *AISystem) chase(w *entity.World, e *entity.Enemy, dt float64) {
	target, ok := resolveTarget(w, e)
	if !ok {
		e.Target = entity.NoEntity
		e.CanSeeTarget = false
		s.transition(e, entity.StatePatrol)
		return
	}

	e.CanSeeTarget = canSee(e, target)
	if e.CanSeeTarget {
		tx, _ := target.Center()
		e.LastSeenTargetX = tx
		e.SearchTime = e.Stats.SearchDuration
		moveToward(e, tx)

		if entity.Distance(e.HitRect(), target.HitRect()) <= e.Stats.AttackRange && e.AttackCooldown <= 0 {
			s.transition(e, entity.StateAttack)
		}
		return
	}

	e.SearchTime -= dt
	if e.SearchTime <= 0 {
		e.Target = entity.NoEntity
		e.Aggressive = false
		s.transition(e, entity.StatePatrol)
		return
	}
	moveToward(e, e.LastSeenTargetX)
}

func moveToward(e *entity.Enemy, x float64) {
	cx, _ := e.Center()
	dx := x - cx
	if math.Abs(dx) <= arriveDistance {
		e.VX = 0
		return
	}
	if dx > 0 {
		e.VX = e.Stats.ChaseSpeed
		e.FacingRight = true
	} else {
		e.VX = -e.Stats.ChaseSpeed
		e.FacingRight = false
	}
}

func (s *AISystem) attack(w *entity.World, e *entity.Enemy) {
	if e.StateTime < e.Stats.AttackDuration {
		return
	}

	if target, ok := resolveTarget(w, e); ok {
		if entity.Distance(e.HitRect(), target.HitRect()) <= e.Stats.AttackRange {
			s.intents = append(s.intents, AttackIntent{
				Attacker: e.ID,
				Target:   target.EntityID(),
				Damage:   e.Stats.AttackDamage,
			})
		}
	}
	e.AttackCooldown = e.Stats.AttackCooldown
	s.transition(e, entity.StateChase)
}

func (s *AISystem) hurt(w *entity.World, e *entity.Enemy) {
	e.VX *= hurtDamping
	if e.StateTime < e.Stats.HurtDuration {
		return
	}

	if target, ok := resolveTarget(w, e); ok && canSee(e, target) {
		e.CanSeeTarget = true
		s.transition(e, entity.StateChase)
		return
	}
	e.CanSeeTarget = false
	s.transition(e, entity.StatePatrol)
}

func (s *AISystem) death(w *entity.World, e *entity.Enemy, dt float64) {
	s.HandleDeath(w, e)
	e.VX = 0

	if e.Stats.FadeDuration <= 0 {
		e.Alpha = 0
	} else {
		e.Alpha -= dt / e.Stats.FadeDuration
	}
	if e.Alpha <= 0 {
		e.Alpha = 0
		e.Active = false
		logger.Log.WithFields(logrus.Fields{"id": e.ID, "kind": e.Kind}).Debug("Enemy despawned")
	}
}

// transition changes state and runs entry actions. It refuses to leave death.
func (s *AISystem) transition(e *entity.Enemy, to entity.AIState) bool {
	from := e.State
	if !e.SetState(to) {
		return false
	}

	switch to {
	case entity.StateChase:
		e.SearchTime = e.Stats.SearchDuration
	case entity.StateAttack:
		e.VX *= 0.5
	case entity.StatePatrol:
		e.ReactionTimer = 0
	}

	logger.Log.WithFields(logrus.Fields{
		"id":   e.ID,
		"kind": e.Kind,
		"from": from.String(),
		"to":   to.String(),
	}).Debug("AI transition")
	return true
}

// applyIntents applies queued attacks in attacker ID order so the outcome
// does not depend on the enemy slice order
func (s *AISystem) applyIntents(w *entity.World) {
	slices.SortStableFunc(s.intents, func(a, b Intent) int {
		return cmp.Compare(intentAttacker(a), intentAttacker(b))
	})

	for _, intent := range s.intents {
		attack, ok := intent.(AttackIntent)
		if !ok {
			continue
		}

		var source entity.Actor
		if a, ok := w.Actor(attack.Attacker); ok {
			source = a
		}
		target, ok := w.Damageable(attack.Target)
		if !ok {
			continue
		}

		if enemy, isEnemy := target.(*entity.Enemy); isEnemy {
			s.DamageEnemy(w, enemy, attack.Damage, source)
			continue
		}
		if applied, ok := target.TakeDamage(attack.Damage, source); ok {
			logger.Log.WithFields(logrus.Fields{
				"attacker": attack.Attacker,
				"target":   attack.Target,
				"damage":   applied,
			}).Debug("Enemy attack landed")
		}
	}
}

func intentAttacker(in Intent) entity.EntityID {
	if a, ok := in.(AttackIntent); ok {
		return a.Attacker
	}
	return entity.NoEntity
}

// DamageEnemy applies damage to an enemy and runs death handling when the
// hit was lethal
func (s *AISystem) DamageEnemy(w *entity.World, e *entity.Enemy, amount int, source entity.Actor) (int, bool) {
	applied, ok := e.TakeDamage(amount, source)
	if !ok {
		return 0, false
	}
	if e.IsDying() {
		s.HandleDeath(w, e)
	}
	return applied, true
}

// HandleDeath rolls the drop table and fires the death hook. It runs at most
// once per enemy; later calls return false.
func (s *AISystem) HandleDeath(w *entity.World, e *entity.Enemy) bool {
	if !e.ClaimDeath() {
		return false
	}

	cx, cy := e.Center()
	ev := DeathEvent{
		EnemyID: e.ID,
		Kind:    e.Kind,
		Score:   e.Stats.ScoreValue,
		X:       cx,
		Y:       cy,
	}

	if kind, amount, ok := s.rollDrop(e.Stats); ok && s.spawner != nil {
		item, err := s.spawner.SpawnItem(w, kind, amount, cx, cy)
		if err != nil {
			logger.Log.WithError(err).WithField("enemy", e.Kind).Warn("Drop not spawned")
		} else {
			ev.Drop = item
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"id":      e.ID,
		"kind":    e.Kind,
		"score":   ev.Score,
		"dropped": ev.Drop != nil,
	}).Info("Enemy died")

	if s.OnEnemyDeath != nil {
		s.OnEnemyDeath(ev)
	}
	return true
}

// rollDrop makes one roll against DropChance, then scans the table in order;
// the first entry whose own roll succeeds wins
func (s *AISystem) rollDrop(stats entity.EnemyStats) (string, int, bool) {
	if s.rng.Float64() >= stats.DropChance {
		return "", 0, false
	}
	for _, d := range stats.Drops {
		if s.rng.Float64() < d.Chance {
			return d.Item, d.Amount, true
		}
	}
	return "", 0, false
}

// resolveTarget resolves the enemy's target handle to a live actor
func resolveTarget(w *entity.World, e *entity.Enemy) (entity.Actor, bool) {
	a, ok := w.Actor(e.Target)
	if !ok || !a.IsAlive() {
		return nil, false
	}
	return a, true
}

// canSee is the simplified line-of-sight test: range plus a vertical band
func canSee(e *entity.Enemy, target entity.Actor) bool {
	er, tr := e.HitRect(), target.HitRect()
	if entity.Distance(er, tr) > e.Stats.DetectionRange {
		return false
	}
	_, ey := er.Center()
	_, ty := tr.Center()
	return math.Abs(ty-ey) < e.Stats.SightHeight
}
