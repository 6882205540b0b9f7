package entity

// AIState is the active state of an enemy's behavior graph.
// Exactly one state is active at a time.
type AIState int

const (
	StatePatrol AIState = iota
	StateChase
	StateAttack
	StateHurt
	StateDeath
)

// String returns the string representation of the AI state
func (s AIState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChase:
		return "chase"
	case StateAttack:
		return "attack"
	case StateHurt:
		return "hurt"
	case StateDeath:
		return "death"
	default:
		return "unknown"
	}
}

// DropEntry is one row of a drop table
type DropEntry struct {
	Item   string
	Chance float64 // 0-1, rolled independently
	Amount int
}

// EnemyStats holds immutable per-archetype tuning.
// Durations are in seconds, speeds in pixels/sec.
type EnemyStats struct {
	MaxHealth     int
	ContactDamage int
	AttackDamage  int
	ScoreValue    int

	PatrolDistance float64
	PatrolSpeed    float64
	ChaseSpeed     float64

	DetectionRange float64
	AttackRange    float64
	SightHeight    float64 // max vertical center separation for line of sight

	ReactionDelay  float64
	SearchDuration float64
	AttackDuration float64
	AttackCooldown float64
	HurtDuration   float64
	FadeDuration   float64

	KnockbackForce float64
	KnockbackUp    float64

	DropChance float64
	Drops      []DropEntry
}

// Enemy represents a hostile entity driven by the AI state machine
type Enemy struct {
	Body
	Kind  string
	Stats EnemyStats

	State         AIState
	PreviousState AIState
	StateTime     float64 // seconds since the last transition

	Target          EntityID
	LastSeenTargetX float64
	CanSeeTarget    bool
	Aggressive      bool
	Invulnerable    bool

	// Timers (seconds)
	AttackCooldown float64
	StunTime       float64
	ReactionTimer  float64
	SearchTime     float64

	PatrolStartX float64
	PatrolDir    int

	Alpha float64 // death fade, 1 = opaque

	deathClaimed bool
}

// NewEnemy creates a new enemy in the patrol state
func NewEnemy(id EntityID, x, y, w, h float64, kind string, stats EnemyStats, facingRight bool) *Enemy {
	e := &Enemy{
		Body:         NewBody(id, x, y, w, h),
		Kind:         kind,
		Stats:        stats,
		State:        StatePatrol,
		PatrolStartX: x,
		PatrolDir:    1,
		Alpha:        1,
	}
	e.Health = stats.MaxHealth
	e.FacingRight = facingRight
	if !facingRight {
		e.PatrolDir = -1
	}
	return e
}

// SetState transitions to a new state and resets StateTime.
// Death is terminal: once entered, every later transition is refused.
func (e *Enemy) SetState(to AIState) bool {
	if e.State == StateDeath {
		return false
	}
	e.PreviousState = e.State
	e.State = to
	e.StateTime = 0
	return true
}

// IsDying returns true once the enemy entered the death state
func (e *Enemy) IsDying() bool {
	return e.State == StateDeath
}

// TakeDamage applies damage from source.
// Rejected outright while invulnerable or dying. Any accepted hit redirects
// aggression to the source and forces the hurt state with knockback.
func (e *Enemy) TakeDamage(amount int, source Actor) (int, bool) {
	if amount <= 0 || e.Invulnerable || !e.Active || e.State == StateDeath {
		return 0, false
	}

	e.Health -= amount
	e.Aggressive = true
	if source != nil && source.EntityID() != NoEntity {
		e.Target = source.EntityID()
	}

	if e.Health <= 0 {
		e.Health = 0
		e.SetState(StateDeath)
		e.VX = 0
		return amount, true
	}

	e.SetState(StateHurt)
	dir := knockbackDir(e.HitRect(), source, e.FacingRight)
	e.VX = dir * e.Stats.KnockbackForce
	if e.Stats.KnockbackUp > 0 {
		e.VY = -e.Stats.KnockbackUp
		e.OnGround = false
	}
	return amount, true
}

// ClaimDeath returns true exactly once after the enemy died.
// Drop rolls and score awards are gated on it.
func (e *Enemy) ClaimDeath() bool {
	if e.State != StateDeath || e.deathClaimed {
		return false
	}
	e.deathClaimed = true
	return true
}

// Stun suspends the state machine for the given duration
func (e *Enemy) Stun(duration float64) {
	if duration > e.StunTime {
		e.StunTime = duration
	}
}

// IsStunned returns true while the state machine is suspended
func (e *Enemy) IsStunned() bool {
	return e.StunTime > 0
}

// StateInfo is a debug view of the enemy's AI
type StateInfo struct {
	State          AIState
	StateTime      float64
	HasTarget      bool
	CanSeeTarget   bool
	Health         int
	AttackCooldown float64
}

// StateInfo returns the current AI state for debug overlays
func (e *Enemy) StateInfo() StateInfo {
	return StateInfo{
		State:          e.State,
		StateTime:      e.StateTime,
		HasTarget:      e.Target != NoEntity,
		CanSeeTarget:   e.CanSeeTarget,
		Health:         e.Health,
		AttackCooldown: e.AttackCooldown,
	}
}
