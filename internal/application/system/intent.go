package system

import "github.com/younwookim/platformsim/internal/domain/entity"

// Intent is an action queued during a read-only pass and applied afterward,
// so no entity observes another's mid-tick changes
type Intent interface {
	isIntent()
}

// AttackIntent is a melee hit an enemy lands at the end of its attack
type AttackIntent struct {
	Attacker entity.EntityID
	Target   entity.EntityID
	Damage   int
}

func (AttackIntent) isIntent() {}

// ShootIntent asks for a projectile fired by Owner toward the aim point
type ShootIntent struct {
	Owner            entity.EntityID
	TargetX, TargetY float64
}

func (ShootIntent) isIntent() {}

// JumpIntent reports a jump the control pass started (for audio/animation)
type JumpIntent struct {
	EntityID entity.EntityID
	Force    float64
}

func (JumpIntent) isIntent() {}
