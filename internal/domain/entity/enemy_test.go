package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEnemyStats() EnemyStats {
	return EnemyStats{
		MaxHealth:      50,
		ContactDamage:  10,
		AttackDamage:   15,
		ScoreValue:     100,
		PatrolDistance: 100,
		PatrolSpeed:    40,
		ChaseSpeed:     90,
		DetectionRange: 200,
		AttackRange:    40,
		SightHeight:    64,
		KnockbackForce: 120,
		KnockbackUp:    80,
	}
}

func TestNewEnemy(t *testing.T) {
	enemy := NewEnemy(1, 100, 200, 32, 32, "slime", createTestEnemyStats(), true)

	require.NotNil(t, enemy)
	assert.Equal(t, EntityID(1), enemy.ID)
	assert.Equal(t, 100.0, enemy.X)
	assert.Equal(t, 200.0, enemy.Y)
	assert.Equal(t, "slime", enemy.Kind)
	assert.True(t, enemy.Active)
	assert.Equal(t, 50, enemy.Health)
	assert.Equal(t, StatePatrol, enemy.State)
	assert.Equal(t, 100.0, enemy.PatrolStartX)
	assert.Equal(t, 1, enemy.PatrolDir)
	assert.Equal(t, 1.0, enemy.Alpha)
}

func TestNewEnemy_FacingLeft(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, 32, 32, "slime", createTestEnemyStats(), false)
	assert.Equal(t, -1, enemy.PatrolDir)
}

func TestEnemy_SetState(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, 32, 32, "slime", createTestEnemyStats(), true)
	enemy.StateTime = 3.5

	assert.True(t, enemy.SetState(StateChase))
	assert.Equal(t, StateChase, enemy.State)
	assert.Equal(t, StatePatrol, enemy.PreviousState)
	assert.Equal(t, 0.0, enemy.StateTime)

	assert.True(t, enemy.SetState(StateDeath))
	enemy.StateTime = 1

	// Death is terminal
	assert.False(t, enemy.SetState(StatePatrol))
	assert.False(t, enemy.SetState(StateDeath))
	assert.Equal(t, StateDeath, enemy.State)
	assert.Equal(t, 1.0, enemy.StateTime)
}

func TestEnemy_TakeDamage(t *testing.T) {
	enemy := NewEnemy(1, 100, 0, 32, 32, "slime", createTestEnemyStats(), true)
	source := NewPlayer(9, 0, 0, 32, 64, PlayerStats{MaxHealth: 100})

	applied, ok := enemy.TakeDamage(20, source)
	require.True(t, ok)
	assert.Equal(t, 20, applied)
	assert.Equal(t, 30, enemy.Health)
	assert.Equal(t, StateHurt, enemy.State)
	assert.True(t, enemy.Aggressive)
	assert.Equal(t, EntityID(9), enemy.Target)
	assert.Equal(t, 120.0, enemy.VX, "knocked away from a source on the left")
	assert.Equal(t, -80.0, enemy.VY)
	assert.False(t, enemy.OnGround)

	// Lethal damage
	_, ok = enemy.TakeDamage(30, source)
	require.True(t, ok)
	assert.Equal(t, 0, enemy.Health)
	assert.Equal(t, StateDeath, enemy.State)
	assert.Equal(t, 0.0, enemy.VX)

	// Damage on a dying enemy is ignored
	applied, ok = enemy.TakeDamage(10, source)
	assert.False(t, ok)
	assert.Equal(t, 0, applied)
	assert.Equal(t, StateDeath, enemy.State)
}

func TestEnemy_TakeDamage_Invulnerable(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, 32, 32, "golem", createTestEnemyStats(), true)
	enemy.Invulnerable = true

	_, ok := enemy.TakeDamage(10, nil)
	assert.False(t, ok)
	assert.Equal(t, 50, enemy.Health)
	assert.Equal(t, StatePatrol, enemy.State)
	assert.False(t, enemy.Aggressive)
}

func TestEnemy_TakeDamage_RedirectsTarget(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, 32, 32, "slime", createTestEnemyStats(), true)
	enemy.Target = 5

	other := NewEnemy(6, 50, 0, 32, 32, "slime", createTestEnemyStats(), true)
	_, ok := enemy.TakeDamage(5, other)
	require.True(t, ok)
	assert.Equal(t, EntityID(6), enemy.Target)
}

func TestEnemy_ClaimDeath(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, 32, 32, "slime", createTestEnemyStats(), true)
	assert.False(t, enemy.ClaimDeath(), "alive enemies have nothing to claim")

	enemy.SetState(StateDeath)
	assert.True(t, enemy.ClaimDeath())
	assert.False(t, enemy.ClaimDeath())
}

func TestEnemy_Stun(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, 32, 32, "slime", createTestEnemyStats(), true)

	enemy.Stun(0.5)
	assert.True(t, enemy.IsStunned())
	enemy.Stun(0.2)
	assert.Equal(t, 0.5, enemy.StunTime, "shorter stun never shortens an active one")
}

func TestEnemy_StateInfo(t *testing.T) {
	enemy := NewEnemy(1, 0, 0, 32, 32, "slime", createTestEnemyStats(), true)
	enemy.Target = 3
	enemy.CanSeeTarget = true
	enemy.AttackCooldown = 0.4
	enemy.SetState(StateChase)

	info := enemy.StateInfo()
	assert.Equal(t, StateChase, info.State)
	assert.Equal(t, 0.0, info.StateTime)
	assert.True(t, info.HasTarget)
	assert.True(t, info.CanSeeTarget)
	assert.Equal(t, 50, info.Health)
	assert.Equal(t, 0.4, info.AttackCooldown)
}

func TestAIState_String(t *testing.T) {
	tests := []struct {
		state    AIState
		expected string
	}{
		{StatePatrol, "patrol"},
		{StateChase, "chase"},
		{StateAttack, "attack"},
		{StateHurt, "hurt"},
		{StateDeath, "death"},
		{AIState(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestNewItem(t *testing.T) {
	item := NewItem(3, 100, 200, 8, "gold", 50, 0.3, 16)

	require.NotNil(t, item)
	assert.Equal(t, 100.0, item.X)
	assert.Equal(t, 200.0, item.Y)
	assert.Equal(t, 50, item.Amount)
	assert.Equal(t, -40.0, item.VX)
	assert.Equal(t, -100.0, item.VY) // Pop up
	assert.True(t, item.Active)
	assert.False(t, item.CanCollect())

	item.CollectDelay = 0
	assert.True(t, item.CanCollect())

	item.Active = false
	assert.False(t, item.CanCollect())
}

func TestItem_Settle(t *testing.T) {
	item := NewItem(1, 0, 42, 8, "gold", 1, 0, 16)
	item.Settle()

	assert.True(t, item.Settled)
	assert.Equal(t, 42.0, item.RestY)
	assert.Equal(t, 0.0, item.VY)
}
