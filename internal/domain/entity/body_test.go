package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPlayer() *Player {
	return NewPlayer(1, 100, 100, 32, 64, PlayerStats{
		MaxHealth:      100,
		Iframes:        1.0,
		StunDuration:   0.3,
		KnockbackForce: 200,
		KnockbackUp:    150,
	})
}

func TestNewBody(t *testing.T) {
	b := NewBody(7, 10, 20, 16, 24)

	assert.Equal(t, EntityID(7), b.EntityID())
	assert.True(t, b.Active)
	assert.Equal(t, DefaultGravity, b.Gravity)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 16, H: 24}, b.HitRect())
}

func TestBody_SetHitXY(t *testing.T) {
	b := NewBody(1, 0, 0, 32, 32)
	b.OffsetX = 4
	b.OffsetY = 6

	b.SetHitX(100)
	b.SetHitY(200)

	assert.Equal(t, 96.0, b.X)
	assert.Equal(t, 194.0, b.Y)
	assert.Equal(t, 100.0, b.HitRect().X)
	assert.Equal(t, 200.0, b.HitRect().Y)
}

func TestBody_IsAlive(t *testing.T) {
	b := NewBody(1, 0, 0, 8, 8)
	b.Health = 10
	assert.True(t, b.IsAlive())

	b.Health = 0
	assert.False(t, b.IsAlive())

	b.Health = 10
	b.Active = false
	assert.False(t, b.IsAlive())
}

func TestNewPlayer(t *testing.T) {
	p := createTestPlayer()

	require.NotNil(t, p)
	assert.Equal(t, 100, p.Health)
	assert.True(t, p.FacingRight)
	assert.False(t, p.IsInvincible())
	assert.False(t, p.IsStunned())
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := createTestPlayer()
	source := NewEnemy(2, 200, 100, 32, 32, "slime", EnemyStats{MaxHealth: 10}, false)

	applied, ok := p.TakeDamage(10, source)
	require.True(t, ok)
	assert.Equal(t, 10, applied)
	assert.Equal(t, 90, p.Health)
	assert.True(t, p.IsInvincible())
	assert.True(t, p.IsStunned())
	assert.Equal(t, -200.0, p.VX, "knockback pushes away from a source on the right")
	assert.Equal(t, -150.0, p.VY)

	// Iframes reject the follow-up hit
	applied, ok = p.TakeDamage(10, source)
	assert.False(t, ok)
	assert.Equal(t, 0, applied)
	assert.Equal(t, 90, p.Health)
}

func TestPlayer_TakeDamage_NilSource(t *testing.T) {
	p := createTestPlayer()

	_, ok := p.TakeDamage(5, nil)
	require.True(t, ok)
	assert.Equal(t, -200.0, p.VX, "facing right gets pushed back left")
}

func TestSpike_Hazard(t *testing.T) {
	var h Hazard = &Spike{X: 10, Y: 20, Width: 30, Height: 5, Damage: 15}

	assert.Equal(t, Rect{X: 10, Y: 20, W: 30, H: 5}, h.HazardRect())
	assert.Equal(t, 15, h.ContactDamage())
}
