package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(4, 1, 100, 200, 400, 200, 300, 25)

	require.NotNil(t, p)
	assert.Equal(t, EntityID(4), p.ID)
	assert.Equal(t, EntityID(1), p.Owner)
	assert.Equal(t, 100.0, p.StartX)
	assert.True(t, p.Active)
	assert.Equal(t, 25, p.Damage)
	assert.InDelta(t, 300.0, p.VX, 1e-9)
	assert.InDelta(t, 0.0, p.VY, 1e-9)
	assert.True(t, p.FacingRight)
}

func TestNewProjectile_Diagonal(t *testing.T) {
	p := NewProjectile(1, 0, 0, 0, -30, -40, 100, 5)

	assert.InDelta(t, -60.0, p.VX, 1e-9)
	assert.InDelta(t, -80.0, p.VY, 1e-9)
	assert.False(t, p.FacingRight)
}

func TestProjectile_StickToWall(t *testing.T) {
	p := NewProjectile(1, 0, 0, 0, 100, 100, 100, 5)
	angle := p.Rotation()

	p.StickToWall(5)

	assert.True(t, p.Stuck)
	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, 0.0, p.VY)
	assert.InDelta(t, math.Pi/4, angle, 1e-9)
	assert.InDelta(t, angle, p.Rotation(), 1e-9, "rotation is frozen when stuck")
}

func TestProjectile_GetAlpha(t *testing.T) {
	p := NewProjectile(1, 0, 0, 0, 100, 0, 100, 5)
	assert.Equal(t, 1.0, p.GetAlpha())

	p.StickToWall(5)
	p.StuckTimer = 3
	assert.Equal(t, 1.0, p.GetAlpha())

	p.StuckTimer = 4.5
	assert.InDelta(t, 0.5, p.GetAlpha(), 1e-9)

	p.StuckTimer = 9
	assert.Equal(t, 0.0, p.GetAlpha())
}

func TestProjectile_OutOfRange(t *testing.T) {
	p := NewProjectile(1, 0, 100, 0, 200, 0, 100, 5)
	p.MaxRange = 50

	p.X = 140
	assert.False(t, p.OutOfRange())
	p.X = 151
	assert.True(t, p.OutOfRange())

	p.MaxRange = 0
	assert.False(t, p.OutOfRange(), "zero range is unlimited")
}
