package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorld_NextID(t *testing.T) {
	w := NewWorld()

	assert.Equal(t, EntityID(1), w.NextID())
	assert.Equal(t, EntityID(2), w.NextID())
}

func TestWorld_ZeroValueIsUsable(t *testing.T) {
	var w World

	id := w.NextID()
	assert.NotEqual(t, NoEntity, id)

	p := NewPlayer(id, 0, 0, 32, 64, PlayerStats{MaxHealth: 10})
	e := NewEnemy(w.NextID(), 100, 0, 32, 32, "slime", EnemyStats{MaxHealth: 10}, true)
	require.NotPanics(t, func() {
		w.SetPlayer(p)
		w.AddEnemy(e)
	})

	a, ok := w.Actor(e.ID)
	require.True(t, ok)
	assert.Same(t, e, a)
	_, ok = w.Actor(p.ID)
	assert.True(t, ok)
}

func TestWorld_SetPlatforms(t *testing.T) {
	w := NewWorld()
	src := []Platform{{X: 0, Y: 400, Width: 800, Height: 40, Solid: true}}

	w.SetPlatforms(src)
	v1 := w.PlatformVersion()
	src[0].Y = 0

	assert.Equal(t, 400.0, w.Platforms[0].Y, "world keeps its own copy")

	w.SetPlatforms(nil)
	assert.Greater(t, w.PlatformVersion(), v1)
	assert.Empty(t, w.Platforms)
}

func TestWorld_ActorLookup(t *testing.T) {
	w := NewWorld()
	p := NewPlayer(w.NextID(), 0, 0, 32, 64, PlayerStats{MaxHealth: 10})
	w.SetPlayer(p)
	e := NewEnemy(w.NextID(), 100, 0, 32, 32, "slime", EnemyStats{MaxHealth: 10}, true)
	w.AddEnemy(e)

	a, ok := w.Actor(p.ID)
	require.True(t, ok)
	assert.Equal(t, p.ID, a.EntityID())

	d, ok := w.Damageable(e.ID)
	require.True(t, ok)
	assert.Equal(t, e.ID, d.EntityID())

	_, ok = w.Actor(NoEntity)
	assert.False(t, ok)
	_, ok = w.Actor(99)
	assert.False(t, ok)
}

func TestWorld_Reap(t *testing.T) {
	w := NewWorld()
	w.SetPlayer(NewPlayer(w.NextID(), 0, 0, 32, 64, PlayerStats{MaxHealth: 10}))

	a := NewEnemy(w.NextID(), 0, 0, 32, 32, "slime", EnemyStats{MaxHealth: 10}, true)
	b := NewEnemy(w.NextID(), 50, 0, 32, 32, "slime", EnemyStats{MaxHealth: 10}, true)
	w.AddEnemy(a)
	w.AddEnemy(b)
	it := NewItem(w.NextID(), 0, 0, 8, "gold", 1, 0, 16)
	w.AddItem(it)

	// b was hit by a; a then despawns
	b.Target = a.ID
	a.Active = false
	it.Active = false

	removed := w.Reap()

	assert.Equal(t, 2, removed)
	require.Len(t, w.Enemies, 1)
	assert.Equal(t, b.ID, w.Enemies[0].ID)
	assert.Empty(t, w.Items)
	assert.Equal(t, NoEntity, b.Target, "dangling target handle is invalidated")
	_, ok := w.Actor(a.ID)
	assert.False(t, ok)
}

func TestWorld_Reap_KeepsLiveTargets(t *testing.T) {
	w := NewWorld()
	p := NewPlayer(w.NextID(), 0, 0, 32, 64, PlayerStats{MaxHealth: 10})
	w.SetPlayer(p)
	e := NewEnemy(w.NextID(), 0, 0, 32, 32, "slime", EnemyStats{MaxHealth: 10}, true)
	e.Target = p.ID
	w.AddEnemy(e)
	proj := NewProjectile(w.NextID(), p.ID, 0, 0, 10, 0, 100, 1)
	proj.Active = false
	w.AddProjectile(proj)

	assert.Equal(t, 1, w.Reap())
	assert.Equal(t, p.ID, e.Target)
	assert.Equal(t, 1, w.CountEnemies())
}
