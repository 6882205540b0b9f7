package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
)

const testConfigDir = "../../../cmd/sandbox/configs"

func loadTestConfigs(t testing.TB) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader(testConfigDir).LoadAll()
	require.NoError(t, err)
	return cfg
}

func loadTestStage(t testing.TB, name string) *config.StageConfig {
	t.Helper()
	stage, err := config.NewLoader(testConfigDir).LoadStage(name)
	require.NoError(t, err)
	return stage
}

func TestBuildWorld(t *testing.T) {
	cfg := loadTestConfigs(t)
	stage := loadTestStage(t, "demo")

	w := BuildWorld(NewSpawner(cfg), stage)

	require.NotNil(t, w)
	assert.Len(t, w.Platforms, 6)
	assert.Equal(t, entity.PlatformOneWay, w.Platforms[3].Type)
	assert.False(t, w.Platforms[5].Solid)
	assert.Len(t, w.Props, 2)
	assert.Len(t, w.Hazards, 1)
	assert.Len(t, w.Enemies, 3)
	assert.Len(t, w.Items, 1)

	t.Run("player uses the configured hitbox", func(t *testing.T) {
		p := w.Player
		require.NotNil(t, p)
		assert.Equal(t, 48.0, p.X)
		assert.Equal(t, 300.0, p.Y)
		assert.Equal(t, 4.0, p.OffsetX)
		assert.Equal(t, 24.0, p.CollisionWidth)
		assert.Equal(t, cfg.Physics.Physics.Gravity, p.Gravity)
		assert.Equal(t, cfg.Entities.Player.Stats.MaxHealth, p.Health)
		assert.Equal(t, cfg.Physics.Combat.Iframes, p.Stats.Iframes)
	})

	t.Run("enemies come from archetypes", func(t *testing.T) {
		slime := w.Enemies[0]
		assert.Equal(t, "slime", slime.Kind)
		assert.Equal(t, entity.StatePatrol, slime.State)
		assert.Equal(t, 300.0, slime.PatrolStartX)
		assert.Equal(t, cfg.Entities.Enemies["slime"].AI.PatrolDistance, slime.Stats.PatrolDistance)
		assert.Len(t, slime.Stats.Drops, 2)

		assert.Equal(t, 80.0, w.Enemies[1].Stats.PatrolDistance, "spawn overrides patrol distance")
		assert.Equal(t, -1, w.Enemies[1].PatrolDir)
	})

	t.Run("placed items rest", func(t *testing.T) {
		it := w.Items[0]
		assert.Equal(t, 0.0, it.VX)
		assert.Equal(t, 0.0, it.VY)
		assert.True(t, it.CanCollect())
	})

	t.Run("ids are unique and registered", func(t *testing.T) {
		seen := map[entity.EntityID]bool{}
		ids := []entity.EntityID{w.Player.ID, w.Items[0].ID}
		for _, e := range w.Enemies {
			ids = append(ids, e.ID)
		}
		for _, id := range ids {
			assert.False(t, seen[id])
			seen[id] = true
			_, ok := w.Actor(id)
			assert.True(t, ok)
		}
	})
}

func TestBuildWorld_YAMLStage(t *testing.T) {
	cfg := loadTestConfigs(t)
	stage := loadTestStage(t, "tower")

	w := BuildWorld(NewSpawner(cfg), stage)

	assert.Len(t, w.Platforms, 7)
	assert.False(t, w.Platforms[6].Valid(), "malformed platform is kept but inert")
	assert.Len(t, w.Enemies, 2)
	assert.Equal(t, "potion", w.Items[0].Kind)
}

func TestBuildWorld_SkipsUnknownArchetypes(t *testing.T) {
	cfg := createTestGameConfig()
	stage := &config.StageConfig{
		ID:          "broken",
		PlayerSpawn: config.PositionConfig{X: 10, Y: 10},
		Platforms:   []config.PlatformConfig{{X: 0, Y: 100, W: 100, H: 10, Type: "ground"}},
		Hazards:     []config.HazardConfig{{Type: "lava", X: 0, Y: 0, W: 10, H: 10}},
		Enemies:     []config.EnemySpawnConfig{{Type: "dragon"}, {Type: "slime", X: 50, Y: 50}},
		Items:       []config.ItemSpawnConfig{{Type: "relic"}},
	}

	w := BuildWorld(NewSpawner(cfg), stage)

	assert.Len(t, w.Enemies, 1)
	assert.Empty(t, w.Items)
	assert.Empty(t, w.Hazards)
	assert.NotNil(t, w.Player)
}

func TestSpawner_SpawnProjectile(t *testing.T) {
	cfg := createTestGameConfig()
	spawner := NewSpawner(cfg)
	w := createTestWorld()
	player := spawner.SpawnPlayer(w, 100, 100)

	p, err := spawner.SpawnProjectile(w, PlayerProjectile, player, 1000, 132)
	require.NoError(t, err)

	cx, cy := p.Center()
	px, py := player.Center()
	assert.InDelta(t, px, cx, 1e-9)
	assert.InDelta(t, py, cy, 1e-9)
	assert.Equal(t, player.ID, p.Owner)
	assert.InDelta(t, 600.0, p.VX, 1e-9)
	assert.Equal(t, 400.0, p.MaxRange)
	assert.Len(t, w.Projectiles, 1)

	_, err = spawner.SpawnProjectile(w, "fireball", player, 0, 0)
	assert.Error(t, err)
}
