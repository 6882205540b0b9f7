package system

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

// Spawner turns config archetypes into registered world entities
type Spawner struct {
	physics  *config.PhysicsConfig
	entities *config.EntitiesConfig
}

// NewSpawner creates a spawner for the given configuration
func NewSpawner(cfg *config.GameConfig) *Spawner {
	return &Spawner{physics: cfg.Physics, entities: cfg.Entities}
}

// SetConfig swaps the archetypes (hot reload). Existing entities keep
// the stats they were created with.
func (s *Spawner) SetConfig(cfg *config.GameConfig) {
	s.physics = cfg.Physics
	s.entities = cfg.Entities
}

// SpawnPlayer creates and installs the player at x, y
func (s *Spawner) SpawnPlayer(w *entity.World, x, y float64) *entity.Player {
	pc := s.entities.Player
	stats := entity.PlayerStats{
		MaxHealth:      pc.Stats.MaxHealth,
		Iframes:        s.physics.Combat.Iframes,
		StunDuration:   s.physics.Combat.Knockback.StunDuration,
		KnockbackForce: s.physics.Combat.Knockback.Force,
		KnockbackUp:    s.physics.Combat.Knockback.UpForce,
	}

	p := entity.NewPlayer(w.NextID(), x, y, pc.Size.Width, pc.Size.Height, stats)
	applyHitbox(&p.Body, pc.Hitbox)
	p.Gravity = s.physics.Physics.Gravity
	w.SetPlayer(p)
	return p
}

// SpawnEnemy creates and registers an enemy from a stage spawn entry
func (s *Spawner) SpawnEnemy(w *entity.World, spawn config.EnemySpawnConfig) (*entity.Enemy, error) {
	ec, ok := s.entities.Enemies[spawn.Type]
	if !ok {
		return nil, fmt.Errorf("unknown enemy type %q", spawn.Type)
	}

	stats := entity.EnemyStats{
		MaxHealth:      ec.Stats.MaxHealth,
		ContactDamage:  ec.Stats.ContactDamage,
		AttackDamage:   ec.Stats.AttackDamage,
		ScoreValue:     ec.Stats.Score,
		PatrolDistance: ec.AI.PatrolDistance,
		PatrolSpeed:    ec.AI.PatrolSpeed,
		ChaseSpeed:     ec.AI.ChaseSpeed,
		DetectionRange: ec.AI.DetectRange,
		AttackRange:    ec.AI.AttackRange,
		SightHeight:    ec.AI.SightHeight,
		ReactionDelay:  ec.AI.ReactionDelay,
		SearchDuration: ec.AI.SearchTime,
		AttackDuration: ec.AI.AttackDuration,
		AttackCooldown: ec.AI.AttackCooldown,
		HurtDuration:   ec.AI.HurtDuration,
		FadeDuration:   ec.AI.FadeDuration,
		KnockbackForce: ec.AI.Knockback.Force,
		KnockbackUp:    ec.AI.Knockback.UpForce,
		DropChance:     ec.Drops.Chance,
	}
	if spawn.PatrolDistance > 0 {
		stats.PatrolDistance = spawn.PatrolDistance
	}
	for _, d := range ec.Drops.Table {
		stats.Drops = append(stats.Drops, entity.DropEntry{Item: d.Item, Chance: d.Chance, Amount: d.Amount})
	}

	e := entity.NewEnemy(w.NextID(), spawn.X, spawn.Y, ec.Size.Width, ec.Size.Height, spawn.Type, stats, spawn.FacingRight)
	applyHitbox(&e.Body, ec.Hitbox)
	e.Gravity = s.physics.Physics.Gravity
	e.Invulnerable = ec.Invulnerable
	w.AddEnemy(e)
	return e, nil
}

// SpawnItem creates and registers a loose item popping up at x, y
func (s *Spawner) SpawnItem(w *entity.World, kind string, amount int, x, y float64) (*entity.Item, error) {
	ic, ok := s.entities.Items[kind]
	if !ok {
		return nil, fmt.Errorf("unknown item type %q", kind)
	}

	it := entity.NewItem(w.NextID(), x, y, ic.Size, kind, amount, ic.CollectDelay, ic.CollectRadius)
	it.Gravity = s.physics.Physics.Gravity
	w.AddItem(it)
	return it, nil
}

// SpawnProjectile fires a projectile of the given kind from the owner's
// center toward the target point
func (s *Spawner) SpawnProjectile(w *entity.World, kind string, owner entity.Actor, targetX, targetY float64) (*entity.Projectile, error) {
	pc, ok := s.entities.Projectiles[kind]
	if !ok {
		return nil, fmt.Errorf("unknown projectile type %q", kind)
	}

	x, y := owner.Center()
	p := entity.NewProjectile(w.NextID(), owner.EntityID(), x, y, targetX, targetY, pc.Speed, pc.Damage)
	if pc.Hitbox.Width > 0 && pc.Hitbox.Height > 0 {
		p.Width, p.Height = pc.Hitbox.Width, pc.Hitbox.Height
	}
	p.X -= p.Width / 2
	p.Y -= p.Height / 2
	p.StartX = p.X
	p.Gravity = pc.Gravity
	p.MaxFallSpeed = pc.MaxFallSpeed
	p.MaxRange = pc.MaxRange
	w.AddProjectile(p)
	return p, nil
}

func applyHitbox(b *entity.Body, hb config.Rect) {
	b.OffsetX = hb.OffsetX
	b.OffsetY = hb.OffsetY
	b.CollisionWidth = hb.Width
	b.CollisionHeight = hb.Height
}

// BuildWorld converts a stage into a fresh world. Malformed platforms are
// kept (the resolver ignores them) but logged; unknown archetypes are
// skipped with a warning.
func BuildWorld(spawner *Spawner, stage *config.StageConfig) *entity.World {
	w := entity.NewWorld()

	platforms := make([]entity.Platform, 0, len(stage.Platforms))
	for i, pc := range stage.Platforms {
		p := entity.Platform{
			X:      pc.X,
			Y:      pc.Y,
			Width:  pc.W,
			Height: pc.H,
			Type:   entity.ParsePlatformType(pc.Type),
			Solid:  pc.IsSolid(),
		}
		if !p.Valid() {
			logger.Log.WithFields(logrus.Fields{
				"stage": stage.ID,
				"index": i,
			}).Warn("Stage has a malformed platform")
		}
		platforms = append(platforms, p)
	}
	w.SetPlatforms(platforms)

	for _, pc := range stage.Props {
		w.Props = append(w.Props, &entity.Prop{Name: pc.Name, X: pc.X, Y: pc.Y, Width: pc.W, Height: pc.H})
	}

	for _, hc := range stage.Hazards {
		switch hc.Type {
		case "spike", "":
			w.Hazards = append(w.Hazards, &entity.Spike{X: hc.X, Y: hc.Y, Width: hc.W, Height: hc.H, Damage: hc.Damage})
		default:
			logger.Log.WithField("type", hc.Type).Warn("Unknown hazard type")
		}
	}

	spawner.SpawnPlayer(w, stage.PlayerSpawn.X, stage.PlayerSpawn.Y)

	for _, ec := range stage.Enemies {
		if _, err := spawner.SpawnEnemy(w, ec); err != nil {
			logger.Log.WithError(err).WithField("stage", stage.ID).Warn("Skipping enemy spawn")
		}
	}

	for _, ic := range stage.Items {
		it, err := spawner.SpawnItem(w, ic.Type, ic.Amount, ic.X, ic.Y)
		if err != nil {
			logger.Log.WithError(err).WithField("stage", stage.ID).Warn("Skipping item spawn")
			continue
		}
		// Placed items rest where the stage puts them
		it.VX, it.VY = 0, 0
		it.CollectDelay = 0
	}

	logger.Log.WithFields(logrus.Fields{
		"stage":     stage.ID,
		"platforms": len(w.Platforms),
		"enemies":   len(w.Enemies),
		"items":     len(w.Items),
	}).Info("World built")

	return w
}
