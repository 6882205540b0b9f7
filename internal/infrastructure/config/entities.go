package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player      PlayerConfig                `json:"player"`
	Enemies     map[string]EnemyConfig      `json:"enemies"`
	Items       map[string]ItemConfig       `json:"items"`
	Projectiles map[string]ProjectileConfig `json:"projectiles"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is a collision box relative to the sprite origin
type Rect struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

type PlayerConfig struct {
	ID     string      `json:"id"`
	Size   SizeConfig  `json:"size"`
	Hitbox Rect        `json:"hitbox"`
	Stats  PlayerStats `json:"stats"`
}

type PlayerStats struct {
	MaxHealth int `json:"maxHealth"`
}

type EnemyConfig struct {
	ID           string     `json:"id"`
	Size         SizeConfig `json:"size"`
	Hitbox       Rect       `json:"hitbox"`
	Stats        EnemyStats `json:"stats"`
	AI           AIConfig   `json:"ai"`
	Drops        DropConfig `json:"drops"`
	Invulnerable bool       `json:"invulnerable,omitempty"`
}

type EnemyStats struct {
	MaxHealth     int `json:"maxHealth"`
	ContactDamage int `json:"contactDamage"`
	AttackDamage  int `json:"attackDamage"`
	Score         int `json:"score"`
}

// AIConfig tunes the enemy state machine. Durations are seconds.
type AIConfig struct {
	PatrolDistance float64         `json:"patrolDistance"`
	PatrolSpeed    float64         `json:"patrolSpeed"`
	ChaseSpeed     float64         `json:"chaseSpeed"`
	DetectRange    float64         `json:"detectRange"`
	AttackRange    float64         `json:"attackRange"`
	SightHeight    float64         `json:"sightHeight"`
	ReactionDelay  float64         `json:"reactionDelay"`
	SearchTime     float64         `json:"searchTime"`
	AttackDuration float64         `json:"attackDuration"`
	AttackCooldown float64         `json:"attackCooldown"`
	HurtDuration   float64         `json:"hurtDuration"`
	FadeDuration   float64         `json:"fadeDuration"`
	Knockback      KnockbackConfig `json:"knockback"`
}

type DropConfig struct {
	Chance float64           `json:"chance"`
	Table  []DropEntryConfig `json:"table"`
}

type DropEntryConfig struct {
	Item   string  `json:"item"`
	Chance float64 `json:"chance"`
	Amount int     `json:"amount"`
}

type ItemConfig struct {
	ID            string  `json:"id"`
	Size          float64 `json:"size"`
	CollectDelay  float64 `json:"collectDelay"`
	CollectRadius float64 `json:"collectRadius"`
}

type ProjectileConfig struct {
	ID           string  `json:"id"`
	Hitbox       Rect    `json:"hitbox"`
	Speed        float64 `json:"speed"`
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	MaxRange     float64 `json:"maxRange"`
	Damage       int     `json:"damage"`
}
