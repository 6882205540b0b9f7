package config

// StageConfig is the root config for stage files (JSON or YAML)
type StageConfig struct {
	ID          string             `json:"id" yaml:"id"`
	Name        string             `json:"name" yaml:"name"`
	Size        StageSizeConfig    `json:"size" yaml:"size"`
	PlayerSpawn PositionConfig     `json:"playerSpawn" yaml:"playerSpawn"`
	Platforms   []PlatformConfig   `json:"platforms" yaml:"platforms"`
	Props       []PropConfig       `json:"props" yaml:"props"`
	Hazards     []HazardConfig     `json:"hazards" yaml:"hazards"`
	Enemies     []EnemySpawnConfig `json:"enemies" yaml:"enemies"`
	Items       []ItemSpawnConfig  `json:"items" yaml:"items"`
}

type StageSizeConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type PositionConfig struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type PlatformConfig struct {
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
	W     float64 `json:"w" yaml:"w"`
	H     float64 `json:"h" yaml:"h"`
	Type  string  `json:"type" yaml:"type"`
	Solid *bool   `json:"solid,omitempty" yaml:"solid,omitempty"` // nil = solid
}

// IsSolid returns the solid flag, defaulting to true
func (p PlatformConfig) IsSolid() bool {
	return p.Solid == nil || *p.Solid
}

type PropConfig struct {
	Name string  `json:"name" yaml:"name"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	W    float64 `json:"w" yaml:"w"`
	H    float64 `json:"h" yaml:"h"`
}

type HazardConfig struct {
	Type   string  `json:"type" yaml:"type"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	W      float64 `json:"w" yaml:"w"`
	H      float64 `json:"h" yaml:"h"`
	Damage int     `json:"damage" yaml:"damage"`
}

type EnemySpawnConfig struct {
	Type           string  `json:"type" yaml:"type"`
	X              float64 `json:"x" yaml:"x"`
	Y              float64 `json:"y" yaml:"y"`
	FacingRight    bool    `json:"facingRight" yaml:"facingRight"`
	PatrolDistance float64 `json:"patrolDistance,omitempty" yaml:"patrolDistance,omitempty"` // overrides the archetype
}

type ItemSpawnConfig struct {
	Type   string  `json:"type" yaml:"type"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Amount int     `json:"amount" yaml:"amount"`
}
