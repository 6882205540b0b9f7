package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Physics   PhysicsSettings `json:"physics"`
	Collision CollisionConfig `json:"collision"`
	Movement  MovementConfig  `json:"movement"`
	Jump      JumpConfig      `json:"jump"`
	Combat    CombatConfig    `json:"combat"`
	Feedback  FeedbackConfig  `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"` // 0 = unlimited
	ItemDamping  float64 `json:"itemDamping"`  // horizontal multiplier per tick for loose items
}

type CollisionConfig struct {
	SoftLandingTolerance float64 `json:"softLandingTolerance"` // pixels below a prop top that still lands
	BroadPhaseCell       int     `json:"broadPhaseCell"`       // spatial hash cell size (pixels)
}

type MovementConfig struct {
	Acceleration    float64 `json:"acceleration"`
	Deceleration    float64 `json:"deceleration"`
	MaxSpeed        float64 `json:"maxSpeed"`
	AirControl      float64 `json:"airControl"`
	TurnaroundBoost float64 `json:"turnaroundBoost"`
}

type JumpConfig struct {
	Force                  float64 `json:"force"`
	VariableJumpMultiplier float64 `json:"variableJumpMultiplier"`
	CoyoteTime             float64 `json:"coyoteTime"`
	JumpBuffer             float64 `json:"jumpBuffer"`
}

type CombatConfig struct {
	Iframes                 float64         `json:"iframes"`
	Knockback               KnockbackConfig `json:"knockback"`
	ProjectileStuckDuration float64         `json:"projectileStuckDuration"`
}

type KnockbackConfig struct {
	Force        float64 `json:"force"`
	UpForce      float64 `json:"upForce"`
	StunDuration float64 `json:"stunDuration"`
}

type FeedbackConfig struct {
	Hitstop     HitstopConfig     `json:"hitstop"`
	ScreenShake ScreenShakeConfig `json:"screenShake"`
}

type HitstopConfig struct {
	Enabled bool `json:"enabled"`
	Frames  int  `json:"frames"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}

// DefaultPhysicsConfig returns the tuning used when no physics.json is given
func DefaultPhysicsConfig() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  640,
			ScreenHeight: 480,
			Scale:        2,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:      1500,
			MaxFallSpeed: 900,
			ItemDamping:  0.95,
		},
		Collision: CollisionConfig{
			SoftLandingTolerance: 20,
			BroadPhaseCell:       64,
		},
		Movement: MovementConfig{
			Acceleration:    2400,
			Deceleration:    3000,
			MaxSpeed:        220,
			AirControl:      0.8,
			TurnaroundBoost: 1.5,
		},
		Jump: JumpConfig{
			Force:                  560,
			VariableJumpMultiplier: 0.5,
			CoyoteTime:             0.1,
			JumpBuffer:             0.1,
		},
		Combat: CombatConfig{
			Iframes: 1.0,
			Knockback: KnockbackConfig{
				Force:        220,
				UpForce:      180,
				StunDuration: 0.25,
			},
			ProjectileStuckDuration: 5,
		},
		Feedback: FeedbackConfig{
			Hitstop:     HitstopConfig{Enabled: true, Frames: 3},
			ScreenShake: ScreenShakeConfig{Enabled: true, Intensity: 4, Decay: 0.85},
		},
	}
}

// Dt returns the fixed simulation step in seconds
func (c *PhysicsConfig) Dt() float64 {
	if c.Display.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.Display.Framerate)
}
