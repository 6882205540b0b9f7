package system

import (
	"github.com/younwookim/platformsim/internal/domain/entity"
	"github.com/younwookim/platformsim/internal/infrastructure/config"
)

// stunFriction bleeds off knockback while the player is stunned
const stunFriction = 0.9

// PlayerInput is one tick of player commands, already decoded from the device
type PlayerInput struct {
	Left         bool    `json:"l,omitempty" msgpack:"l,omitempty"`
	Right        bool    `json:"r,omitempty" msgpack:"r,omitempty"`
	Jump         bool    `json:"j,omitempty" msgpack:"j,omitempty"`
	JumpPressed  bool    `json:"jp,omitempty" msgpack:"jp,omitempty"`
	JumpReleased bool    `json:"jr,omitempty" msgpack:"jr,omitempty"`
	Shoot        bool    `json:"s,omitempty" msgpack:"s,omitempty"`
	AimX         float64 `json:"ax,omitempty" msgpack:"ax,omitempty"`
	AimY         float64 `json:"ay,omitempty" msgpack:"ay,omitempty"`
}

// ControlSystem turns player input into velocity
type ControlSystem struct {
	config  *config.PhysicsConfig
	intents []Intent
}

// NewControlSystem creates a new control system
func NewControlSystem(cfg *config.PhysicsConfig) *ControlSystem {
	return &ControlSystem{config: cfg, intents: make([]Intent, 0, 2)}
}

// SetConfig swaps the tuning (hot reload)
func (s *ControlSystem) SetConfig(cfg *config.PhysicsConfig) {
	s.config = cfg
}

// UpdatePlayer updates the player based on input and returns the intents
// it raised. The returned slice is reused by the next call.
func (s *ControlSystem) UpdatePlayer(player *entity.Player, input PlayerInput, dt float64) []Intent {
	s.intents = s.intents[:0]

	s.updateTimers(player, dt)

	// Skip input if stunned
	if player.IsStunned() {
		player.VX *= stunFriction
		return s.intents
	}

	s.handleMovement(player, input, dt)
	s.handleJump(player, input)

	if input.Shoot {
		s.intents = append(s.intents, ShootIntent{Owner: player.ID, TargetX: input.AimX, TargetY: input.AimY})
	}
	return s.intents
}

func (s *ControlSystem) updateTimers(player *entity.Player, dt float64) {
	// Coyote time
	if player.OnGround {
		player.CoyoteTimer = s.config.Jump.CoyoteTime
	} else if player.CoyoteTimer > 0 {
		player.CoyoteTimer -= dt
	}

	if player.JumpBufferTimer > 0 {
		player.JumpBufferTimer -= dt
	}
	if player.IframeTimer > 0 {
		player.IframeTimer -= dt
	}
	if player.StunTimer > 0 {
		player.StunTimer -= dt
	}

	player.WasOnGround = player.OnGround
}

func (s *ControlSystem) handleMovement(player *entity.Player, input PlayerInput, dt float64) {
	targetVX := 0.0
	maxSpeed := s.config.Movement.MaxSpeed

	if input.Left {
		targetVX = -maxSpeed
		player.FacingRight = false
	}
	if input.Right {
		targetVX = maxSpeed
		player.FacingRight = true
	}

	// Air control
	if !player.OnGround {
		targetVX *= s.config.Movement.AirControl
	}

	if targetVX != 0 {
		accel := s.config.Movement.Acceleration

		// Turnaround boost
		if (player.VX > 0 && targetVX < 0) || (player.VX < 0 && targetVX > 0) {
			accel *= s.config.Movement.TurnaroundBoost
		}

		if player.VX < targetVX {
			player.VX += accel * dt
			if player.VX > targetVX {
				player.VX = targetVX
			}
		} else if player.VX > targetVX {
			player.VX -= accel * dt
			if player.VX < targetVX {
				player.VX = targetVX
			}
		}
		return
	}

	decel := s.config.Movement.Deceleration * dt
	if player.VX > 0 {
		player.VX -= decel
		if player.VX < 0 {
			player.VX = 0
		}
	} else if player.VX < 0 {
		player.VX += decel
		if player.VX > 0 {
			player.VX = 0
		}
	}
}

func (s *ControlSystem) handleJump(player *entity.Player, input PlayerInput) {
	// Buffer jump input
	if input.JumpPressed {
		player.JumpBufferTimer = s.config.Jump.JumpBuffer
	}

	canJump := player.OnGround || player.CoyoteTimer > 0
	wantsJump := player.JumpBufferTimer > 0

	if canJump && wantsJump {
		player.VY = -s.config.Jump.Force
		player.OnGround = false
		player.CoyoteTimer = 0
		player.JumpBufferTimer = 0
		s.intents = append(s.intents, JumpIntent{EntityID: player.ID, Force: s.config.Jump.Force})
	}

	// Variable jump height (release to reduce upward velocity)
	if input.JumpReleased && player.VY < 0 {
		player.VY *= s.config.Jump.VariableJumpMultiplier
	}
}
