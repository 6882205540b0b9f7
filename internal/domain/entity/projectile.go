package entity

import "math"

// Projectile represents a projectile entity (arrows, thrown rocks)
type Projectile struct {
	Body
	Owner  EntityID
	Damage int

	StartX       float64
	MaxRange     float64
	MaxFallSpeed float64

	// Stuck state (when hitting a platform)
	Stuck         bool
	StuckTimer    float64
	StuckDuration float64
	StuckRotation float64
}

// NewProjectile creates a projectile fired from x, y toward targetX, targetY
func NewProjectile(id, owner EntityID, x, y, targetX, targetY, speed float64, damage int) *Projectile {
	dx := targetX - x
	dy := targetY - y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		dist = 1
	}

	p := &Projectile{
		Body:   NewBody(id, x, y, 12, 4),
		Owner:  owner,
		Damage: damage,
		StartX: x,
	}
	p.Health = 1
	p.VX = dx / dist * speed
	p.VY = dy / dist * speed
	p.FacingRight = p.VX >= 0
	return p
}

// StickToWall makes the projectile stick where it hit
func (p *Projectile) StickToWall(duration float64) {
	p.StuckRotation = math.Atan2(p.VY, p.VX) // Save rotation before clearing velocity
	p.Stuck = true
	p.StuckTimer = 0
	p.StuckDuration = duration
	p.VX = 0
	p.VY = 0
}

// OutOfRange returns true once the projectile travelled past its max range
func (p *Projectile) OutOfRange() bool {
	return p.MaxRange > 0 && math.Abs(p.X-p.StartX) > p.MaxRange
}

// GetAlpha returns the alpha value (0-1) for rendering, fading in last second
func (p *Projectile) GetAlpha() float64 {
	if !p.Stuck {
		return 1.0
	}
	fadeStart := p.StuckDuration - 1.0
	if p.StuckTimer < fadeStart {
		return 1.0
	}
	return math.Max(0, 1.0-(p.StuckTimer-fadeStart)/1.0)
}

// Rotation returns the rotation angle based on velocity vector
func (p *Projectile) Rotation() float64 {
	if p.Stuck {
		return p.StuckRotation
	}
	return math.Atan2(p.VY, p.VX)
}

// Deactivate marks the projectile as inactive
func (p *Projectile) Deactivate() {
	p.Active = false
}
