package entity

// PlayerStats holds player tuning values
type PlayerStats struct {
	MaxHealth      int
	Iframes        float64 // seconds of invincibility after a hit
	StunDuration   float64
	KnockbackForce float64
	KnockbackUp    float64
}

// Player represents the player entity
type Player struct {
	Body
	Stats PlayerStats

	Gold  int
	Score int

	// Timers
	CoyoteTimer     float64
	JumpBufferTimer float64
	IframeTimer     float64
	StunTimer       float64

	WasOnGround bool
}

// NewPlayer creates a new player with full health
func NewPlayer(id EntityID, x, y, w, h float64, stats PlayerStats) *Player {
	p := &Player{
		Body:  NewBody(id, x, y, w, h),
		Stats: stats,
	}
	p.Health = stats.MaxHealth
	p.FacingRight = true
	return p
}

// IsInvincible returns true if player is currently invincible
func (p *Player) IsInvincible() bool {
	return p.IframeTimer > 0
}

// IsStunned returns true if player is currently stunned
func (p *Player) IsStunned() bool {
	return p.StunTimer > 0
}

// TakeDamage applies damage and knockback away from source.
// Damage is rejected during iframes or after death.
func (p *Player) TakeDamage(amount int, source Actor) (int, bool) {
	if amount <= 0 || !p.IsAlive() || p.IsInvincible() {
		return 0, false
	}

	p.Health -= amount
	p.IframeTimer = p.Stats.Iframes
	p.StunTimer = p.Stats.StunDuration

	dir := knockbackDir(p.HitRect(), source, p.FacingRight)
	p.VX = dir * p.Stats.KnockbackForce
	p.VY = -p.Stats.KnockbackUp
	p.OnGround = false
	return amount, true
}
