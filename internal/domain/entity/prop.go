package entity

// SoftLandingTarget is a prop the player can walk through horizontally but
// stand on when landing from above.
type SoftLandingTarget interface {
	LandingRect() Rect
	// BeginFrame latches last frame's on-top flag and clears the current one
	BeginFrame()
	SetPlayerOnTop(onTop bool)
	Landed() bool
	Departed() bool
}

// Prop is a small foreground object with soft-landing behavior
type Prop struct {
	Name string
	X, Y float64

	Width, Height    float64
	OffsetX, OffsetY float64

	PlayerOnTopCurrent bool
	WasOnTop           bool
}

// LandingRect returns the prop's bounds
func (p *Prop) LandingRect() Rect {
	return Rect{X: p.X + p.OffsetX, Y: p.Y + p.OffsetY, W: p.Width, H: p.Height}
}

// BeginFrame latches the previous frame's flag
func (p *Prop) BeginFrame() {
	p.WasOnTop = p.PlayerOnTopCurrent
	p.PlayerOnTopCurrent = false
}

// SetPlayerOnTop records this frame's query result
func (p *Prop) SetPlayerOnTop(onTop bool) {
	p.PlayerOnTopCurrent = onTop
}

// Landed is true on the frame the player arrives on top
func (p *Prop) Landed() bool {
	return p.PlayerOnTopCurrent && !p.WasOnTop
}

// Departed is true on the frame the player leaves the top
func (p *Prop) Departed() bool {
	return !p.PlayerOnTopCurrent && p.WasOnTop
}
