package entity

// DefaultGravity is the shared gravity constant (pixels/sec²) used when an
// entity does not carry its own value.
const DefaultGravity = 1500.0

// Body is the physical base of every kinetic entity.
// Position is the top-left corner in pixels; velocity is pixels per second.
type Body struct {
	ID EntityID

	X, Y          float64
	Width, Height float64
	VX, VY        float64

	// Collision bounds may differ from the visual bounds
	OffsetX, OffsetY float64
	CollisionWidth   float64 // 0 = Width
	CollisionHeight  float64 // 0 = Height

	Gravity     float64
	OnGround    bool
	OnWallLeft  bool
	OnWallRight bool
	Active      bool
	Health      int
	FacingRight bool
}

// NewBody creates an active body at the given pixel position
func NewBody(id EntityID, x, y, w, h float64) Body {
	return Body{
		ID:      id,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		Gravity: DefaultGravity,
		Active:  true,
	}
}

// EntityID returns the registry handle of the body
func (b *Body) EntityID() EntityID {
	return b.ID
}

// HitRect returns the collision rectangle in world coordinates
func (b *Body) HitRect() Rect {
	return Bounds(b)
}

// Center returns the center of the collision rectangle
func (b *Body) Center() (float64, float64) {
	return b.HitRect().Center()
}

// IsAlive returns true if the body is active and has health left
func (b *Body) IsAlive() bool {
	return b.Active && b.Health > 0
}

// SetHitX moves the body so that its collision rectangle starts at x
func (b *Body) SetHitX(x float64) {
	b.X = x - b.OffsetX
}

// SetHitY moves the body so that its collision rectangle starts at y
func (b *Body) SetHitY(y float64) {
	b.Y = y - b.OffsetY
}

// Actor is anything with a position in the world registry.
type Actor interface {
	EntityID() EntityID
	HitRect() Rect
	Center() (float64, float64)
	IsAlive() bool
}

// Damageable is an actor that accepts damage.
// ok is false when the damage was rejected.
type Damageable interface {
	Actor
	TakeDamage(amount int, source Actor) (applied int, ok bool)
}

// knockbackDir returns the horizontal direction pointing away from source.
func knockbackDir(self Rect, source Actor, facingRight bool) float64 {
	if source == nil {
		if facingRight {
			return -1
		}
		return 1
	}
	sx, _ := source.Center()
	cx, _ := self.Center()
	if sx > cx {
		return -1
	}
	if sx < cx {
		return 1
	}
	if facingRight {
		return -1
	}
	return 1
}
