package entity

// Hazard is a static damage source checked against the player after collision
type Hazard interface {
	HazardRect() Rect
	ContactDamage() int
}

// Spike is a rectangular hazard that hurts on contact
type Spike struct {
	X, Y, Width, Height float64
	Damage              int
}

// HazardRect returns the damaging area
func (s *Spike) HazardRect() Rect {
	return Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height}
}

// ContactDamage returns the damage dealt per contact
func (s *Spike) ContactDamage() int {
	return s.Damage
}
