package entity

// EntityID is a non-owning handle into the world registry.
// 0 is "none".
type EntityID uint32

// NoEntity is the empty handle
const NoEntity EntityID = 0

// PlatformType represents the type of a platform
type PlatformType int

const (
	PlatformGround PlatformType = iota
	PlatformFloating
	PlatformOneWay // resolved only from above while descending
	PlatformDecor
)

// String returns the string representation of the platform type
func (t PlatformType) String() string {
	switch t {
	case PlatformGround:
		return "ground"
	case PlatformFloating:
		return "floating"
	case PlatformOneWay:
		return "oneway"
	case PlatformDecor:
		return "decor"
	default:
		return "unknown"
	}
}

// ParsePlatformType converts a config name to a PlatformType
func ParsePlatformType(name string) PlatformType {
	switch name {
	case "floating":
		return PlatformFloating
	case "oneway", "one-way":
		return PlatformOneWay
	case "decor":
		return PlatformDecor
	default:
		return PlatformGround
	}
}

// Platform is a static rectangle. Platforms never move during simulation;
// the world replaces them wholesale when a stage is (re)built.
type Platform struct {
	X, Y          float64
	Width, Height float64
	Type          PlatformType
	Solid         bool
}

// Rect returns the platform rectangle
func (p *Platform) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Valid reports whether the platform has a usable size.
// Malformed platforms are never resolved against.
func (p *Platform) Valid() bool {
	return p.Width > 0 && p.Height > 0
}

// Collides reports whether the resolver should consider this platform at all
func (p *Platform) Collides() bool {
	return p.Solid && p.Valid()
}
