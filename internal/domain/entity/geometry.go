package entity

import "math"

// Rect is an axis-aligned rectangle in world pixels.
// X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Left returns the left edge
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Bounds returns the collision rectangle of a body:
// position + collision offset, sized by the collision size when set.
func Bounds(b *Body) Rect {
	w, h := b.Width, b.Height
	if b.CollisionWidth > 0 {
		w = b.CollisionWidth
	}
	if b.CollisionHeight > 0 {
		h = b.CollisionHeight
	}
	return Rect{
		X: b.X + b.OffsetX,
		Y: b.Y + b.OffsetY,
		W: math.Max(0, w),
		H: math.Max(0, h),
	}
}

// Overlaps is the strict AABB test. Touching edges do not overlap, and an
// empty rectangle overlaps nothing.
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// OverlapsX reports whether the horizontal spans strictly overlap.
func OverlapsX(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X
}

// Distance returns the Euclidean distance between the centers of two rectangles.
func Distance(a, b Rect) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(bx-ax, by-ay)
}

// Penetration returns the overlap depth along each axis.
// Values are only meaningful when the rectangles overlap.
func Penetration(a, b Rect) (overlapX, overlapY float64) {
	overlapX = math.Min(a.Right()-b.Left(), b.Right()-a.Left())
	overlapY = math.Min(a.Bottom()-b.Top(), b.Bottom()-a.Top())
	return overlapX, overlapY
}
