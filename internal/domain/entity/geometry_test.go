package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name string
		body Body
		want Rect
	}{
		{
			name: "no offset",
			body: Body{X: 10, Y: 20, Width: 32, Height: 64},
			want: Rect{X: 10, Y: 20, W: 32, H: 64},
		},
		{
			name: "collision offset",
			body: Body{X: 10, Y: 20, Width: 32, Height: 64, OffsetX: 4, OffsetY: 8},
			want: Rect{X: 14, Y: 28, W: 32, H: 64},
		},
		{
			name: "collision size overrides sprite size",
			body: Body{X: 0, Y: 0, Width: 48, Height: 48, CollisionWidth: 20, CollisionHeight: 40},
			want: Rect{X: 0, Y: 0, W: 20, H: 40},
		},
		{
			name: "negative size clamps to zero",
			body: Body{X: 5, Y: 5, Width: -3, Height: -1},
			want: Rect{X: 5, Y: 5, W: 0, H: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.body
			assert.Equal(t, tt.want, Bounds(&b))
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
		{"zero width", Rect{X: 5, Y: 5, W: 0, H: 5}, false},
		{"zero height", Rect{X: 5, Y: 5, W: 5, H: 0}, false},
		{"negative size", Rect{X: 8, Y: 8, W: -4, H: -4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(base, tt.other))
			assert.Equal(t, tt.want, Overlaps(tt.other, base), "overlap must be symmetric")
		})
	}
}

func TestDistance(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 30, Y: 40, W: 10, H: 10}

	assert.InDelta(t, 50.0, Distance(a, b), 1e-9)
	assert.Equal(t, 0.0, Distance(a, a))
}

func TestPenetration(t *testing.T) {
	tests := []struct {
		name     string
		actor    Rect
		platform Rect
		wantX    float64
		wantY    float64
	}{
		// Inside the platform's span, X overlap is the far distance, so Y wins.
		{"sunk into wide floor", Rect{X: 90, Y: 330, W: 32, H: 64}, Rect{X: 0, Y: 390, W: 400, H: 20}, 122, 4},
		{"grazing a corner from the left", Rect{X: 70, Y: 350, W: 32, H: 64}, Rect{X: 100, Y: 380, W: 200, H: 40}, 2, 34},
		{"grazing a corner from the right", Rect{X: 297, Y: 390, W: 32, H: 64}, Rect{X: 100, Y: 380, W: 200, H: 40}, 3, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ox, oy := Penetration(tt.actor, tt.platform)
			assert.Equal(t, tt.wantX, ox)
			assert.Equal(t, tt.wantY, oy)
		})
	}
}

func TestRect_Center(t *testing.T) {
	cx, cy := Rect{X: 10, Y: 20, W: 30, H: 40}.Center()
	assert.Equal(t, 25.0, cx)
	assert.Equal(t, 40.0, cy)
	assert.False(t, math.IsNaN(cx))
}
