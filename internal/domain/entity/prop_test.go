package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProp_LandingRect(t *testing.T) {
	p := &Prop{X: 10, Y: 20, Width: 40, Height: 8, OffsetX: 2, OffsetY: 1}
	assert.Equal(t, Rect{X: 12, Y: 21, W: 40, H: 8}, p.LandingRect())
}

func TestProp_Edges(t *testing.T) {
	p := &Prop{}

	// Frame 1: player arrives
	p.BeginFrame()
	p.SetPlayerOnTop(true)
	assert.True(t, p.Landed())
	assert.False(t, p.Departed())

	// Frame 2: player stays
	p.BeginFrame()
	p.SetPlayerOnTop(true)
	assert.False(t, p.Landed())
	assert.False(t, p.Departed())

	// Frame 3: player leaves
	p.BeginFrame()
	assert.False(t, p.Landed())
	assert.True(t, p.Departed())

	// Frame 4: nothing
	p.BeginFrame()
	assert.False(t, p.Landed())
	assert.False(t, p.Departed())
}
