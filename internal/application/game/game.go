// Package game drives the current Scene from ebiten's fixed-rate loop.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/platformsim/internal/application/scene"
	"github.com/younwookim/platformsim/internal/infrastructure/logger"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	frames  uint64
}

// New creates a new Game with the given initial scene. dt is the fixed
// step handed to every Update; ebiten's TPS should match it.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, dt float64) *Game {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.frames++
	next, err := g.current.Update(g.dt)
	if err != nil {
		if errors.Is(err, scene.ErrQuit) {
			g.current.OnExit()
			return ebiten.Termination
		}
		return err
	}

	if next != nil {
		logger.Log.WithField("frame", g.frames).Debug("Scene transition")
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Frames returns how many updates have run
func (g *Game) Frames() uint64 {
	return g.frames
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
