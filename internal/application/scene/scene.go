// Package scene defines the Scene interface for viewer screens.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to close the window cleanly
var ErrQuit = errors.New("quit requested")

// Scene is one screen of the viewer.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one frame of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns an error to terminate the loop.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}
