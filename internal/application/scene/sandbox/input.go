package sandbox

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platformsim/internal/application/system"
)

// Commands are the viewer hotkeys pressed this frame
type Commands struct {
	Quit       bool
	Pause      bool
	Step       bool
	Restart    bool
	ToggleInfo bool
	Save       bool
}

// Device supplies player input and viewer commands once per frame
type Device interface {
	// Input returns the player's commands. camX, camY convert the cursor
	// to world coordinates.
	Input(camX, camY float64) system.PlayerInput
	Commands() Commands
}

// Keyboard reads the ebiten keyboard and mouse
type Keyboard struct{}

// Input polls movement keys and the mouse
func (Keyboard) Input(camX, camY float64) system.PlayerInput {
	mx, my := ebiten.CursorPosition()

	jumpKeys := []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ, ebiten.KeyW}
	in := system.PlayerInput{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Shoot: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			inpututil.IsKeyJustPressed(ebiten.KeyX),
		AimX: float64(mx) + camX,
		AimY: float64(my) + camY,
	}
	for _, k := range jumpKeys {
		in.Jump = in.Jump || ebiten.IsKeyPressed(k)
		in.JumpPressed = in.JumpPressed || inpututil.IsKeyJustPressed(k)
		in.JumpReleased = in.JumpReleased || inpututil.IsKeyJustReleased(k)
	}
	return in
}

// Commands polls the viewer hotkeys
func (Keyboard) Commands() Commands {
	return Commands{
		Quit:       inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Pause:      inpututil.IsKeyJustPressed(ebiten.KeyP),
		Step:       inpututil.IsKeyJustPressed(ebiten.KeyN),
		Restart:    inpututil.IsKeyJustPressed(ebiten.KeyR),
		ToggleInfo: inpututil.IsKeyJustPressed(ebiten.KeyF1),
		Save:       inpututil.IsKeyJustPressed(ebiten.KeyF5),
	}
}
