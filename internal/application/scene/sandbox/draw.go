package sandbox

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/platformsim/internal/application/state"
	"github.com/younwookim/platformsim/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorGround     = color.RGBA{80, 80, 100, 255}
	colorFloating   = color.RGBA{100, 110, 140, 255}
	colorOneWay     = color.RGBA{120, 160, 200, 255}
	colorDecor      = color.RGBA{60, 60, 70, 128}
	colorProp       = color.RGBA{150, 110, 70, 255}
	colorPropOnTop  = color.RGBA{220, 170, 90, 255}
	colorSpike      = color.RGBA{200, 50, 50, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorPlayerHurt = color.RGBA{200, 200, 100, 255}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorEnemyStun  = color.RGBA{200, 160, 220, 255}
	colorArrow      = color.RGBA{230, 230, 230, 255}
	colorGold       = color.RGBA{255, 215, 0, 255}
	colorPotion     = color.RGBA{220, 80, 160, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 150}
)

// Draw renders the world and the debug overlay
func (s *Sandbox) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ox, oy := s.camX, s.camY
	if s.shake > 0 {
		ox += s.shake * (2*s.shakeRNG.Float64() - 1)
		oy += s.shake * (2*s.shakeRNG.Float64() - 1)
	}

	w := s.sim.World
	for i := range w.Platforms {
		p := &w.Platforms[i]
		if !p.Valid() {
			continue
		}
		drawRect(screen, p.Rect(), ox, oy, platformColor(p))
	}
	for _, pr := range w.Props {
		c := colorProp
		if pr.PlayerOnTopCurrent {
			c = colorPropOnTop
		}
		drawRect(screen, pr.LandingRect(), ox, oy, c)
	}
	for _, h := range w.Hazards {
		drawRect(screen, h.HazardRect(), ox, oy, colorSpike)
	}
	for _, it := range w.Items {
		if !it.Active {
			continue
		}
		c := colorGold
		if it.Kind != "gold" {
			c = colorPotion
		}
		drawRect(screen, entity.Bounds(&it.Body), ox, oy, c)
	}
	for _, e := range w.Enemies {
		s.drawEnemy(screen, e, ox, oy)
	}
	for _, pj := range w.Projectiles {
		drawProjectile(screen, pj, ox, oy)
	}
	if p := w.Player; p != nil && p.Active {
		c := colorPlayer
		if p.IsInvincible() {
			c = colorPlayerHurt
		}
		drawRect(screen, entity.Bounds(&p.Body), ox, oy, c)
	}

	s.drawHUD(screen)
}

func (s *Sandbox) drawEnemy(screen *ebiten.Image, e *entity.Enemy, ox, oy float64) {
	if !e.Active {
		return
	}
	c := colorEnemy
	if e.IsStunned() {
		c = colorEnemyStun
	}
	r := entity.Bounds(&e.Body)
	drawRect(screen, r, ox, oy, fade(c, e.Alpha))

	if s.showInfo {
		ebitenutil.DebugPrintAt(screen, enemyLabel(e), int(r.X-ox), int(r.Y-oy)-30)
	}
}

func drawProjectile(screen *ebiten.Image, p *entity.Projectile, ox, oy float64) {
	if !p.Active {
		return
	}
	c := fade(colorArrow, p.GetAlpha())
	cx, cy := p.Center()
	angle := p.Rotation()
	tailX := cx - math.Cos(angle)*p.Width/2
	tailY := cy - math.Sin(angle)*p.Width/2
	tipX := cx + math.Cos(angle)*p.Width/2
	tipY := cy + math.Sin(angle)*p.Width/2
	ebitenutil.DrawLine(screen, tailX-ox, tailY-oy, tipX-ox, tipY-oy, c)
	ebitenutil.DrawRect(screen, tipX-ox-1, tipY-oy-1, 2, 2, c)
}

func (s *Sandbox) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, s.statusLine())
	if s.lastDeath != "" {
		ebitenutil.DebugPrintAt(screen, s.lastDeath, 10, s.screenH-20)
	}

	var text string
	switch s.clock.State() {
	case state.StatePaused:
		text = "PAUSED  (P resume, N step)"
	case state.StateGameOver:
		text = "GAME OVER  (R restart)"
	case state.StateReplayDone:
		text = "REPLAY DONE  (R replay again)"
	default:
		return
	}
	ebitenutil.DrawRect(screen, 0, 0, float64(s.screenW), float64(s.screenH), colorOverlay)
	ebitenutil.DebugPrintAt(screen, text, s.screenW/2-90, s.screenH/2-8)
}

func platformColor(p *entity.Platform) color.RGBA {
	switch {
	case !p.Solid || p.Type == entity.PlatformDecor:
		return colorDecor
	case p.Type == entity.PlatformOneWay:
		return colorOneWay
	case p.Type == entity.PlatformFloating:
		return colorFloating
	default:
		return colorGround
	}
}

// fade applies a 0-1 opacity to an opaque color
func fade(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * clamp(alpha, 0, 1))}
}

func drawRect(screen *ebiten.Image, r entity.Rect, ox, oy float64, c color.Color) {
	ebitenutil.DrawRect(screen, r.X-ox, r.Y-oy, r.W, r.H, c)
}
