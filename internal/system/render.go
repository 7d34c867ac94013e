// internal/system/render.go
package system

import (
	"balloon-pump/internal/assets"
	"balloon-pump/internal/config"
	"balloon-pump/internal/entity"
	"balloon-pump/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ImageSource hands out loaded sprites. ok is false while a sprite is still loading.
type ImageSource interface {
	Image(name string) (*ebiten.Image, bool)
}

// RenderSystem draws the world. It only reads state.
type RenderSystem struct {
	world  *entity.World
	images ImageSource
	screen *render.Screen
}

func NewRenderSystem(world *entity.World, images ImageSource, face font.Face) *RenderSystem {
	return &RenderSystem{
		world:  world,
		images: images,
		screen: render.NewScreen(face),
	}
}

// Draw paints one frame onto screen.
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.screen.Target = screen
	s.Paint(s.screen)
}

// Paint issues the frame back to front: background, handle, flying balloons,
// the balloon on the pump, nozzle, pump body, pop effects.
func (s *RenderSystem) Paint(c render.Canvas) {
	w := s.world
	l := w.Layout
	c.Clear(config.BackgroundColor)

	s.sprite(c, assets.Background, 0, 0, l.Width, l.Height)

	handle := l.Handle.Offset(0, float64(w.HandlePushDown))
	s.sprite(c, assets.Handle, handle.X, handle.Y, handle.Width, handle.Height)

	for _, b := range w.Flying {
		s.drawBalloon(c, b.X, b.Y, b.Scale, b.ColorIndex, b.LetterIndex, true)
	}

	origin := l.BalloonOrigin(w.Active.Scale)
	s.drawBalloon(c, origin.X, origin.Y, w.Active.Scale, w.Active.ColorIndex, w.Active.LetterIndex, false)

	s.sprite(c, assets.Nozzle, l.Nozzle.X, l.Nozzle.Y, l.Nozzle.Width, l.Nozzle.Height)
	s.sprite(c, assets.PumpBody, l.Pump.X, l.Pump.Y, l.Pump.Width, l.Pump.Height)

	for _, effect := range w.PopEffects {
		cx, cy := effect.X+config.PopCenterX, effect.Y+config.PopCenterY
		c.Burst(cx, cy, effect.Color)
		c.Label(config.PopLabel, cx+2, cy+2, render.DarkenColor(effect.Color))
		c.Label(config.PopLabel, cx, cy, config.PopTextColor)
	}
}

// sprite skips images that have not loaded.
func (s *RenderSystem) sprite(c render.Canvas, name string, x, y, w, h float64) {
	img, ok := s.images.Image(name)
	if !ok {
		return
	}
	c.Sprite(img, x, y, w, h)
}

// drawBalloon draws string, body and letter in that order.
func (s *RenderSystem) drawBalloon(c render.Canvas, x, y, scale float64, colorIndex, letterIndex int, withString bool) {
	size := config.BalloonSize * scale
	if withString {
		s.sprite(c, assets.String,
			x+size/2-config.StringOffsetX*scale, y+size-config.StringOffsetY*scale,
			config.StringWidth*scale, config.StringHeight*scale)
	}

	s.sprite(c, assets.BalloonKey(colorIndex), x, y, size, size)

	letterSize := config.LetterSize * scale
	s.sprite(c, assets.LetterKey(letterIndex),
		x+size/2-letterSize/2, y+size/2-letterSize/2, letterSize, letterSize)
}
