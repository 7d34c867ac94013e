// pkg/render/canvas.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Canvas receives the primitives a frame is made of, in paint order.
type Canvas interface {
	Clear(clr color.Color)
	Sprite(img *ebiten.Image, x, y, w, h float64)
	Burst(cx, cy float64, clr color.RGBA)
	Label(s string, x, y float64, clr color.Color)
}

var _ Canvas = (*Screen)(nil)

// Screen paints onto an ebiten image. Target is swapped every frame.
type Screen struct {
	Target *ebiten.Image
	burst  *BurstRenderer
	face   font.Face
}

func NewScreen(face font.Face) *Screen {
	return &Screen{
		burst: NewBurstRenderer(),
		face:  face,
	}
}

func (s *Screen) Clear(clr color.Color) {
	s.Target.Fill(clr)
}

func (s *Screen) Sprite(img *ebiten.Image, x, y, w, h float64) {
	DrawSprite(s.Target, img, x, y, w, h)
}

func (s *Screen) Burst(cx, cy float64, clr color.RGBA) {
	s.burst.Draw(s.Target, cx, cy, clr)
}

func (s *Screen) Label(str string, x, y float64, clr color.Color) {
	DrawCentered(s.Target, str, s.face, x, y, clr)
}
