// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LoadingIndicator is a pulsing dot with a label, shown while images load.
type LoadingIndicator struct {
	X, Y   float32
	Radius float32
	Label  string
	Color  color.RGBA
}

func NewLoadingIndicator(x, y, radius float32, label string, clr color.RGBA) *LoadingIndicator {
	return &LoadingIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
		Label:  label,
		Color:  clr,
	}
}

// PulseScale returns the dot's scale at a frame: one beat per second at 60 TPS.
func PulseScale(frame int) float32 {
	phase := float64(frame%60) / 60
	return float32(1.0 + 0.3*math.Exp(-phase*8))
}

// Draw paints the indicator for the given frame.
func (i *LoadingIndicator) Draw(screen *ebiten.Image, frame int) {
	r := i.Radius * PulseScale(frame)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, i.Color, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
	ebitenutil.DebugPrintAt(screen, i.Label, int(i.X+i.Radius*2), int(i.Y)-8)
}
