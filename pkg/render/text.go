// pkg/render/text.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// NewBoldFace loads the bundled Go Bold font at the given pixel size.
func NewBoldFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bold face: %w", err)
	}
	return face, nil
}

// DrawCentered draws s horizontally centered on x with its baseline at y.
func DrawCentered(target *ebiten.Image, s string, face font.Face, x, y float64, clr color.Color) {
	if face == nil {
		return
	}
	bounds := text.BoundString(face, s)
	textX := int(x) - bounds.Dx()/2 - bounds.Min.X
	text.Draw(target, s, face, textX, int(y), clr)
}
