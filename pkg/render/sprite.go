// pkg/render/sprite.go
package render

import "github.com/hajimehoshi/ebiten/v2"

// DrawSprite stretches img into the box (x, y, w, h). A nil image is skipped,
// which is how sprites that have not loaded yet are left out of a frame.
func DrawSprite(target, img *ebiten.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	target.DrawImage(img, op)
}
