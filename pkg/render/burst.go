// pkg/render/burst.go
package render

import (
	"image/color"
	"math"

	"balloon-pump/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BurstOutline returns the pop star as a single closed outline around (0, 0).
// Each petal rotates the frame a further tenth of a turn and adds three points:
// the center, the petal tip and the inner notch. The rotation is never reset,
// so the petals wind once around the center.
func BurstOutline() [][2]float64 {
	points := make([][2]float64, 0, config.PopPetals*3)
	step := 2 * math.Pi / config.PopPetals
	for i := 0; i < config.PopPetals; i++ {
		angle := step * float64(i+1)
		sin, cos := math.Sincos(angle)
		rotate := func(x, y float64) [2]float64 {
			return [2]float64{x*cos - y*sin, x*sin + y*cos}
		}
		points = append(points,
			rotate(0, 0),
			rotate(config.PopPetalTipX, config.PopPetalTipY),
			rotate(0, config.PopPetalInner),
		)
	}
	return points
}

// BurstRenderer fills pop stars. The outline is computed once and translated per draw.
type BurstRenderer struct {
	fillImg *ebiten.Image
	outline [][2]float64
	vs      []ebiten.Vertex
	is      []uint16
}

func NewBurstRenderer() *BurstRenderer {
	return &BurstRenderer{
		outline: BurstOutline(),
		vs:      make([]ebiten.Vertex, 0, config.PopPetals*3),
		is:      make([]uint16, 0, config.PopPetals*9),
	}
}

// Draw fills a star centered on (cx, cy).
func (r *BurstRenderer) Draw(target *ebiten.Image, cx, cy float64, clr color.RGBA) {
	if r.fillImg == nil {
		r.fillImg = ebiten.NewImage(1, 1)
		r.fillImg.Fill(color.White)
	}

	path := vector.Path{}
	for i, p := range r.outline {
		x, y := float32(cx+p[0]), float32(cy+p[1])
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	cr, cg, cb, ca := vertexColor(clr)
	for i := range r.vs {
		r.vs[i].ColorR = cr
		r.vs[i].ColorG = cg
		r.vs[i].ColorB = cb
		r.vs[i].ColorA = ca
	}
	target.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
