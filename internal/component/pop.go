// internal/component/pop.go
package component

import "image/color"

// PopEffect is the burst left where a balloon popped. LifeTime counts frames.
type PopEffect struct {
	X, Y     float64
	LifeTime int
	Color    color.RGBA
}
