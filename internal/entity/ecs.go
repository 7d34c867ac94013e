// internal/entity/ecs.go
package entity

import "balloon-pump/internal/component"

// World holds every piece of mutable game state. Systems read and write it;
// the renderer only reads it.
type World struct {
	Frame          int
	HandlePushDown int
	Active         component.Balloon
	Flying         []component.FlyingBalloon
	PopEffects     []component.PopEffect
	Layout         component.Layout
}

// NewWorld creates an empty world laid out for a width x height canvas.
func NewWorld(width, height float64) *World {
	return &World{
		Layout: component.NewLayout(width, height),
	}
}

// Resize recomputes the layout when the canvas size changes.
func (w *World) Resize(width, height float64) bool {
	if w.Layout.Width == width && w.Layout.Height == height {
		return false
	}
	w.Layout = component.NewLayout(width, height)
	return true
}

// RemoveFlying deletes the flying balloon at index i, keeping order.
func (w *World) RemoveFlying(i int) component.FlyingBalloon {
	b := w.Flying[i]
	w.Flying = append(w.Flying[:i], w.Flying[i+1:]...)
	return b
}
