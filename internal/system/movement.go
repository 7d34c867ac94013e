// internal/system/movement.go
package system

import (
	"balloon-pump/internal/config"
	"balloon-pump/internal/entity"
	"balloon-pump/internal/utils"
)

// MovementSystem moves flying balloons and bounces them off the canvas edges.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update moves every flying balloon by its velocity, then flips the velocity
// component for each axis whose position left the playfield. Positions are not
// clamped, so a balloon may overshoot a wall by one step.
func (s *MovementSystem) Update() {
	maxX := s.world.Layout.Width - config.BalloonSize
	maxY := s.world.Layout.Height - config.BalloonSize
	for i := range s.world.Flying {
		b := &s.world.Flying[i]
		b.Move()
		if utils.Outside(b.X, 0, maxX) {
			b.SpeedX = -b.SpeedX
		}
		if utils.Outside(b.Y, 0, maxY) {
			b.SpeedY = -b.SpeedY
		}
	}
}
