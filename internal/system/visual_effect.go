// internal/system/visual_effect.go
package system

import (
	"balloon-pump/internal/entity"
)

// VisualEffectSystem ages pop effects and drops the expired ones.
type VisualEffectSystem struct {
	world *entity.World
}

func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

func (s *VisualEffectSystem) Update() {
	alive := s.world.PopEffects[:0]
	for _, effect := range s.world.PopEffects {
		effect.LifeTime--
		if effect.LifeTime > 0 {
			alive = append(alive, effect)
		}
	}
	s.world.PopEffects = alive
}
