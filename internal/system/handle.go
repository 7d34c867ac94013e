// internal/system/handle.go
package system

import (
	"balloon-pump/internal/config"
	"balloon-pump/internal/entity"
	"balloon-pump/internal/utils"
)

// HandleSystem lets the pump handle rise back after a press.
type HandleSystem struct {
	world *entity.World
}

func NewHandleSystem(world *entity.World) *HandleSystem {
	return &HandleSystem{world: world}
}

func (s *HandleSystem) Update() {
	if s.world.HandlePushDown > 0 {
		s.world.HandlePushDown = utils.ClampMin(s.world.HandlePushDown-config.HandleReturnSpeed, 0)
	}
}
