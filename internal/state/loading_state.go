// internal/state/loading_state.go
package state

import (
	"balloon-pump/internal/assets"
	"balloon-pump/internal/config"
	"balloon-pump/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Убеждаемся, что LoadingState соответствует интерфейсу State
var _ State = (*LoadingState)(nil)

// LoadingState показывает индикатор загрузки, пока реестр не наберёт нужное
// число картинок, потом переключается на состояние из next. Ровно один раз.
type LoadingState struct {
	sm        *StateMachine
	registry  *assets.Registry
	next      func() State
	indicator *ui.LoadingIndicator
	frame     int
}

func NewLoadingState(sm *StateMachine, registry *assets.Registry, next func() State) *LoadingState {
	return &LoadingState{
		sm:       sm,
		registry: registry,
		next:     next,
		indicator: ui.NewLoadingIndicator(
			config.LoadingIndicatorX, config.LoadingIndicatorY, config.LoadingIndicatorRadius,
			config.LoadingTextBody, config.LoadingDotColor),
	}
}

func (s *LoadingState) Name() string { return "loading" }

func (s *LoadingState) Enter() {
	s.registry.OnReady(func() {
		s.sm.SetState(s.next())
	})
}

func (s *LoadingState) Update() {
	s.frame++
	s.registry.Poll()
}

func (s *LoadingState) Draw(screen *ebiten.Image) {
	screen.Fill(config.LoadingColor)
	s.indicator.Draw(screen, s.frame)
}

func (s *LoadingState) Exit() {}
