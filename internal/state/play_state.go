// internal/state/play_state.go
package state

import (
	"balloon-pump/internal/app"
	"balloon-pump/internal/assets"
	"balloon-pump/internal/event"
	"balloon-pump/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var _ State = (*PlayState)(nil)

// PlayState — основной игровой экран: догружает картинки, обрабатывает ввод,
// двигает мир на один кадр и рисует его. Никогда не завершается.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	registry *assets.Registry
	renderer *system.RenderSystem
	touches  []ebiten.TouchID
}

func NewPlayState(sm *StateMachine, game *app.Game, registry *assets.Registry, face font.Face) *PlayState {
	return &PlayState{
		sm:       sm,
		game:     game,
		registry: registry,
		renderer: system.NewRenderSystem(game.World, registry, face),
	}
}

func (s *PlayState) Name() string { return "play" }

// Enter ставит первый шарик на насос.
func (s *PlayState) Enter() {
	s.game.Start()
	s.game.EventDispatcher.Dispatch(event.Event{Type: event.AssetsReady})
}

// Update сначала применяет картинки, догрузившиеся после старта игры,
// потом обрабатывает ввод и делает один тик.
func (s *PlayState) Update() {
	s.registry.Poll()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.game.HandleClick(float64(x), float64(y))
	}
	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	if len(s.touches) == 1 {
		x, y := ebiten.TouchPosition(s.touches[0])
		s.game.HandleClick(float64(x), float64(y))
	}

	s.game.Tick()
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen)
}

func (s *PlayState) Exit() {}
