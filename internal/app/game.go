// internal/app/game.go
package app

import (
	"balloon-pump/internal/config"
	"balloon-pump/internal/defs"
	"balloon-pump/internal/entity"
	"balloon-pump/internal/event"
	"balloon-pump/internal/system"
	"balloon-pump/internal/utils"
)

// Game holds the game state and the systems that advance it.
type Game struct {
	World              *entity.World
	Skins              *defs.Skins
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService
	HandleSystem       *system.HandleSystem
	MovementSystem     *system.MovementSystem
	VisualEffectSystem *system.VisualEffectSystem

	nextLetter int
	started    bool
}

// NewGame creates a game for a width x height canvas. The first balloon is
// not created until Start.
func NewGame(width, height float64, skins *defs.Skins, rng *utils.PRNGService) *Game {
	if skins == nil {
		panic("skins cannot be nil")
	}
	world := entity.NewWorld(width, height)
	return &Game{
		World:              world,
		Skins:              skins,
		EventDispatcher:    event.NewDispatcher(),
		Rng:                rng,
		HandleSystem:       system.NewHandleSystem(world),
		MovementSystem:     system.NewMovementSystem(world),
		VisualEffectSystem: system.NewVisualEffectSystem(world),
	}
}

// Start performs the one-time setup when play begins. Later calls do nothing.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.createNewBalloon()
}

// Tick advances the game by one frame.
func (g *Game) Tick() {
	g.World.Frame++
	g.HandleSystem.Update()
	g.MovementSystem.Update()
	g.VisualEffectSystem.Update()
}

// Resize keeps the pump anchored to the bottom-right corner of a resized canvas.
func (g *Game) Resize(width, height float64) {
	g.World.Resize(width, height)
}

// createNewBalloon puts a fresh, nearly flat balloon on the nozzle. Colors are
// random; letters go through the alphabet in order.
func (g *Game) createNewBalloon() {
	g.World.Active.Scale = config.InitialScale
	g.World.Active.ColorIndex = g.Rng.Intn(g.Skins.Len())
	g.World.Active.LetterIndex = g.nextLetter
	g.nextLetter = (g.nextLetter + 1) % len(defs.Alphabet)
}
