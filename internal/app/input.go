// internal/app/input.go
package app

import (
	"log"

	"balloon-pump/internal/component"
	"balloon-pump/internal/config"
	"balloon-pump/internal/defs"
	"balloon-pump/internal/event"
)

// ClickResult tells what a click hit.
type ClickResult int

const (
	ClickMissed ClickResult = iota
	ClickPumped
	ClickLaunched
	ClickPopped
)

// HandleClick applies a pointer press at canvas position (x, y). The pump
// handle wins over balloons; among balloons the most recently launched one wins.
func (g *Game) HandleClick(x, y float64) ClickResult {
	handle := g.World.Layout.Handle.Offset(0, float64(g.World.HandlePushDown))
	if handle.ContainsStrict(x, y, config.HandleHitMargin) {
		return g.pump()
	}

	for i := len(g.World.Flying) - 1; i >= 0; i-- {
		if g.World.Flying[i].Contains(x, y, config.BalloonSize) {
			g.pop(i)
			return ClickPopped
		}
	}
	return ClickMissed
}

func (g *Game) pump() ClickResult {
	g.World.HandlePushDown = config.HandlePressedDepth
	g.World.Active.Scale += config.InflateStep
	if g.World.Active.Scale < config.FullScale {
		return ClickPumped
	}

	origin := g.World.Layout.BalloonOrigin(config.FullScale)
	balloon := component.FlyingBalloon{
		X:           origin.X,
		Y:           origin.Y,
		SpeedX:      g.Rng.Centered(config.LaunchSpeedX),
		SpeedY:      -g.Rng.Between(config.LaunchSpeedYMin, config.LaunchSpeedYRange),
		Scale:       config.FullScale,
		ColorIndex:  g.World.Active.ColorIndex,
		LetterIndex: g.World.Active.LetterIndex,
	}
	g.World.Flying = append(g.World.Flying, balloon)
	g.createNewBalloon()

	letter, _ := defs.Letter(balloon.LetterIndex)
	log.Printf("Balloon %s launched (%d flying)", letter, len(g.World.Flying))
	g.EventDispatcher.Dispatch(event.Event{Type: event.BalloonLaunched, Data: balloon})
	return ClickLaunched
}

func (g *Game) pop(i int) {
	balloon := g.World.RemoveFlying(i)
	effect := component.PopEffect{
		X:        balloon.X,
		Y:        balloon.Y,
		LifeTime: config.PopLifeTime,
		Color:    g.Skins.PopColor(balloon.ColorIndex),
	}
	g.World.PopEffects = append(g.World.PopEffects, effect)
	g.EventDispatcher.Dispatch(event.Event{Type: event.BalloonPopped, Data: effect})
}
