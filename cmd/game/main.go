// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"os"

	"balloon-pump/internal/app"
	"balloon-pump/internal/assets"
	"balloon-pump/internal/config"
	"balloon-pump/internal/defs"
	"balloon-pump/internal/event"
	"balloon-pump/internal/sound"
	"balloon-pump/internal/state"
	"balloon-pump/internal/utils"
	"balloon-pump/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type AppGame struct {
	stateMachine  *state.StateMachine
	game          *app.Game
	width, height int
}

func (a *AppGame) Update() error {
	a.game.Resize(float64(a.width), float64(a.height))
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout keeps the canvas the same size as the window.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	assetsDir := flag.String("assets", config.AssetsDir, "directory with the PNG sprites")
	skinsPath := flag.String("skins", "", "optional JSON skin table overriding the built-in one")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	mute := flag.Bool("mute", false, "disable the pop sound")
	width := flag.Int("width", config.ScreenWidth, "initial window width")
	height := flag.Int("height", config.ScreenHeight, "initial window height")
	flag.Parse()

	var skins *defs.Skins
	var err error
	if *skinsPath != "" {
		skins, err = defs.LoadSkins(*skinsPath)
	} else {
		skins, err = defs.LoadDefaultSkins()
	}
	if err != nil {
		log.Fatal(err)
	}

	face, err := render.NewBoldFace(config.PopFontSize)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(float64(*width), float64(*height), skins, utils.NewPRNGService(*seed))
	if !*mute {
		game.EventDispatcher.Subscribe(event.BalloonPopped, sound.NewPopSound(audio.NewContext(config.SampleRate)))
	}

	registry := assets.NewRegistry(os.DirFS(*assetsDir), config.ReadyThreshold)
	assets.LoadGameAssets(registry, skins)

	sm := state.NewStateMachine()
	sm.SetState(state.NewLoadingState(sm, registry, func() state.State {
		return state.NewPlayState(sm, game, registry, face)
	}))

	a := &AppGame{
		stateMachine: sm,
		game:         game,
		width:        *width,
		height:       *height,
	}
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
