package app

import (
	"math"
	"testing"

	"balloon-pump/internal/component"
	"balloon-pump/internal/config"
	"balloon-pump/internal/defs"
	"balloon-pump/internal/event"
	"balloon-pump/internal/utils"
)

const (
	testWidth  = 1000.0
	testHeight = 800.0
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	skins, err := defs.LoadDefaultSkins()
	if err != nil {
		t.Fatalf("LoadDefaultSkins() error = %v", err)
	}
	g := NewGame(testWidth, testHeight, skins, utils.NewPRNGService(1))
	g.Start()
	return g
}

// handleCenter returns a point in the middle of the handle at its current depth.
func handleCenter(g *Game) (float64, float64) {
	h := g.World.Layout.Handle
	return h.X + h.Width/2, h.Y + h.Height/2 + float64(g.World.HandlePushDown)
}

func TestStartCreatesFirstBalloonOnce(t *testing.T) {
	g := newTestGame(t)
	first := g.World.Active
	if first.Scale != config.InitialScale || first.LetterIndex != 0 {
		t.Fatalf("first balloon = %+v", first)
	}
	g.Start()
	if g.World.Active != first {
		t.Errorf("second Start() replaced the balloon: %+v", g.World.Active)
	}
}

func TestHandleDepressionDecays(t *testing.T) {
	g := newTestGame(t)
	g.World.HandlePushDown = 5

	prev := g.World.HandlePushDown
	for i := 0; i < 10; i++ {
		g.Tick()
		cur := g.World.HandlePushDown
		if cur > prev {
			t.Fatalf("frame %d: depression rose from %d to %d", i, prev, cur)
		}
		if cur < 0 {
			t.Fatalf("frame %d: depression negative: %d", i, cur)
		}
		prev = cur
	}
	if prev != 0 {
		t.Errorf("depression = %d after 10 frames, want 0", prev)
	}
}

func TestPressedHandleReturnsIn20Frames(t *testing.T) {
	g := newTestGame(t)
	g.HandleClick(handleCenter(g))
	if g.World.HandlePushDown != config.HandlePressedDepth {
		t.Fatalf("HandlePushDown = %d, want %d", g.World.HandlePushDown, config.HandlePressedDepth)
	}
	for i := 0; i < 19; i++ {
		g.Tick()
	}
	if g.World.HandlePushDown != 2 {
		t.Errorf("HandlePushDown = %d after 19 frames, want 2", g.World.HandlePushDown)
	}
	g.Tick()
	if g.World.HandlePushDown != 0 {
		t.Errorf("HandlePushDown = %d after 20 frames, want 0", g.World.HandlePushDown)
	}
}

func TestInflateAndLaunch(t *testing.T) {
	g := newTestGame(t)
	g.World.Active = component.Balloon{Scale: 0.1, ColorIndex: 3, LetterIndex: 0}

	launched := 0
	g.EventDispatcher.Subscribe(event.BalloonLaunched, event.ListenerFunc(func(event.Event) { launched++ }))

	// 0.1 + 5*0.15 is still short of full size.
	for i := 0; i < 5; i++ {
		if got := g.HandleClick(handleCenter(g)); got != ClickPumped {
			t.Fatalf("click %d = %v, want ClickPumped", i+1, got)
		}
	}
	if len(g.World.Flying) != 0 {
		t.Fatalf("launched early after 5 clicks")
	}

	// The sixth click brings the scale to 1.0 and releases the balloon.
	if got := g.HandleClick(handleCenter(g)); got != ClickLaunched {
		t.Fatalf("click 6 = %v, want ClickLaunched", got)
	}
	if g.World.Active.Scale != config.InitialScale {
		t.Errorf("scale after launch = %v, want %v", g.World.Active.Scale, config.InitialScale)
	}

	g.HandleClick(handleCenter(g))

	if launched != 1 || len(g.World.Flying) != 1 {
		t.Fatalf("launches = %d, flying = %d after 7 clicks, want 1 and 1", launched, len(g.World.Flying))
	}
	b := g.World.Flying[0]
	if b.LetterIndex != 0 || b.ColorIndex != 3 || b.Scale != 1.0 {
		t.Errorf("flying balloon = %+v, want letter 0 color 3 scale 1", b)
	}
	if g.World.Active.LetterIndex != 1 {
		t.Errorf("next balloon letter = %d, want 1", g.World.Active.LetterIndex)
	}
	if math.Abs(g.World.Active.Scale-(config.InitialScale+config.InflateStep)) > 1e-9 {
		t.Errorf("next balloon scale = %v, want one pump above initial", g.World.Active.Scale)
	}
}

func TestLaunchPositionAndVelocity(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 200; i++ {
		g.World.Active.Scale = 0.95
		if got := g.HandleClick(handleCenter(g)); got != ClickLaunched {
			t.Fatalf("launch %d: got %v", i, got)
		}
	}

	origin := g.World.Layout.BalloonOrigin(1.0)
	for i, b := range g.World.Flying {
		if b.X != origin.X || b.Y != origin.Y {
			t.Fatalf("balloon %d at (%v, %v), want (%v, %v)", i, b.X, b.Y, origin.X, origin.Y)
		}
		if b.SpeedX < -1.5 || b.SpeedX >= 1.5 {
			t.Errorf("balloon %d: SpeedX = %v out of [-1.5, 1.5)", i, b.SpeedX)
		}
		if b.SpeedY > -1 || b.SpeedY <= -2.5 {
			t.Errorf("balloon %d: SpeedY = %v out of (-2.5, -1]", i, b.SpeedY)
		}
		if b.ColorIndex < 0 || b.ColorIndex >= defs.SkinCount {
			t.Errorf("balloon %d: ColorIndex = %d", i, b.ColorIndex)
		}
	}
}

func TestLetterSequenceCycles(t *testing.T) {
	g := newTestGame(t)
	var letters []int
	for i := 0; i < 60; i++ {
		letters = append(letters, g.World.Active.LetterIndex)
		g.World.Active.Scale = 0.95
		g.HandleClick(handleCenter(g))
		// Time between launches must not matter.
		for f := 0; f < i%7; f++ {
			g.Tick()
		}
	}
	for i, l := range letters {
		if l != i%26 {
			t.Fatalf("balloon %d has letter %d, want %d", i, l, i%26)
		}
	}
}

func TestHandleHitBox(t *testing.T) {
	g := newTestGame(t)
	h := g.World.Layout.Handle

	tests := []struct {
		name   string
		x, y   float64
		pushed int
		want   ClickResult
	}{
		{"Inside", h.X + 5, h.Y + 5, 0, ClickPumped},
		{"Margin left", h.X - 19, h.Y + 50, 0, ClickPumped},
		{"Past margin", h.X - 21, h.Y + 50, 0, ClickMissed},
		{"Margin below", h.X + 50, h.Y + h.Height + 19, 0, ClickPumped},
		{"Below when resting", h.X + 50, h.Y + h.Height + 50, 0, ClickMissed},
		{"Below follows depression", h.X + 50, h.Y + h.Height + 50, 40, ClickPumped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.World.Active.Scale = config.InitialScale
			g.World.HandlePushDown = tt.pushed
			if got := g.HandleClick(tt.x, tt.y); got != tt.want {
				t.Errorf("HandleClick(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPopTopmostBalloon(t *testing.T) {
	g := newTestGame(t)
	g.World.Flying = []component.FlyingBalloon{
		{X: 100, Y: 100, ColorIndex: 0, LetterIndex: 0},
		{X: 150, Y: 150, ColorIndex: 6, LetterIndex: 1},
		{X: 400, Y: 100, ColorIndex: 2, LetterIndex: 2},
	}

	var popped []component.PopEffect
	g.EventDispatcher.Subscribe(event.BalloonPopped, event.ListenerFunc(func(e event.Event) {
		popped = append(popped, e.Data.(component.PopEffect))
	}))

	// (180, 180) is inside both of the first two balloons.
	if got := g.HandleClick(180, 180); got != ClickPopped {
		t.Fatalf("HandleClick() = %v, want ClickPopped", got)
	}
	if len(g.World.Flying) != 2 || g.World.Flying[0].LetterIndex != 0 || g.World.Flying[1].LetterIndex != 2 {
		t.Fatalf("remaining balloons = %+v", g.World.Flying)
	}
	if len(g.World.PopEffects) != 1 || len(popped) != 1 {
		t.Fatalf("pop effects = %d, events = %d, want 1 and 1", len(g.World.PopEffects), len(popped))
	}
	effect := g.World.PopEffects[0]
	if effect.X != 150 || effect.Y != 150 || effect.LifeTime != config.PopLifeTime {
		t.Errorf("effect = %+v", effect)
	}
	if effect.Color != g.Skins.PopColor(6) {
		t.Errorf("effect color = %v, want skin 6 color", effect.Color)
	}

	if got := g.HandleClick(10, 10); got != ClickMissed {
		t.Errorf("HandleClick() on empty sky = %v, want ClickMissed", got)
	}
}

func TestPopEffectExpires(t *testing.T) {
	g := newTestGame(t)
	g.World.Flying = []component.FlyingBalloon{{X: 100, Y: 100}}
	g.HandleClick(150, 150)

	for i := 0; i < config.PopLifeTime-1; i++ {
		g.Tick()
	}
	if len(g.World.PopEffects) != 1 || g.World.PopEffects[0].LifeTime != 1 {
		t.Fatalf("effects after %d frames = %+v", config.PopLifeTime-1, g.World.PopEffects)
	}
	g.Tick()
	if len(g.World.PopEffects) != 0 {
		t.Errorf("effect still present after %d frames", config.PopLifeTime)
	}
}

func TestBalloonBouncesOffLeftWall(t *testing.T) {
	g := newTestGame(t)
	g.World.Flying = []component.FlyingBalloon{{X: 0, Y: 300, SpeedX: -2, SpeedY: 0}}

	g.Tick()
	b := g.World.Flying[0]
	if b.X != -2 || b.SpeedX != 2 {
		t.Fatalf("after 1 frame: X = %v, SpeedX = %v, want -2 and 2", b.X, b.SpeedX)
	}
	g.Tick()
	b = g.World.Flying[0]
	if b.X != 0 || b.SpeedX != 2 {
		t.Errorf("after 2 frames: X = %v, SpeedX = %v, want 0 and 2", b.X, b.SpeedX)
	}
}

func TestFramesCount(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 3; i++ {
		g.Tick()
	}
	if g.World.Frame != 3 {
		t.Errorf("Frame = %d, want 3", g.World.Frame)
	}
}
