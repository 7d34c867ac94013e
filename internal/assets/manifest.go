// internal/assets/manifest.go
package assets

import (
	"fmt"

	"balloon-pump/internal/defs"
)

// Sprite names.
const (
	Background = "bg"
	PumpBody   = "pump"
	Handle     = "handle"
	Nozzle     = "nozzle"
	String     = "string"
)

// BalloonKey is the registry name of balloon skin i.
func BalloonKey(i int) string {
	return fmt.Sprintf("balloon:%d", i)
}

// LetterKey is the registry name of the glyph for letter index i.
func LetterKey(i int) string {
	return fmt.Sprintf("letter:%d", i)
}

// LoadGameAssets requests every sprite the game draws: the five pump/scene
// images, one image per skin and one glyph per letter.
func LoadGameAssets(r *Registry, skins *defs.Skins) {
	r.Load(Background, "bg.png")
	r.Load(PumpBody, "pump.png")
	r.Load(Handle, "handle.png")
	r.Load(Nozzle, "nozzle.png")
	r.Load(String, "string.png")

	for i := 0; i < skins.Len(); i++ {
		def, _ := skins.Get(i)
		r.Load(BalloonKey(i), def.Image)
	}
	for i := range defs.Alphabet {
		letter, _ := defs.Letter(i)
		r.Load(LetterKey(i), letter+".png")
	}
}
