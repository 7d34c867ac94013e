// internal/defs/types.go
package defs

import (
	"fmt"
	"image/color"
)

// SkinCount is the number of balloon skins the game ships with.
const SkinCount = 10

// Alphabet lists the letter glyphs printed on balloons, in cycling order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// FallbackPopColor is used for a pop effect whose skin is unknown.
var FallbackPopColor = color.RGBA{0xff, 0x00, 0x00, 0xff}

// SkinDefinition describes one balloon color: its sprite and the color of its pop burst.
type SkinDefinition struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	PopColor string `json:"pop_color"`

	popColor color.RGBA
}

// Color returns the parsed pop color.
func (s SkinDefinition) Color() color.RGBA {
	return s.popColor
}

// Skins is the validated skin table, indexed by SkinDefinition.Index.
type Skins struct {
	byIndex [SkinCount]SkinDefinition
}

// Len returns the number of skins.
func (s *Skins) Len() int {
	return len(s.byIndex)
}

// Get returns the skin at index i.
func (s *Skins) Get(i int) (SkinDefinition, bool) {
	if i < 0 || i >= len(s.byIndex) {
		return SkinDefinition{}, false
	}
	return s.byIndex[i], true
}

// PopColor returns the burst color for skin i, or FallbackPopColor.
func (s *Skins) PopColor(i int) color.RGBA {
	if def, ok := s.Get(i); ok {
		return def.Color()
	}
	return FallbackPopColor
}

// Letter returns the glyph for letter index i.
func Letter(i int) (string, bool) {
	if i < 0 || i >= len(Alphabet) {
		return "", false
	}
	return Alphabet[i : i+1], true
}

// ParseHexColor parses "#rrggbb" or "#rgb".
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return c, nil
}
