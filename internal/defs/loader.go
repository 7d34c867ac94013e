// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

//go:embed skins.json
var defaultSkins []byte

// LoadDefaultSkins parses the skin table compiled into the binary.
func LoadDefaultSkins() (*Skins, error) {
	return ParseSkins(defaultSkins)
}

// LoadSkins reads a skin table from a JSON file on disk.
func LoadSkins(path string) (*Skins, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skins file: %w", err)
	}
	return ParseSkins(file)
}

// ParseSkins decodes and validates a skin table. Every index in [0, SkinCount)
// must appear exactly once with a parseable pop color.
func ParseSkins(data []byte) (*Skins, error) {
	var skinDefs []SkinDefinition
	if err := json.Unmarshal(data, &skinDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skin definitions: %w", err)
	}
	if len(skinDefs) != SkinCount {
		return nil, fmt.Errorf("expected %d skins, got %d", SkinCount, len(skinDefs))
	}

	skins := &Skins{}
	var seen [SkinCount]bool
	for _, def := range skinDefs {
		if def.Index < 0 || def.Index >= SkinCount {
			return nil, fmt.Errorf("skin %q: index %d out of range", def.Name, def.Index)
		}
		if seen[def.Index] {
			return nil, fmt.Errorf("skin %q: duplicate index %d", def.Name, def.Index)
		}
		if def.Image == "" {
			return nil, fmt.Errorf("skin %q: missing image", def.Name)
		}
		c, err := ParseHexColor(def.PopColor)
		if err != nil {
			return nil, fmt.Errorf("skin %q: %w", def.Name, err)
		}
		def.popColor = c
		seen[def.Index] = true
		skins.byIndex[def.Index] = def
	}

	log.Printf("Loaded %d skin definitions", len(skinDefs))
	return skins, nil
}
