// Package assets embeds the game's textures and decodes them into
// Ebitengine images.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed images/grass.png
var grassPNG []byte

//go:embed images/stick.png
var stickPNG []byte

//go:embed images/character.png
var characterPNG []byte

// CharacterFrameSize is the side length of one frame in the character sheet.
const CharacterFrameSize = 24

// CharacterFrameCount is the number of frames in the character sheet,
// laid out in a single horizontal strip.
const CharacterFrameCount = 7

// Library holds the decoded game textures.
type Library struct {
	Grass     *ebiten.Image // background tile
	Stick     *ebiten.Image // collectable
	Character *ebiten.Image // player sprite sheet, CharacterFrameCount frames wide
}

// Load decodes all embedded textures.
func Load() (*Library, error) {
	grass, err := decode("grass.png", grassPNG)
	if err != nil {
		return nil, err
	}
	stick, err := decode("stick.png", stickPNG)
	if err != nil {
		return nil, err
	}
	character, err := decode("character.png", characterPNG)
	if err != nil {
		return nil, err
	}
	if w := character.Bounds().Dx(); w != CharacterFrameSize*CharacterFrameCount {
		return nil, fmt.Errorf("character.png is %d px wide, want %d", w, CharacterFrameSize*CharacterFrameCount)
	}
	return &Library{
		Grass:     ebiten.NewImageFromImage(grass),
		Stick:     ebiten.NewImageFromImage(stick),
		Character: ebiten.NewImageFromImage(character),
	}, nil
}

func decode(name string, data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}
