package assets

import "testing"

func TestDecodeEmbeddedTextures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		w, h int
	}{
		{"grass.png", grassPNG, 32, 32},
		{"stick.png", stickPNG, 24, 24},
		{"character.png", characterPNG, CharacterFrameSize * CharacterFrameCount, CharacterFrameSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := decode(tt.name, tt.data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lib.Grass == nil || lib.Stick == nil || lib.Character == nil {
		t.Fatal("Load returned nil textures")
	}
	if w := lib.Character.Bounds().Dx(); w != CharacterFrameSize*CharacterFrameCount {
		t.Errorf("character sheet width = %d, want %d", w, CharacterFrameSize*CharacterFrameCount)
	}
}
