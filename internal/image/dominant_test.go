package image

import (
	"image"
	"image/color"
	"testing"
)

// testImage builds a half-red, half-blue image.
func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{R: 200, G: 30, B: 30, A: 255}
			if x >= 20 {
				c = color.RGBA{R: 30, G: 30, B: 200, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDominantColours(t *testing.T) {
	got, err := DominantColours(testImage(), 2)
	if err != nil {
		t.Fatalf("DominantColours failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d colours, want 2", len(got))
	}
	// One cluster must lean red (x high), the other blue (y low, x low).
	if got[0].X == got[1].X && got[0].Y == got[1].Y {
		t.Errorf("clusters collapsed to the same colour: %v", got)
	}
}

func TestDominantColoursValidation(t *testing.T) {
	if _, err := DominantColours(nil, 2); err == nil {
		t.Errorf("nil image accepted")
	}
	if _, err := DominantColours(testImage(), 0); err == nil {
		t.Errorf("zero count accepted")
	}
	if _, err := DominantColours(testImage(), 100); err == nil {
		t.Errorf("oversized count accepted")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: "/nonexistent/image.png"},
		{name: "directory", path: "."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.path)
			}
		})
	}
}
