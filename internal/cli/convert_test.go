package cli

import (
	"math"
	"testing"

	"github.com/colourkit/munsell/internal/munsell"
)

func TestParseColourArgument(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "hex", input: "#d2691e"},
		{name: "hex white", input: "#ffffff"},
		{name: "coordinates", input: "0.3810,0.3700,0.2912"},
		{name: "coordinates with spaces", input: "0.31, 0.32, 0.5"},
		{name: "bad hex", input: "#zzzzzz", wantErr: true},
		{name: "two coordinates", input: "0.3,0.3", wantErr: true},
		{name: "non-numeric coordinate", input: "0.3,abc,0.5", wantErr: true},
		{name: "coordinate out of range", input: "1.4,0.3,0.5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseColourArgument(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseColourArgument(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseColourArgument(%q) failed: %v", tt.input, err)
			}
			if err := got.Valid(); err != nil {
				t.Errorf("parseColourArgument(%q) returned invalid chromaticity: %v", tt.input, err)
			}
		})
	}
}

func TestParseColourArgumentCoordinates(t *testing.T) {
	got, err := parseColourArgument("0.3810,0.3700,0.2912")
	if err != nil {
		t.Fatalf("parseColourArgument failed: %v", err)
	}
	want := munsell.Chromaticity{X: 0.3810, Y: 0.3700, Luminance: 0.2912}
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Luminance-want.Luminance) > 1e-12 {
		t.Errorf("parseColourArgument = %v, want %v", got, want)
	}
}
