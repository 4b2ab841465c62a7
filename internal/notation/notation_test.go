package notation

import (
	"math"
	"testing"

	"github.com/colourkit/munsell/internal/munsell"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHue    float64
		wantFamily munsell.Family
		wantValue  float64
		wantChroma float64
	}{
		{name: "simple", input: "5R 4/14", wantHue: 5, wantFamily: munsell.FamilyR, wantValue: 4, wantChroma: 14},
		{name: "fractional hue", input: "2.5GY 6/8", wantHue: 2.5, wantFamily: munsell.FamilyGY, wantValue: 6, wantChroma: 8},
		{name: "two letter family", input: "7.5PB 3/10", wantHue: 7.5, wantFamily: munsell.FamilyPB, wantValue: 3, wantChroma: 10},
		{name: "lowercase family", input: "5bg 5/6", wantHue: 5, wantFamily: munsell.FamilyBG, wantValue: 5, wantChroma: 6},
		{name: "fractional value and chroma", input: "10RP 4.5/7.2", wantHue: 10, wantFamily: munsell.FamilyRP, wantValue: 4.5, wantChroma: 7.2},
		{name: "extra whitespace", input: "  5Y  8/12  ", wantHue: 5, wantFamily: munsell.FamilyY, wantValue: 8, wantChroma: 12},
		{name: "boundary hue normalizes", input: "0YR 5/4", wantHue: 10, wantFamily: munsell.FamilyR, wantValue: 5, wantChroma: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got.Hue != tt.wantHue || got.Family != tt.wantFamily {
				t.Errorf("Parse(%q) hue = %v%v, want %v%v", tt.input, got.Hue, got.Family, tt.wantHue, tt.wantFamily)
			}
			if got.Value != tt.wantValue || got.Chroma != tt.wantChroma {
				t.Errorf("Parse(%q) = %v/%v, want %v/%v", tt.input, got.Value, got.Chroma, tt.wantValue, tt.wantChroma)
			}
		})
	}
}

func TestParseNeutral(t *testing.T) {
	got, err := Parse("N 5.5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !got.IsAchromatic() {
		t.Fatalf("Parse(\"N 5.5\") returned chromatic specification %v", got)
	}
	if math.Abs(got.Value-5.5) > 1e-12 {
		t.Errorf("neutral value = %v, want 5.5", got.Value)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "missing chroma", input: "5R 4"},
		{name: "unknown family", input: "5Q 4/14"},
		{name: "no hue number", input: "R 4/14"},
		{name: "value out of range", input: "5R 12/4"},
		{name: "negative chroma", input: "5R 4/-2"},
		{name: "garbage", input: "not a colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{"5R 4/14", "2.5GY 6/8", "7.5PB 3/10", "N 5.5", "10RP 4/6"}
	for _, input := range inputs {
		spec, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		if got := Format(spec); got != input {
			t.Errorf("Format(Parse(%q)) = %q", input, got)
		}
	}
}
