package munsell

import (
	"math"
	"testing"
)

func TestHueToAngleKnownPoints(t *testing.T) {
	tests := []struct {
		name   string
		hue    float64
		family Family
		want   float64
	}{
		{name: "5R is the angle origin", hue: 5, family: FamilyR, want: 0},
		{name: "10R", hue: 10, family: FamilyR, want: 11.25},
		{name: "2.5R wraps near 360", hue: 2.5, family: FamilyR, want: 348.75},
		{name: "5Y", hue: 5, family: FamilyY, want: 45},
		{name: "5PB", hue: 5, family: FamilyPB, want: 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HueToAngle(tt.hue, tt.family)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HueToAngle(%v, %v) = %v, want %v", tt.hue, tt.family, got, tt.want)
			}
		})
	}
}

func TestAngleToHueInvertsHueToAngle(t *testing.T) {
	// Every standard hue of every family must round-trip exactly.
	for family := FamilyB; family <= FamilyPB; family++ {
		for _, hue := range []float64{2.5, 5, 7.5, 10} {
			angle := HueToAngle(hue, family)
			gotHue, gotFamily := AngleToHue(angle)
			if math.Abs(gotHue-hue) > 1e-9 || gotFamily != family {
				t.Errorf("AngleToHue(HueToAngle(%v, %v)) = (%v, %v)", hue, family, gotHue, gotFamily)
			}
		}
	}
}

func TestAngleToHueRoundTripsArbitraryAngles(t *testing.T) {
	for angle := 0.0; angle < 360.0; angle += 3.7 {
		hue, family := AngleToHue(angle)
		if hue <= 0 || hue > 10 {
			t.Fatalf("AngleToHue(%v) hue %v outside canonical (0, 10]", angle, hue)
		}
		back := HueToAngle(hue, family)
		if math.Abs(angleDifference(back, angle)) > 1e-9 {
			t.Errorf("HueToAngle(AngleToHue(%v)) = %v", angle, back)
		}
	}
}

func TestAngleToHueWrapsModulo360(t *testing.T) {
	h1, f1 := AngleToHue(45)
	h2, f2 := AngleToHue(45 + 360)
	h3, f3 := AngleToHue(45 - 360)
	if h1 != h2 || f1 != f2 || h1 != h3 || f1 != f3 {
		t.Errorf("AngleToHue not periodic: (%v,%v) (%v,%v) (%v,%v)", h1, f1, h2, f2, h3, f3)
	}
}

func TestAngleDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{name: "simple", a: 90, b: 45, want: 45},
		{name: "negative", a: 45, b: 90, want: -45},
		{name: "wraps forward", a: 350, b: 10, want: -20},
		{name: "wraps backward", a: 10, b: 350, want: 20},
		{name: "identical", a: 180, b: 180, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := angleDifference(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("angleDifference(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpecificationNormalizeFamilyBoundary(t *testing.T) {
	// Hue 0 of a family is the same colour as hue 10 of its notation
	// predecessor; the canonical representative is the latter.
	s := Specification{Hue: 0, Family: FamilyYR, Value: 5, Chroma: 4}.Normalize()
	if s.Hue != 10 || s.Family != FamilyR {
		t.Errorf("Normalize(0YR) = %v%v, want 10R", s.Hue, s.Family)
	}
}
