// Package munsell converts between CIE xyY chromaticity coordinates and the
// Munsell colour notation. The conversion has no closed form: it is anchored
// by the Munsell renotation dataset and an iterative solver that refines a
// hue/value/chroma specification until its interpolated chromaticity matches
// the input.
package munsell

import (
	"fmt"
	"math"
)

// Illuminant C, the grey/reference point for all renotation chromaticities.
// Zero-chroma (neutral) colours sit exactly here regardless of value.
const (
	IlluminantCx = 0.31006
	IlluminantCy = 0.31616
)

// achromaticChroma is the chroma at or below which a specification is
// considered neutral ("N"). Neutral colours have no hue or family.
const achromaticChroma = 1e-4

// Chromaticity is a CIE xyY colour: (x, y) chromaticity coordinates plus
// relative luminance Y in [0, 1].
type Chromaticity struct {
	X         float64
	Y         float64
	Luminance float64
}

// Valid reports whether the chromaticity is structurally usable: finite
// coordinates, (x, y) inside the unit triangle, luminance in [0, 1].
func (c Chromaticity) Valid() error {
	if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Luminance) {
		return fmt.Errorf("chromaticity contains NaN: (%v, %v, %v)", c.X, c.Y, c.Luminance)
	}
	if c.X <= 0 || c.X >= 1 || c.Y <= 0 || c.Y >= 1 {
		return fmt.Errorf("chromaticity (x, y) = (%v, %v) outside (0, 1)", c.X, c.Y)
	}
	if c.Luminance < 0 || c.Luminance > 1 {
		return fmt.Errorf("luminance %v outside [0, 1]", c.Luminance)
	}
	return nil
}

// Family identifies one of the ten Munsell hue families. The numeric codes
// follow the renotation dataset ordering (B=1 through PB=10); they are cyclic,
// with hue 10 of one family coinciding with hue 0 of its notation successor.
type Family int

// The ten hue families.
const (
	FamilyB Family = iota + 1
	FamilyBG
	FamilyG
	FamilyGY
	FamilyY
	FamilyYR
	FamilyR
	FamilyRP
	FamilyP
	FamilyPB
)

var familyNames = map[Family]string{
	FamilyB:  "B",
	FamilyBG: "BG",
	FamilyG:  "G",
	FamilyGY: "GY",
	FamilyY:  "Y",
	FamilyYR: "YR",
	FamilyR:  "R",
	FamilyRP: "RP",
	FamilyP:  "P",
	FamilyPB: "PB",
}

// String returns the notation letters for the family, e.g. "GY".
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// FamilyFromName returns the family for notation letters such as "R" or "BG".
func FamilyFromName(name string) (Family, bool) {
	for f, n := range familyNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// Specification is a Munsell colour: hue within a family, family code, value
// (lightness) and chroma (saturation). Chroma at or below a small epsilon
// denotes a neutral colour, which carries no hue or family.
type Specification struct {
	Hue    float64
	Family Family
	Value  float64
	Chroma float64

	// Approximate is set when the solver exhausted its iteration cap before
	// meeting the convergence threshold; the specification is then the best
	// effort found, not an exact match.
	Approximate bool
}

// Achromatic returns the neutral specification for the given value.
func Achromatic(value float64) Specification {
	return Specification{Value: value}
}

// IsAchromatic reports whether the specification denotes a neutral colour.
func (s Specification) IsAchromatic() bool {
	return s.Chroma <= achromaticChroma
}

// Valid reports whether the specification is structurally usable. Numeric
// edge cases (out-of-gamut chroma, non-integer value) are not errors; only
// out-of-range or non-finite fields are.
func (s Specification) Valid() error {
	if math.IsNaN(s.Hue) || math.IsNaN(s.Value) || math.IsNaN(s.Chroma) {
		return fmt.Errorf("specification contains NaN")
	}
	if s.Value < 0 || s.Value > 10 {
		return fmt.Errorf("value %v outside [0, 10]", s.Value)
	}
	if s.Chroma < 0 {
		return fmt.Errorf("chroma %v is negative", s.Chroma)
	}
	if !s.IsAchromatic() {
		if s.Family < FamilyB || s.Family > FamilyPB {
			return fmt.Errorf("family code %d outside 1..10", int(s.Family))
		}
		if s.Hue < 0 || s.Hue > 10 {
			return fmt.Errorf("hue %v outside [0, 10]", s.Hue)
		}
	}
	return nil
}

// Normalize returns the canonical form of the specification. The canonical
// hue range is (0, 10]: hue 0 of a family is expressed as hue 10 of the
// family that precedes it in notation order. Neutral specifications drop any
// stray hue or family.
func (s Specification) Normalize() Specification {
	if s.IsAchromatic() {
		return Specification{Value: s.Value, Approximate: s.Approximate}
	}
	if s.Hue == 0 {
		s.Hue = 10
		s.Family = s.Family%10 + 1
	}
	return s
}

// String renders the specification in Munsell notation, e.g. "5R 4/14" or
// "N 5.5".
func (s Specification) String() string {
	if s.IsAchromatic() {
		return fmt.Sprintf("N %s", trimFloat(s.Value))
	}
	n := s.Normalize()
	return fmt.Sprintf("%s%s %s/%s", trimFloat(n.Hue), n.Family, trimFloat(n.Value), trimFloat(n.Chroma))
}

// trimFloat formats a float with one decimal place, dropping a trailing ".0".
func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
