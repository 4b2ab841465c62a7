package munsell

import (
	"fmt"
	"math"
)

// blendMethod selects how two chromaticity points are blended: linearly in
// (x, y), or radially in (rho, phi) polar coordinates about the grey point.
// The per-value cross-sections of the Munsell solid ("ovoids") are not
// convex, so linear blending distorts some regions that radial blending
// preserves.
type blendMethod int

const (
	blendLinear blendMethod = iota
	blendRadial
)

// linearLowChromaWindows lists, per integer value, the hue-angle windows in
// which low-chroma (bracket at or below 4) blending is linear rather than
// radial: the ovoid cross-section is flat enough there that radial blending
// overshoots. Outside these windows, and for all higher chroma brackets,
// blending is radial.
var linearLowChromaWindows = map[int][][2]float64{
	1: {{0, 45}, {315, 360}},
	2: {{0, 45}, {315, 360}},
	3: {{0, 70}, {315, 360}},
	4: {{0, 70}, {315, 360}},
	5: {{0, 70}, {300, 360}},
	6: {{45, 135}, {300, 360}},
	7: {{45, 135}, {300, 360}},
	8: {{45, 160}, {300, 360}},
	9: {{45, 160}, {300, 360}},
}

// ovoidBlendMethod returns the blend method for a region, keyed on the hue
// angle, the integer value plane and the lower even chroma of the bracket.
func ovoidBlendMethod(angle float64, value, chromaLower int) blendMethod {
	if chromaLower < 2 {
		// Blending toward the grey point itself; radial blending would pin
		// phi to the outer sample and sweep an arc instead of a chord.
		return blendLinear
	}
	if chromaLower > 4 {
		return blendRadial
	}
	for _, w := range linearLowChromaWindows[value] {
		if angle >= w[0] && angle <= w[1] {
			return blendLinear
		}
	}
	return blendRadial
}

// Interpolator evaluates arbitrary Munsell specifications against the
// renotation table, composing chroma, hue and value interpolation. It is the
// forward direction of the conversion and the oracle the solver iterates
// against.
type Interpolator struct {
	table *Table
}

// NewInterpolator returns an Interpolator over the given table.
func NewInterpolator(table *Table) *Interpolator {
	return &Interpolator{table: table}
}

// Evaluate returns the chromaticity of a specification. Specifications with a
// standard hue, integer value in [1, 9] and even in-gamut chroma return the
// tabulated coordinates exactly. Chroma beyond the tabulated maximum is
// clamped to it. Only structurally invalid specifications error.
func (in *Interpolator) Evaluate(s Specification) (Chromaticity, error) {
	if err := s.Valid(); err != nil {
		return Chromaticity{}, fmt.Errorf("cannot evaluate specification: %w", err)
	}
	n := s.Normalize()

	if n.IsAchromatic() {
		return Chromaticity{X: IlluminantCx, Y: IlluminantCy, Luminance: in.table.GreyLuminance(n.Value)}, nil
	}

	// Out-of-gamut chroma clamps to the largest interpolable chroma.
	if maxC := in.table.MaximumChroma(n.Hue, n.Value, n.Family); maxC > 0 && n.Chroma > maxC {
		n.Chroma = maxC
	}

	// Exact table hit: no interpolation, no drift.
	if iv := int(n.Value); n.Value == float64(iv) && iv >= 1 && iv <= 9 && standardHue(n.Hue) {
		if ic := int(n.Chroma); n.Chroma == float64(ic) && ic%2 == 0 {
			if x, y, ok := in.table.LookupExact(n.Hue, n.Family, iv, ic); ok {
				return Chromaticity{X: x, Y: y, Luminance: ValueToLuminance(n.Value)}, nil
			}
		}
	}

	x, y := in.xyForValue(n)
	return Chromaticity{X: x, Y: y, Luminance: ValueToLuminance(n.Value)}, nil
}

// xyForValue blends the (x, y) of the two integer value planes bracketing the
// specification's value. The blend parameter is luminance, not raw value, so
// lightness interpolates the way the value scale does. Value above 9
// extrapolates from the 8 and 9 planes; value below 1 blends toward the grey
// point, where the solid degenerates to black.
func (in *Interpolator) xyForValue(n Specification) (float64, float64) {
	if v := int(n.Value); n.Value == float64(v) && v >= 1 && v <= 9 {
		return in.xyAtValuePlane(n, v)
	}

	var vLo, vHi int
	switch {
	case n.Value > 9:
		vLo, vHi = 8, 9
	case n.Value < 1:
		vLo, vHi = 0, 1
	default:
		vLo = int(math.Floor(n.Value))
		vHi = vLo + 1
	}

	xLo, yLo := IlluminantCx, IlluminantCy
	if vLo > 0 {
		xLo, yLo = in.xyAtValuePlane(n, vLo)
	}
	xHi, yHi := in.xyAtValuePlane(n, vHi)

	yLumLo := ValueToLuminance(float64(vLo))
	yLumHi := ValueToLuminance(float64(vHi))
	t := (ValueToLuminance(n.Value) - yLumLo) / (yLumHi - yLumLo)
	return xLo + t*(xHi-xLo), yLo + t*(yHi-yLo)
}

// xyAtValuePlane interpolates (x, y) within one integer value plane: chroma
// blending at each bounding standard hue first, then hue blending in angle
// space.
func (in *Interpolator) xyAtValuePlane(n Specification, value int) (float64, float64) {
	chroma := n.Chroma
	if planeMax := in.table.MaximumChroma(n.Hue, float64(value), n.Family); planeMax > 0 && chroma > planeMax {
		chroma = planeMax
	}

	cLo := 2 * int(math.Floor(chroma/2))
	cHi := cLo + 2
	if float64(cLo) == chroma {
		cHi = cLo
	}

	angle := HueToAngle(n.Hue, n.Family)
	method := ovoidBlendMethod(angle, value, cLo)

	hueCW, familyCW, hueCCW, familyCCW := in.table.BoundingStandardHues(n.Hue, n.Family)
	xCW, yCW := in.chromaBlend(hueCW, familyCW, value, chroma, cLo, cHi, method)
	if hueCW == hueCCW && familyCW == familyCCW {
		return xCW, yCW
	}
	xCCW, yCCW := in.chromaBlend(hueCCW, familyCCW, value, chroma, cLo, cHi, method)

	angleCW := HueToAngle(hueCW, familyCW)
	angleCCW := HueToAngle(hueCCW, familyCCW)
	span := angleDifference(angleCCW, angleCW)
	if span == 0 {
		return xCW, yCW
	}
	t := angleDifference(angle, angleCW) / span
	return blend(xCW, yCW, xCCW, yCCW, t, method)
}

// chromaBlend interpolates between the bracketing even chromas at one
// standard hue. Chroma 0 is the grey point.
func (in *Interpolator) chromaBlend(hue float64, family Family, value int, chroma float64, cLo, cHi int, method blendMethod) (float64, float64) {
	xLo, yLo := in.lookupOrGrey(hue, family, value, cLo)
	if cHi == cLo {
		return xLo, yLo
	}
	xHi, yHi := in.lookupOrGrey(hue, family, value, cHi)
	t := (chroma - float64(cLo)) / float64(cHi-cLo)
	return blend(xLo, yLo, xHi, yHi, t, method)
}

// lookupOrGrey resolves one chroma sample, clamping to the hue's own
// tabulated maximum when the requested chroma is absent.
func (in *Interpolator) lookupOrGrey(hue float64, family Family, value, chroma int) (float64, float64) {
	if chroma <= 0 {
		return IlluminantCx, IlluminantCy
	}
	if x, y, ok := in.table.LookupExact(hue, family, value, chroma); ok {
		return x, y
	}
	// Absent entry: walk back to the largest tabulated chroma at this hue.
	for c := chroma - 2; c >= 2; c -= 2 {
		if x, y, ok := in.table.LookupExact(hue, family, value, c); ok {
			return x, y
		}
	}
	return IlluminantCx, IlluminantCy
}

// blend interpolates between two chromaticity points by fraction t using the
// selected method. Radial blending works in (rho, phi) about the grey point,
// taking the shortest arc in phi.
func blend(x0, y0, x1, y1, t float64, method blendMethod) (float64, float64) {
	if method == blendLinear {
		return x0 + t*(x1-x0), y0 + t*(y1-y0)
	}
	rho0, phi0 := toPolar(x0, y0)
	rho1, phi1 := toPolar(x1, y1)
	rho := rho0 + t*(rho1-rho0)
	phi := phi0 + t*angleDifference(phi1, phi0)
	return fromPolar(rho, phi)
}

// toPolar converts (x, y) to polar (rho, phi degrees) about the grey point.
func toPolar(x, y float64) (float64, float64) {
	dx, dy := x-IlluminantCx, y-IlluminantCy
	rho := math.Hypot(dx, dy)
	phi := math.Atan2(dy, dx) * 180 / math.Pi
	if phi < 0 {
		phi += 360
	}
	return rho, phi
}

// fromPolar converts polar (rho, phi degrees) about the grey point back to
// (x, y).
func fromPolar(rho, phi float64) (float64, float64) {
	rad := phi * math.Pi / 180
	return IlluminantCx + rho*math.Cos(rad), IlluminantCy + rho*math.Sin(rad)
}
