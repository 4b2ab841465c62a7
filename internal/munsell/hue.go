package munsell

import "math"

// The hue-angle breakpoint table. A (hue, family) pair is first folded into a
// single hue position in [0, 10), which is then mapped piecewise-linearly to
// an angle in [0, 360). The uneven spacing encodes the unequal perceptual
// width of the ten families.
var (
	singleHueBreaks = [9]float64{0, 2, 3, 4, 5, 6, 8, 9, 10}
	hueAngleBreaks  = [9]float64{0, 45, 70, 135, 160, 225, 255, 315, 360}
)

// HueToAngle converts a (hue, family) pair to a continuous hue angle in
// [0, 360). Hue angles linearize comparison and interpolation across family
// boundaries.
func HueToAngle(hue float64, family Family) float64 {
	single := math.Mod(math.Mod(float64(17-int(family)), 10)+hue/10-0.5, 10)
	if single < 0 {
		single += 10
	}
	return piecewiseLinear(singleHueBreaks, hueAngleBreaks, single)
}

// AngleToHue converts a hue angle to the canonical (hue, family) pair, with
// hue in (0, 10]. It is the exact inverse of HueToAngle at the breakpoints.
func AngleToHue(angle float64) (float64, Family) {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	single := piecewiseLinear(hueAngleBreaks, singleHueBreaks, angle)

	var family Family
	switch {
	case single <= 0.5:
		family = FamilyR
	case single <= 1.5:
		family = FamilyYR
	case single <= 2.5:
		family = FamilyY
	case single <= 3.5:
		family = FamilyGY
	case single <= 4.5:
		family = FamilyG
	case single <= 5.5:
		family = FamilyBG
	case single <= 6.5:
		family = FamilyB
	case single <= 7.5:
		family = FamilyPB
	case single <= 8.5:
		family = FamilyP
	case single <= 9.5:
		family = FamilyRP
	default:
		family = FamilyR
	}

	hue := math.Mod(10*math.Mod(single, 1)+5, 10)
	if hue == 0 {
		hue = 10
	}
	return hue, family
}

// piecewiseLinear interpolates v against matching breakpoint tables. Values
// outside the table range clamp to the end segments.
func piecewiseLinear(xs, ys [9]float64, v float64) float64 {
	if v <= xs[0] {
		return ys[0]
	}
	for i := 0; i < len(xs)-1; i++ {
		if v <= xs[i+1] {
			t := (v - xs[i]) / (xs[i+1] - xs[i])
			return ys[i] + t*(ys[i+1]-ys[i])
		}
	}
	return ys[len(ys)-1]
}

// angleDifference returns the signed shortest angular distance from b to a,
// in (-180, 180].
func angleDifference(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}
