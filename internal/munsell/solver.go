package munsell

import (
	"fmt"
	"math"
)

const (
	// maxRefinementRounds caps the outer fixed-point loop. Exhausting it is
	// not an error: the best-effort specification is returned flagged
	// Approximate.
	maxRefinementRounds = 64

	// convergenceThreshold is the (x, y) Euclidean distance below which the
	// current specification is accepted.
	convergenceThreshold = 1e-7

	// maxProbeSamples bounds the per-round probe buffers for both hue and
	// chroma refinement. Only the first bracketing pair, or the last two
	// samples for extrapolation, are mathematically needed.
	maxProbeSamples = 4

	// huePhiEpsilon is the polar-angle difference (degrees) under which hue
	// refinement is skipped: the hue is already correct and a zero-magnitude
	// step would stall the round.
	huePhiEpsilon = 1e-9
)

// Converter is the public entry point of the conversion core. It owns the
// injected renotation table and the interpolator built over it, and is safe
// for concurrent use: every query is an independent, pure computation.
type Converter struct {
	table  *Table
	interp *Interpolator
}

// NewConverter returns a Converter over the given renotation table.
func NewConverter(table *Table) *Converter {
	return &Converter{table: table, interp: NewInterpolator(table)}
}

// Table returns the injected renotation table.
func (c *Converter) Table() *Table {
	return c.table
}

// ToChromaticity returns the chromaticity of a Munsell specification. It is
// the forward interpolator, usable standalone for round-trip testing and
// rendering.
func (c *Converter) ToChromaticity(s Specification) (Chromaticity, error) {
	return c.interp.Evaluate(s)
}

// ToSpecification finds the Munsell specification whose chromaticity matches
// the input within the convergence threshold. The solver alternates hue-angle
// and chroma refinement against the forward interpolator; if the iteration
// cap is exhausted first, the best-effort specification is returned with
// Approximate set. Only structurally invalid input errors.
func (c *Converter) ToSpecification(target Chromaticity) (Specification, error) {
	if err := target.Valid(); err != nil {
		return Specification{}, fmt.Errorf("cannot convert chromaticity: %w", err)
	}

	value := LuminanceToValue(target.Luminance)
	rhoTarget, phiTarget := toPolar(target.X, target.Y)
	if rhoTarget < convergenceThreshold {
		return Achromatic(value), nil
	}

	cur := estimateSpecification(target, value)
	if cur.IsAchromatic() {
		// The estimator collapsed a barely-chromatic input; reseed with a
		// small chroma in the direction of the target.
		hue, family := AngleToHue(phiTarget)
		cur = Specification{Hue: hue, Family: family, Value: value, Chroma: 0.5}
	}

	for round := 0; round < maxRefinementRounds; round++ {
		cur = c.refineHue(cur, phiTarget)

		var neutral bool
		cur, neutral = c.refineChroma(cur, rhoTarget)
		if neutral {
			return Achromatic(value), nil
		}

		// The convergence check must follow both refinements: checking after
		// hue alone terminates at hue-correct but chroma-wrong fixed points.
		xy, err := c.interp.Evaluate(cur)
		if err != nil {
			return Specification{}, err
		}
		if math.Hypot(xy.X-target.X, xy.Y-target.Y) < convergenceThreshold {
			return cur.Normalize(), nil
		}
	}

	cur.Approximate = true
	return cur.Normalize(), nil
}

// refineHue adjusts the specification's hue angle so that the polar angle of
// its chromaticity about the grey point approaches the target's. It probes
// candidate angle offsets while holding value and chroma fixed, stopping as
// soon as two samples exist or the phi error changes sign, then solves the
// zero crossing of the last two samples by secant.
func (c *Converter) refineHue(cur Specification, phiTarget float64) Specification {
	xy, err := c.interp.Evaluate(cur)
	if err != nil {
		return cur
	}
	_, phiCur := toPolar(xy.X, xy.Y)
	diff0 := angleDifference(phiTarget, phiCur)
	if math.Abs(diff0) < huePhiEpsilon {
		return cur // already on angle, proceed to chroma refinement
	}

	angle := HueToAngle(cur.Hue, cur.Family)
	var offsets, diffs [maxProbeSamples]float64
	offsets[0], diffs[0] = 0, diff0
	count := 1

	for count < maxProbeSamples {
		trialOffset := float64(count) * diff0
		trialHue, trialFamily := AngleToHue(angle + trialOffset)
		trial := cur
		trial.Hue, trial.Family = trialHue, trialFamily

		txy, err := c.interp.Evaluate(trial)
		if err != nil {
			break
		}
		_, phiTrial := toPolar(txy.X, txy.Y)
		offsets[count] = trialOffset
		diffs[count] = angleDifference(phiTarget, phiTrial)
		count++

		if diffs[count-1]*diff0 <= 0 {
			break // zero bracketed
		}
		if count >= 2 {
			break // enough for extrapolation
		}
	}

	if count < 2 {
		return cur
	}

	// Zero crossing of the last two samples: interpolation when bracketed,
	// extrapolation otherwise.
	o0, d0 := offsets[count-2], diffs[count-2]
	o1, d1 := offsets[count-1], diffs[count-1]
	zero := o1
	if d1 != d0 {
		zero = o0 + (o1-o0)*(0-d0)/(d1-d0)
	}

	cur.Hue, cur.Family = AngleToHue(angle + zero)
	return cur
}

// refineChroma adjusts the specification's chroma so that the polar radius of
// its chromaticity approaches the target's. When the target radius already
// lies strictly between the radii of the adjacent tabulated chromas the
// chroma is interpolated directly; otherwise probe chromas grow or shrink by
// (rhoTarget/rhoCurrent)^n until the target radius is bracketed, then the
// bracket is interpolated. The second return is true when chroma collapsed to
// the achromatic axis.
func (c *Converter) refineChroma(cur Specification, rhoTarget float64) (Specification, bool) {
	rhoAt := func(chroma float64) (float64, bool) {
		trial := cur
		trial.Chroma = chroma
		xy, err := c.interp.Evaluate(trial)
		if err != nil {
			return 0, false
		}
		rho, _ := toPolar(xy.X, xy.Y)
		return rho, true
	}

	rhoCur, ok := rhoAt(cur.Chroma)
	if !ok {
		return cur, false
	}
	if math.Abs(rhoCur-rhoTarget) < convergenceThreshold {
		return cur, cur.IsAchromatic()
	}

	// Direct interpolation when the adjacent tabulated chromas already
	// bracket the target radius.
	cLo := 2 * math.Floor(cur.Chroma/2)
	cHi := cLo + 2
	rhoLo, okLo := rhoAt(cLo)
	rhoHi, okHi := rhoAt(cHi)
	if okLo && okHi && rhoLo < rhoTarget && rhoTarget < rhoHi {
		cur.Chroma = cLo + (cHi-cLo)*(rhoTarget-rhoLo)/(rhoHi-rhoLo)
		return cur, cur.IsAchromatic()
	}

	// Exponential-step search: rho is not linear in chroma near the solid's
	// boundary, so a fixed additive step cannot reliably bracket.
	maxChroma := c.table.MaximumChroma(cur.Hue, cur.Value, cur.Family)
	ratio := rhoTarget / rhoCur
	if rhoCur == 0 || math.IsInf(ratio, 0) {
		ratio = 2
	}

	var chromas, rhos [maxProbeSamples]float64
	chromas[0], rhos[0] = cur.Chroma, rhoCur
	count := 1
	sign0 := math.Signbit(rhoCur - rhoTarget)

	for count < maxProbeSamples {
		probe := cur.Chroma * math.Pow(ratio, float64(count))
		if maxChroma > 0 && probe > maxChroma {
			probe = maxChroma // cap runaway growth at the gamut edge
		}
		rhoProbe, ok := rhoAt(probe)
		if !ok {
			break
		}
		chromas[count], rhos[count] = probe, rhoProbe
		count++
		if math.Signbit(rhoProbe-rhoTarget) != sign0 {
			break // target radius bracketed
		}
	}

	if count < 2 {
		return cur, cur.IsAchromatic()
	}

	c0, r0 := chromas[count-2], rhos[count-2]
	c1, r1 := chromas[count-1], rhos[count-1]
	next := c1
	if r1 != r0 {
		next = c0 + (c1-c0)*(rhoTarget-r0)/(r1-r0)
	}
	if next < 0 {
		next = 0
	}
	if maxChroma > 0 && next > maxChroma {
		next = maxChroma
	}
	cur.Chroma = next
	return cur, cur.IsAchromatic()
}
