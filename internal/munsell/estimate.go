package munsell

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// illuminantCWhite is the illuminant C white point in XYZ, derived from the
// grey-point chromaticity. It anchors the Lab auxiliary space the estimator
// works in.
var illuminantCWhite = [3]float64{
	IlluminantCx / IlluminantCy,
	1.0,
	(1 - IlluminantCx - IlluminantCy) / IlluminantCy,
}

// go-colorful scales L*, a*, b* down by 100.
const labScale = 100

// estimatorChromaScale maps LCHab chroma to an initial Munsell chroma. The
// nominal ratio is C*/5; the correction factor accounts for the hue-averaged
// difference between Lab and renotation chroma spacing.
const estimatorChromaScale = 1.0 / 5 * (5.0 / 5.5)

// lchFamilyBySlab maps each 36-degree slab of the LCHab hue circle to the
// Munsell family whose colours dominate it, starting at hab = 0.
var lchFamilyBySlab = [10]Family{
	FamilyR, FamilyYR, FamilyY, FamilyGY, FamilyG,
	FamilyBG, FamilyB, FamilyPB, FamilyP, FamilyRP,
}

// estimateSpecification produces the solver's seed from an input
// chromaticity: value from the inverse value scale, hue and family from the
// LCHab hue angle under illuminant C, chroma from scaled LCHab chroma. The
// estimate only needs to be close enough for the solver to converge quickly;
// accuracy costs iterations, never correctness.
func estimateSpecification(target Chromaticity, value float64) Specification {
	x, y, z := colorful.XyyToXyz(target.X, target.Y, target.Luminance)
	_, a, b := colorful.XyzToLabWhiteRef(x, y, z, illuminantCWhite)
	a *= labScale
	b *= labScale

	chromaAB := math.Hypot(a, b)
	if chromaAB*estimatorChromaScale <= achromaticChroma {
		return Achromatic(value)
	}

	hab := math.Atan2(b, a) * 180 / math.Pi
	if hab < 0 {
		hab += 360
	}

	slab := int(hab/36) % 10
	family := lchFamilyBySlab[slab]
	hue := math.Mod(hab, 36) / 3.6
	if hue == 0 {
		hue = 10
		family = family%10 + 1
	}

	return Specification{
		Hue:    hue,
		Family: family,
		Value:  value,
		Chroma: chromaAB * estimatorChromaScale,
	}.Normalize()
}
