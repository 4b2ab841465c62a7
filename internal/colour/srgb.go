// Package colour bridges display colours and the CIE xyY coordinates the
// conversion core works in. sRGB values are linearized and converted to XYZ
// under D65, then chromatically adapted to illuminant C, the reference white
// of the renotation dataset.
package colour

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/colourkit/munsell/internal/munsell"
)

// Bradford chromatic adaptation between the sRGB white point (D65) and
// illuminant C. Precomputed from the Bradford cone response matrix and the
// two white points.
var (
	bradfordD65ToC = [3][3]float64{
		{1.0097626246, 0.0070317718, 0.0127890653},
		{0.0122948004, 0.9847268777, 0.0032946221},
		{0.0038253115, -0.0072270014, 1.0890962331},
	}
	bradfordCToD65 = [3][3]float64{
		{0.9904628966, -0.0071579326, -0.0116091780},
		{-0.0123545038, 1.0155767475, -0.0029271417},
		{-0.0035608563, 0.0067642837, 0.9182138583},
	}
)

// applyMatrix multiplies a 3x3 matrix with an XYZ triple.
func applyMatrix(m [3][3]float64, x, y, z float64) (float64, float64, float64) {
	return m[0][0]*x + m[0][1]*y + m[0][2]*z,
		m[1][0]*x + m[1][1]*y + m[1][2]*z,
		m[2][0]*x + m[2][1]*y + m[2][2]*z
}

// FromHex converts an sRGB hex string such as "#1a2b3c" to an illuminant-C
// xyY chromaticity.
func FromHex(hex string) (munsell.Chromaticity, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return munsell.Chromaticity{}, fmt.Errorf("invalid hex colour %q: %w", hex, err)
	}
	return FromColorful(c), nil
}

// FromColor converts any image/color.Color to an illuminant-C xyY
// chromaticity.
func FromColor(c color.Color) munsell.Chromaticity {
	cf, _ := colorful.MakeColor(c)
	return FromColorful(cf)
}

// FromColorful converts a colorful sRGB colour to an illuminant-C xyY
// chromaticity.
func FromColorful(c colorful.Color) munsell.Chromaticity {
	x, y, z := c.Xyz()
	x, y, z = applyMatrix(bradfordD65ToC, x, y, z)
	cx, cy, lum := colorful.XyzToXyy(x, y, z)
	return munsell.Chromaticity{X: cx, Y: cy, Luminance: lum}
}

// ToHex converts an xyY chromaticity back to an sRGB hex string, clamping to
// the displayable gamut.
func ToHex(c munsell.Chromaticity) string {
	x, y, z := colorful.XyyToXyz(c.X, c.Y, c.Luminance)
	x, y, z = applyMatrix(bradfordCToD65, x, y, z)
	return colorful.Xyz(x, y, z).Clamped().Hex()
}

// ToRGB converts an xyY chromaticity to 8-bit sRGB components, clamping to
// the displayable gamut.
func ToRGB(c munsell.Chromaticity) (uint8, uint8, uint8) {
	x, y, z := colorful.XyyToXyz(c.X, c.Y, c.Luminance)
	x, y, z = applyMatrix(bradfordCToD65, x, y, z)
	return colorful.Xyz(x, y, z).Clamped().RGB255()
}
