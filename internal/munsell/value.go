package munsell

import "math"

// Coefficients of the ASTM D1535 quintic mapping Munsell value to luminance
// on a 0-100 percentage scale.
var valueCoefficients = [6]float64{0, 1.1914, -0.22533, 0.23352, -0.020484, 0.00081939}

const (
	valueInverseTolerance  = 1e-10
	valueInverseIterations = 100
)

// ValueToLuminance converts a Munsell value in [0, 10] to relative luminance
// in [0, 1] using the ASTM D1535 polynomial.
func ValueToLuminance(value float64) float64 {
	return valuePolynomial(value) / 100
}

// valuePolynomial evaluates the quintic on the 0-100 percentage scale.
func valuePolynomial(value float64) float64 {
	sum := 0.0
	for i := 5; i >= 1; i-- {
		sum = (sum + valueCoefficients[i]) * value
	}
	return sum
}

// valuePolynomialDerivative evaluates d/dv of the quintic.
func valuePolynomialDerivative(value float64) float64 {
	sum := 0.0
	for i := 5; i >= 1; i-- {
		sum = sum*value + float64(i)*valueCoefficients[i]
	}
	return sum
}

// LuminanceToValue converts relative luminance in [0, 1] to a Munsell value
// in [0, 10]. The quintic has no closed-form inverse; Newton-Raphson is used
// with a bisection fallback whenever a step leaves the bracketing interval.
// The result is clamped to [0, 10] and is never an error: if the iteration
// budget runs out the best bisection midpoint is returned.
func LuminanceToValue(luminance float64) float64 {
	target := luminance * 100
	if target <= 0 {
		return 0
	}
	if target >= 100 {
		return 10
	}

	lo, hi := 0.0, 10.0
	v := 10 * luminance // monotone quintic, the identity line seeds well
	for i := 0; i < valueInverseIterations; i++ {
		f := valuePolynomial(v) - target
		if math.Abs(f) < valueInverseTolerance {
			return clamp(v, 0, 10)
		}
		if f > 0 {
			hi = v
		} else {
			lo = v
		}
		d := valuePolynomialDerivative(v)
		next := v - f/d
		if d == 0 || next <= lo || next >= hi {
			next = (lo + hi) / 2
		}
		v = next
	}
	return clamp((lo+hi)/2, 0, 10)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
