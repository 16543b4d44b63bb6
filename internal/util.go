package internal

import "math"

// Shared tolerance for every "close enough" comparison in the package. The
// value is 1e-5, written the way it has always been written.
const Epsilon = 10e-6

// Tolerance based float equality. Note that this is inclusive, so values
// exactly Epsilon apart still compare equal.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Linearly remap value from the interval [low1, high1] onto [low2, high2].
// Values outside the source interval extrapolate. If low1 == high1 the result
// is NaN or infinite.
func MapRange(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}
