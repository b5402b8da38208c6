package filter

// Test helpers shared across filter tests.

// constPlane returns a width×height plane filled with v.
func constPlane(width, height int, v float64) []float64 {
	p := make([]float64, width*height)
	for i := range p {
		p[i] = v
	}
	return p
}

// approxEqual compares two floats with tolerance.
func approxEqual(a, b, tolerance float64) bool {
	return absf(a-b) < tolerance
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// bands is a Runner that splits work into fixed-size bands sequentially.
type bands int

func (b bands) Run(n int, fn func(lo, hi int)) {
	for lo := 0; lo < n; lo += int(b) {
		fn(lo, min(lo+int(b), n))
	}
}
