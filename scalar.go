package painterly

// ScalarField is a width×height grid of real-valued samples, stored row-major.
type ScalarField struct {
	width  int
	height int
	data   []float64
}

// NewScalarField creates a zero-filled field. Negative dimensions are treated as zero.
func NewScalarField(width, height int) *ScalarField {
	width, height = max(width, 0), max(height, 0)
	return &ScalarField{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// Width returns the width of the field.
func (f *ScalarField) Width() int { return f.width }

// Height returns the height of the field.
func (f *ScalarField) Height() int { return f.height }

// Inside reports whether (x, y) is a sample of f.
func (f *ScalarField) Inside(x, y int) bool {
	return inside(x, y, f.width, f.height)
}

// At returns the sample at (x, y).
// It panics with a *CoordinateError if (x, y) is outside the field.
func (f *ScalarField) At(x, y int) float64 {
	mustInside(x, y, f.width, f.height)
	return f.data[y*f.width+x]
}

// Set stores v at (x, y).
// It panics with a *CoordinateError if (x, y) is outside the field.
func (f *ScalarField) Set(x, y int, v float64) {
	mustInside(x, y, f.width, f.height)
	f.data[y*f.width+x] = v
}
