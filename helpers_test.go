package painterly

import (
	"errors"
	"math"
	"testing"
)

// Test helpers shared across painterly tests.

// uniformRaster creates a raster filled with one color.
func uniformRaster(w, h int, c RGB) *Raster {
	r := NewRaster(w, h)
	for y := range h {
		for x := range w {
			r.SetRGB(x, y, c)
		}
	}
	return r
}

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// expectCoordinatePanic fails t unless fn panics with a *CoordinateError.
func expectCoordinatePanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic, got none")
		}
		err, ok := rec.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", rec)
		}
		var ce *CoordinateError
		if !errors.As(err, &ce) || !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("panic = %v, want *CoordinateError wrapping ErrOutOfRange", err)
		}
	}()
	fn()
}

// scriptedRand replays fixed values and panics when a stream runs out,
// so tests also pin how many values each call consumes.
type scriptedRand struct {
	floats []float64
	norms  []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) NormFloat64() float64 {
	v := r.norms[0]
	r.norms = r.norms[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) exhausted() bool {
	return len(r.floats) == 0 && len(r.norms) == 0 && len(r.ints) == 0
}
