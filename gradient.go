package painterly

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/painterly/internal/filter"
	"github.com/gogpu/painterly/internal/parallel"
)

// blurDivisor relates the blur radius to the raster size: radius = max(W,H)/50.
const blurDivisor = 50

// GradientField holds the smoothed Scharr gradient of a raster.
//
// A GradientField is immutable after NewGradientField returns, so it may be
// queried from any number of goroutines.
type GradientField struct {
	width  int
	height int
	xDir   *ScalarField
	yDir   *ScalarField
}

// NewGradientField builds the gradient field of r:
//  1. convert r to real-valued grayscale (BT.601 luma)
//  2. convolve with ScharrX and ScharrY, skipping out-of-bounds neighbors
//  3. blur both components with radius max(W,H)/50 unless disabled
//
// It returns ErrInvalidDimensions for an empty raster.
func NewGradientField(r *Raster, opts ...FieldOption) (*GradientField, error) {
	if r == nil || r.Width() <= 0 || r.Height() <= 0 {
		w, h := 0, 0
		if r != nil {
			w, h = r.Width(), r.Height()
		}
		return nil, fmt.Errorf("gradient field of %dx%d raster: %w", w, h, ErrInvalidDimensions)
	}

	o := defaultFieldOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	width, height := r.Width(), r.Height()

	var pool *parallel.Pool
	if o.workers != 1 {
		pool = parallel.NewPool(o.workers)
		defer pool.Close()
	}

	gray := grayscale(r, pool)

	xDir := NewScalarField(width, height)
	yDir := NewScalarField(width, height)
	pool.Run(height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < width; x++ {
				i := y*width + x
				xDir.data[i] = ApplyKernel(gray, x, y, ScharrX)
				yDir.data[i] = ApplyKernel(gray, x, y, ScharrY)
			}
		}
	})

	radius := 0.0
	if o.blur {
		radius = o.blurRadius
		if radius < 0 {
			radius = float64(max(width, height)) / blurDivisor
		}
		blur := filter.NewBlurFilter(radius)
		blur.Apply(xDir.data, xDir.data, width, height, pool)
		blur.Apply(yDir.data, yDir.data, width, height, pool)
	}

	Logger().Debug("gradient field built",
		"width", width,
		"height", height,
		"blur_radius", radius,
		"workers", pool.Workers(),
		"elapsed", time.Since(start))

	return &GradientField{width: width, height: height, xDir: xDir, yDir: yDir}, nil
}

// grayscale converts r to a field of luma values in [0, 255].
func grayscale(r *Raster, pool *parallel.Pool) *ScalarField {
	width, height := r.Width(), r.Height()
	gray := NewScalarField(width, height)
	pix, stride := r.img.Pix, r.img.Stride

	pool.Run(height, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := pix[y*stride : y*stride+width*4]
			out := gray.data[y*width : (y+1)*width]
			for x := range out {
				p := row[x*4 : x*4+3 : x*4+3]
				out[x] = Gray(float64(p[0]), float64(p[1]), float64(p[2]))
			}
		}
	})
	return gray
}

// Width returns the width of the source raster.
func (g *GradientField) Width() int { return g.width }

// Height returns the height of the source raster.
func (g *GradientField) Height() int { return g.height }

// Inside reports whether (x, y) can be queried.
func (g *GradientField) Inside(x, y int) bool {
	return inside(x, y, g.width, g.height)
}

// Gradient returns the smoothed x and y gradient components at (x, y).
// It panics with a *CoordinateError if (x, y) is outside the field.
func (g *GradientField) Gradient(x, y int) (gx, gy float64) {
	mustInside(x, y, g.width, g.height)
	i := y*g.width + x
	return g.xDir.data[i], g.yDir.data[i]
}

// Direction returns the stroke angle at (x, y) in degrees: the gradient
// angle plus 90°, so strokes follow edges instead of crossing them.
// A zero gradient yields 90.
//
// It panics with a *CoordinateError if (x, y) is outside the field.
func (g *GradientField) Direction(x, y int) float64 {
	gx, gy := g.Gradient(x, y)
	return math.Atan2(gy, gx)*180/math.Pi + 90
}

// Magnitude returns the Euclidean norm of the gradient at (x, y).
//
// It panics with a *CoordinateError if (x, y) is outside the field.
func (g *GradientField) Magnitude(x, y int) float64 {
	gx, gy := g.Gradient(x, y)
	return math.Hypot(gx, gy)
}
