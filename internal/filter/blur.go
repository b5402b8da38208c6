package filter

// MinRadius is the smallest radius that blurs. Below half a pixel the
// Gaussian tails carry no visible weight and the pass is skipped.
const MinRadius = 0.5

// Runner splits [0, n) into bands and waits for fn to finish all of them.
// *parallel.Pool implements Runner.
type Runner interface {
	Run(n int, fn func(lo, hi int))
}

// BlurFilter applies a separable blur to float planes.
type BlurFilter struct {
	// RadiusX is the horizontal blur radius in pixels.
	RadiusX float64

	// RadiusY is the vertical blur radius in pixels.
	RadiusY float64

	// Box selects a box kernel of half-width round(radius) instead of a Gaussian.
	Box bool
}

// NewBlurFilter creates a Gaussian blur with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{RadiusX: radius, RadiusY: radius}
}

// NewBlurFilterXY creates a Gaussian blur with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{RadiusX: radiusX, RadiusY: radiusY}
}

// Apply blurs the width×height plane src into dst. dst may alias src.
// A nil Runner processes all rows on the calling goroutine.
//
// Apply panics if src or dst is shorter than width*height.
func (f *BlurFilter) Apply(dst, src []float64, width, height int, r Runner) {
	n := width * height
	if width <= 0 || height <= 0 {
		return
	}
	_ = src[n-1]
	_ = dst[n-1]
	if r == nil {
		r = inline{}
	}

	blurX := f.RadiusX >= MinRadius
	blurY := f.RadiusY >= MinRadius

	switch {
	case blurX && blurY:
		temp := make([]float64, n)
		kx, ky := f.kernel(f.RadiusX), f.kernel(f.RadiusY)
		r.Run(height, func(lo, hi int) { blurHorizontal(temp, src, width, lo, hi, kx) })
		r.Run(width, func(lo, hi int) { blurVertical(dst, temp, width, height, lo, hi, ky) })
	case blurX:
		temp := make([]float64, n)
		kx := f.kernel(f.RadiusX)
		r.Run(height, func(lo, hi int) { blurHorizontal(temp, src, width, lo, hi, kx) })
		copy(dst, temp)
	case blurY:
		temp := make([]float64, n)
		copy(temp, src[:n])
		ky := f.kernel(f.RadiusY)
		r.Run(width, func(lo, hi int) { blurVertical(dst, temp, width, height, lo, hi, ky) })
	default:
		copy(dst[:n], src[:n])
	}
}

func (f *BlurFilter) kernel(radius float64) []float64 {
	if f.Box {
		return BoxKernel(int(radius + 0.5))
	}
	return CachedGaussianKernel(radius)
}

// blurHorizontal convolves rows [y0, y1) of src with kernel into dst.
func blurHorizontal(dst, src []float64, width, y0, y1 int, kernel []float64) {
	half := len(kernel) / 2
	for y := y0; y < y1; y++ {
		row := src[y*width : (y+1)*width]
		out := dst[y*width : (y+1)*width]
		for x := range out {
			var sum float64
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				sum += row[kx] * weight
			}
			out[x] = sum
		}
	}
}

// blurVertical convolves columns [x0, x1) of src with kernel into dst.
func blurVertical(dst, src []float64, width, height, x0, x1 int, kernel []float64) {
	half := len(kernel) / 2
	for x := x0; x < x1; x++ {
		for y := 0; y < height; y++ {
			var sum float64
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				sum += src[ky*width+x] * weight
			}
			dst[y*width+x] = sum
		}
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type inline struct{}

func (inline) Run(n int, fn func(lo, hi int)) {
	if n > 0 {
		fn(0, n)
	}
}
