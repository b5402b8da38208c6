package painterly

// FieldOption configures GradientField construction.
//
// Example:
//
//	// Default: blur radius max(W,H)/50, single goroutine
//	field, err := painterly.NewGradientField(r)
//
//	// Raw Scharr response split over four workers
//	field, err := painterly.NewGradientField(r, painterly.WithoutBlur(), painterly.WithWorkers(4))
type FieldOption func(*fieldOptions)

type fieldOptions struct {
	blur       bool
	blurRadius float64 // negative means derive from the raster size
	workers    int
}

func defaultFieldOptions() fieldOptions {
	return fieldOptions{blur: true, blurRadius: -1, workers: 1}
}

// WithBlurRadius overrides the blur radius applied to both gradient
// components. The radius is used as given: radii below half a pixel,
// including 0, disable the blur. A negative radius restores the default
// max(W,H)/50.
func WithBlurRadius(radius float64) FieldOption {
	return func(o *fieldOptions) {
		o.blur = true
		o.blurRadius = radius
	}
}

// WithoutBlur keeps the raw Scharr response.
func WithoutBlur() FieldOption {
	return func(o *fieldOptions) {
		o.blur = false
	}
}

// WithWorkers splits the build over n goroutines. Values below 1 use GOMAXPROCS.
// The resulting field is identical for any n.
func WithWorkers(n int) FieldOption {
	return func(o *fieldOptions) {
		o.workers = n
	}
}
