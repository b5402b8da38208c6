// Package painterly turns a raster image into a painterly rendering.
//
// # Overview
//
// Each painted pixel becomes one brush stroke: an ellipse whose color is a
// perturbed version of the source pixel and whose orientation and length
// follow the local edge direction and strength of the image.
//
// # Quick Start
//
//	src := painterly.RasterFromImage(img)
//	rng := painterly.NewRand(42)
//
//	s, err := painterly.NewSession(src, painterly.DefaultStyle(), rng)
//	if err != nil {
//	    return err
//	}
//	for !s.Done() {
//	    for _, st := range s.Next(1000) {
//	        // draw st with any rasterizer, or use the canvas package
//	    }
//	}
//
// # Pipeline
//
//   - Color: BT.601 grayscale and RGB↔HSV conversions ([Gray], [RGBToHSV], [HSVToRGB])
//   - Convolution: 3×3 kernels with out-of-bounds neighbors skipped ([ApplyKernel])
//   - GradientField: Scharr gradient, blurred by max(W,H)/50 ([NewGradientField])
//   - Sampling: Bernoulli selection plus shuffle ([Sample], [Shuffle])
//   - Strokes: color and geometry per sample ([ComputeStroke])
//
// # Coordinate System
//
//   - Origin (0,0) at top-left, X increases right, Y increases down
//   - Stroke rotations are in degrees
//
// # Errors
//
// Constructors return errors wrapping [ErrInvalidDimensions]. Per-pixel
// queries outside the image are programming errors and panic with a
// [*CoordinateError], which wraps [ErrOutOfRange].
//
// # Randomness
//
// All randomness is drawn from an explicit [Rand]; the same seed and style
// reproduce the same strokes.
package painterly

// Version is the current version of the library.
const Version = "0.1.0"
