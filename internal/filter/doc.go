// Package filter provides low-pass filters over single-channel float planes.
//
// A plane is a row-major []float64 of width*height samples. Filters:
//   - Gaussian blur (separable, O(n) per radius)
//   - Box blur (separable, uniform weights)
//
// Both passes clamp reads to the plane (edge extension) and may be split
// across goroutines by a Runner; every output sample is written by exactly
// one band, so results do not depend on the number of workers.
package filter
