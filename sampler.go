package painterly

import "image"

// Sample visits every pixel of a width×height grid in raster-scan order and
// keeps each one with independent probability density. A density of 0 or
// less keeps nothing; 1 or more keeps every pixel.
func Sample(width, height int, density float64, rng Rand) []image.Point {
	if width <= 0 || height <= 0 {
		return nil
	}

	var expected int
	if density > 0 {
		expected = int(float64(width*height) * min(density, 1))
	}
	pts := make([]image.Point, 0, expected)
	for y := range height {
		for x := range width {
			if rng.Float64() < density {
				pts = append(pts, image.Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Shuffle permutes pts in place with a Fisher–Yates shuffle and returns it.
func Shuffle(pts []image.Point, rng Rand) []image.Point {
	for i := len(pts) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		pts[i], pts[j] = pts[j], pts[i]
	}
	return pts
}
