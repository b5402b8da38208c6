package painterly

import (
	"errors"
	"fmt"
)

// Common errors returned by painterly.
var (
	// ErrInvalidDimensions is returned when a raster has zero or negative
	// width or height where a non-empty image is required.
	ErrInvalidDimensions = errors.New("painterly: invalid dimensions")

	// ErrOutOfRange is wrapped by CoordinateError. Per-pixel queries panic
	// with a *CoordinateError instead of clamping.
	ErrOutOfRange = errors.New("painterly: coordinate out of range")

	// ErrInvalidStyle is returned by RenderStyle.Validate.
	ErrInvalidStyle = errors.New("painterly: invalid render style")
)

// CoordinateError describes a query outside [0,Width)×[0,Height).
type CoordinateError struct {
	X, Y          int
	Width, Height int
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("painterly: coordinate (%d,%d) out of range for %dx%d", e.X, e.Y, e.Width, e.Height)
}

// Unwrap returns ErrOutOfRange.
func (e *CoordinateError) Unwrap() error { return ErrOutOfRange }

// inside reports whether (x, y) lies within a width×height grid.
func inside(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// mustInside panics with a *CoordinateError if (x, y) is outside the grid.
func mustInside(x, y, width, height int) {
	if !inside(x, y, width, height) {
		panic(&CoordinateError{X: x, Y: y, Width: width, Height: height})
	}
}
