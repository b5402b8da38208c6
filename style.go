package painterly

import "fmt"

// Documented ranges of the RenderStyle scalars.
const (
	MinStrokeSize = 1.0
	MaxStrokeSize = 2.0
	MinDensity    = 0.01
	MaxDensity    = 1.0
)

// flatStrokeDiameter is the stroke size of the pointillist mode before scaling.
const flatStrokeDiameter = 4

// strokeScaleDivisor relates the impressionist stroke width to the image size.
const strokeScaleDivisor = 900

// RenderStyle selects how strokes are colored and shaped.
// It is a plain value; every stroke computation receives it explicitly.
type RenderStyle struct {
	// ComplementaryColor pushes each stroke's hue toward its complement.
	ComplementaryColor bool `toml:"complementary_color"`

	// Impressionism orients and stretches strokes along image edges.
	// When false, strokes are small unrotated dots.
	Impressionism bool `toml:"impressionism"`

	// StrokeSizeFactor scales every stroke, nominally in [1, 2].
	StrokeSizeFactor float64 `toml:"stroke_size"`

	// StrokeDensity is the probability that a pixel receives a stroke,
	// nominally in [0.01, 1].
	StrokeDensity float64 `toml:"density"`
}

// DefaultStyle returns the impressionist style with unit stroke size and
// half of the pixels painted.
func DefaultStyle() RenderStyle {
	return RenderStyle{
		Impressionism:    true,
		StrokeSizeFactor: 1,
		StrokeDensity:    0.5,
	}
}

// Validate reports whether the scalars lie in their documented ranges.
// The core accepts any values; Validate is for configuration input.
func (s RenderStyle) Validate() error {
	if !(s.StrokeSizeFactor >= MinStrokeSize && s.StrokeSizeFactor <= MaxStrokeSize) {
		return fmt.Errorf("%w: stroke size %v not in [%v, %v]", ErrInvalidStyle, s.StrokeSizeFactor, MinStrokeSize, MaxStrokeSize)
	}
	if !(s.StrokeDensity >= MinDensity && s.StrokeDensity <= MaxDensity) {
		return fmt.Errorf("%w: density %v not in [%v, %v]", ErrInvalidStyle, s.StrokeDensity, MinDensity, MaxDensity)
	}
	return nil
}

// StrokeScale returns the impressionist base stroke size for a width×height image.
func (s RenderStyle) StrokeScale(width, height int) float64 {
	return float64(max(width, height)) / strokeScaleDivisor * s.StrokeSizeFactor
}
