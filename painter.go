package painterly

import (
	"image"
	"math"
)

// Color perturbation ranges.
const (
	valueBoostMin      = 1.35
	valueBoostMax      = 1.65
	saturationBoostMin = 1.15
	saturationBoostMax = 1.35
	complementMin      = 0.4
	complementMax      = 0.6
	hueDriftChance     = 0.35
	hueDriftMean       = 0.05
	hueDriftSD         = 0.05
)

// Stroke is one draw command: a filled ellipse without outline, centered on
// Center, Length long and Width wide, rotated by Rotation degrees.
type Stroke struct {
	Center   image.Point
	Color    RGB
	Rotation float64
	Length   float64
	Width    float64
}

// ComputeStroke derives the stroke painted for pixel (x, y) whose source
// color is src. It draws nothing; random choices come only from rng.
//
// The color is brightened and saturated, and its hue is either pushed
// toward the complement or, occasionally, drifted slightly. In the
// impressionist style the stroke follows field's direction and grows with
// the square root of its magnitude; otherwise it is a fixed-size dot and
// field may be nil.
//
// It panics with a *CoordinateError if (x, y) is outside field.
func ComputeStroke(x, y int, src RGB, field *GradientField, style RenderStyle, rng Rand) Stroke {
	c := src.HSV()

	c.V = math.Min(1, c.V*uniform(rng, valueBoostMin, valueBoostMax))
	c.S = math.Min(1, c.S*uniform(rng, saturationBoostMin, saturationBoostMax))

	if style.ComplementaryColor {
		c.H = Mod(c.H+uniform(rng, complementMin, complementMax), 1)
	} else if rng.Float64() < hueDriftChance {
		c.H = math.Min(c.H+gaussian(rng, hueDriftMean, hueDriftSD), 1)
	}

	s := Stroke{
		Center: image.Point{X: x, Y: y},
		Color:  c.RGB(),
	}

	if style.Impressionism {
		scale := style.StrokeScale(field.Width(), field.Height())
		s.Rotation = field.Direction(x, y)
		s.Length = scale + scale*math.Sqrt(field.Magnitude(x, y))
		s.Width = scale
	} else {
		s.Length = flatStrokeDiameter * style.StrokeSizeFactor
		s.Width = s.Length
	}
	return s
}
