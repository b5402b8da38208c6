package painterly

import (
	"image/color"
	"math"
)

// Luma weights from ITU-R BT.601.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// RGB is a color with red, green and blue components in [0, 255].
// Components are real-valued so that converted colors keep their precision
// until they are quantized for drawing.
type RGB struct {
	R, G, B float64
}

// HSV is a color in the hue/saturation/value model. Each component is in [0, 1].
type HSV struct {
	H, S, V float64
}

// Gray returns the BT.601 luma of an RGB triple with channels in [0, 255].
// The result is in [0, 255].
func Gray(r, g, b float64) float64 {
	return lumaR*r + lumaG*g + lumaB*b
}

// Mod is a floor-based modulo: the result has the sign of m, so
// Mod(-0.2, 1) is 0.8 rather than -0.2.
func Mod(n, m float64) float64 {
	return math.Mod(math.Mod(n, m)+m, m)
}

// RGBToHSV converts channels in [0, 255] to HSV.
//
// Hue is 0 for colorless inputs (max == min). When two channels share the
// maximum, the first of red, green, blue drives the hue formula.
func RGBToHSV(r, g, b float64) HSV {
	r, g, b = r/255, g/255, b/255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC

	var s float64
	if maxC != 0 {
		s = d / maxC
	}

	var h float64
	if d != 0 {
		switch maxC {
		case r:
			h = Mod((g-b)/d, 6)
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSV{H: h, S: s, V: maxC}
}

// HSVToRGB converts HSV components in [0, 1] to RGB channels in [0, 255].
func HSVToRGB(h, s, v float64) RGB {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch int(Mod(i, 6)) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGB{R: r * 255, G: g * 255, B: b * 255}
}

// Gray returns the BT.601 luma of c.
func (c RGB) Gray() float64 { return Gray(c.R, c.G, c.B) }

// HSV converts c to the HSV model.
func (c RGB) HSV() HSV { return RGBToHSV(c.R, c.G, c.B) }

// RGB converts c back to RGB channels in [0, 255].
func (c HSV) RGB() RGB { return HSVToRGB(c.H, c.S, c.V) }

// Color converts c to an opaque color.NRGBA, rounding and clamping each channel.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: quantize(c.R), G: quantize(c.G), B: quantize(c.B), A: 255}
}

// FromColor converts a standard color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: float64(n.R), G: float64(n.G), B: float64(n.B)}
}

// quantize rounds x to the nearest uint8, clamped to [0, 255].
func quantize(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x + 0.5)
}
