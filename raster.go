package painterly

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Raster is an RGBA pixel grid with channels in [0, 255].
//
// A Raster is read, never modified, by NewGradientField and Session.
type Raster struct {
	img *image.NRGBA
}

// NewRaster creates an opaque black raster. Negative dimensions are treated as zero.
func NewRaster(width, height int) *Raster {
	width, height = max(width, 0), max(height, 0)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &Raster{img: img}
}

// RasterFromImage copies img into a new raster whose origin is (0, 0).
func RasterFromImage(img image.Image) *Raster {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return &Raster{img: dst}
}

// Width returns the width of the raster.
func (r *Raster) Width() int { return r.img.Rect.Dx() }

// Height returns the height of the raster.
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// Inside reports whether (x, y) is a pixel of r.
func (r *Raster) Inside(x, y int) bool {
	return inside(x, y, r.Width(), r.Height())
}

// RGBAt returns the color of the pixel at (x, y).
// It panics with a *CoordinateError if (x, y) is outside the raster.
func (r *Raster) RGBAt(x, y int) RGB {
	mustInside(x, y, r.Width(), r.Height())
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+3 : i+3]
	return RGB{R: float64(p[0]), G: float64(p[1]), B: float64(p[2])}
}

// SetRGB sets the pixel at (x, y) to an opaque c.
// It panics with a *CoordinateError if (x, y) is outside the raster.
func (r *Raster) SetRGB(x, y int, c RGB) {
	mustInside(x, y, r.Width(), r.Height())
	i := r.img.PixOffset(x, y)
	p := r.img.Pix[i : i+4 : i+4]
	p[0] = quantize(c.R)
	p[1] = quantize(c.G)
	p[2] = quantize(c.B)
	p[3] = 255
}

// Resize returns a copy of r scaled with Catmull-Rom so that its longest
// side is maxDim. If r already fits, or maxDim is not positive, r itself
// is returned.
func (r *Raster) Resize(maxDim int) *Raster {
	w, h := r.Width(), r.Height()
	longest := max(w, h)
	if maxDim <= 0 || longest <= maxDim {
		return r
	}
	nw := max(1, w*maxDim/longest)
	nh := max(1, h*maxDim/longest)
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), r.img, r.img.Bounds(), xdraw.Src, nil)
	return &Raster{img: dst}
}

// At implements the image.Image interface.
func (r *Raster) At(x, y int) color.Color { return r.img.At(x, y) }

// Bounds implements the image.Image interface.
func (r *Raster) Bounds() image.Rectangle { return r.img.Rect }

// ColorModel implements the image.Image interface.
func (r *Raster) ColorModel() color.Model { return color.NRGBAModel }
