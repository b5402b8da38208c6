package cli

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders for input images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/painterly"
	"github.com/gogpu/painterly/canvas"
)

// decodeRaster decodes an image in any registered format and downscales it
// so its longest side is at most maxSize. A maxSize of 0 keeps the size.
func decodeRaster(r io.Reader, maxSize int) (*painterly.Raster, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return painterly.RasterFromImage(img).Resize(maxSize), format, nil
}

// loadRaster opens and decodes the image file at path.
func loadRaster(path string, maxSize int) (*painterly.Raster, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	src, format, err := decodeRaster(f, maxSize)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return src, format, nil
}

// paint renders src with cfg onto a new canvas. The caller closes the canvas.
func paint(ctx context.Context, src *painterly.Raster, cfg renderConfig) (*canvas.Canvas, error) {
	seed := cfg.seed()
	logger := loggerFromContext(ctx)
	logger.Debug("painting", "width", src.Width(), "height", src.Height(), "seed", seed)

	session, err := painterly.NewSession(src, cfg.RenderStyle, painterly.NewRand(seed), painterly.WithWorkers(0))
	if err != nil {
		return nil, err
	}

	c, err := canvas.New(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	if _, err := c.Render(ctx, session, cfg.Batch); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}
