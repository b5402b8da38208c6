// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/painterly"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("canvas: canvas is closed")
)

// Canvas wraps a gg.Context cleared to white, the paper strokes land on.
type Canvas struct {
	dc     *gg.Context
	width  int
	height int
	drawn  int
	closed bool
}

// New creates a white canvas of the given size.
// It returns an error wrapping painterly.ErrInvalidDimensions if width or
// height is not positive.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: %dx%d: %w", width, height, painterly.ErrInvalidDimensions)
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)

	return &Canvas{dc: dc, width: width, height: height}, nil
}

// Width returns the canvas width.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height.
func (c *Canvas) Height() int { return c.height }

// Drawn returns the number of strokes drawn so far.
func (c *Canvas) Drawn() int { return c.drawn }

// Clear repaints the canvas white, as when a session is reset.
func (c *Canvas) Clear() error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.dc.ClearWithColor(gg.White)
	c.drawn = 0
	return nil
}

// Draw stamps strokes in order. Each one is an ellipse Length wide along
// its rotated x axis and Width tall, centered on the stroke's pixel.
func (c *Canvas) Draw(strokes ...painterly.Stroke) error {
	if c.closed {
		return ErrCanvasClosed
	}

	for _, s := range strokes {
		c.dc.Push()
		c.dc.Translate(float64(s.Center.X), float64(s.Center.Y))
		if s.Rotation != 0 {
			c.dc.Rotate(s.Rotation * math.Pi / 180)
		}
		c.dc.SetRGB(channel(s.Color.R), channel(s.Color.G), channel(s.Color.B))
		c.dc.DrawEllipse(0, 0, s.Length/2, s.Width/2)
		err := c.dc.Fill()
		c.dc.Pop()
		if err != nil {
			return fmt.Errorf("canvas: fill stroke at %v: %w", s.Center, err)
		}
		c.drawn++
	}
	return nil
}

// Image returns a copy of the canvas pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("canvas: save %s: %w", path, err)
	}
	return nil
}

// Close releases the drawing context. Close is safe to call more than once.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dc.Close()
}

// channel maps a [0, 255] component to gg's [0, 1] range.
func channel(v float64) float64 {
	return math.Min(1, math.Max(0, v/255))
}
