package painterly

import (
	"fmt"
	"image"
)

// Session is one rendering pass over a raster: the gradient field is built
// once, and a shuffled queue of sampled pixels is drained in batches.
//
// A Session is not safe for concurrent use.
type Session struct {
	src   *Raster
	field *GradientField
	style RenderStyle
	rng   Rand
	queue []image.Point
	total int
}

// NewSession builds the gradient field of src and queues the pixels to paint.
// It returns ErrInvalidDimensions for an empty raster.
func NewSession(src *Raster, style RenderStyle, rng Rand, opts ...FieldOption) (*Session, error) {
	field, err := NewGradientField(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	s := &Session{src: src, field: field, rng: rng}
	s.Reset(style)
	return s, nil
}

// Reset discards the remaining queue and samples a new one for style.
// The gradient field is kept.
func (s *Session) Reset(style RenderStyle) {
	s.style = style
	s.queue = Shuffle(Sample(s.src.Width(), s.src.Height(), style.StrokeDensity, s.rng), s.rng)
	s.total = len(s.queue)

	Logger().Debug("session reset",
		"samples", s.total,
		"density", style.StrokeDensity,
		"impressionism", style.Impressionism,
		"complementary", style.ComplementaryColor)
}

// Next pops up to n samples and returns their strokes in drawing order.
// It returns nil once the queue is empty.
func (s *Session) Next(n int) []Stroke {
	n = min(n, len(s.queue))
	if n <= 0 {
		return nil
	}

	strokes := make([]Stroke, 0, n)
	for range n {
		last := len(s.queue) - 1
		p := s.queue[last]
		s.queue = s.queue[:last]
		strokes = append(strokes, ComputeStroke(p.X, p.Y, s.src.RGBAt(p.X, p.Y), s.field, s.style, s.rng))
	}
	return strokes
}

// Remaining returns the number of samples not yet drawn.
func (s *Session) Remaining() int { return len(s.queue) }

// Total returns the number of samples queued by the last Reset.
func (s *Session) Total() int { return s.total }

// Done reports whether every sample has been drawn.
func (s *Session) Done() bool { return len(s.queue) == 0 }

// Style returns the style of the current pass.
func (s *Session) Style() RenderStyle { return s.style }

// Field returns the gradient field of the source raster.
func (s *Session) Field() *GradientField { return s.field }

// Bounds returns the bounds of the source raster.
func (s *Session) Bounds() image.Rectangle { return s.src.Bounds() }
