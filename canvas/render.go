// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"context"
	"time"

	"github.com/gogpu/painterly"
)

// DefaultBatch is the number of strokes drawn between cancellation checks.
const DefaultBatch = 1000

// Render drains s onto the canvas, batch strokes at a time, and returns the
// number of strokes this call drew, including those of a batch that failed
// partway. It stops early with ctx.Err() if ctx is done
// between batches. A batch below 1 uses DefaultBatch.
func (c *Canvas) Render(ctx context.Context, s *painterly.Session, batch int) (int, error) {
	if batch < 1 {
		batch = DefaultBatch
	}

	log := painterly.Logger()
	start := time.Now()
	before := c.drawn

	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return c.drawn - before, err
		}
		strokes := s.Next(batch)
		if err := c.Draw(strokes...); err != nil {
			return c.drawn - before, err
		}
		log.Debug("batch drawn", "strokes", len(strokes), "remaining", s.Remaining())
	}

	drawn := c.drawn - before
	log.Debug("render complete", "strokes", drawn, "elapsed", time.Since(start))
	return drawn, nil
}
