// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas rasterizes painterly strokes with gogpu/gg.
//
// Each [painterly.Stroke] becomes a filled, rotated ellipse without
// outline. The data flow is:
//
//	painterly.Session (strokes) -> Canvas (gg.Context) -> PNG / image.Image
//
// # Usage
//
//	s, err := painterly.NewSession(src, style, painterly.NewRand(seed))
//	if err != nil {
//	    return err
//	}
//	cv, err := canvas.New(src.Width(), src.Height())
//	if err != nil {
//	    return err
//	}
//	defer cv.Close()
//
//	if _, err := cv.Render(ctx, s, canvas.DefaultBatch); err != nil {
//	    return err
//	}
//	return cv.SavePNG("out.png")
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Strokes may be computed on other
// goroutines, but Draw must be called from one goroutine at a time.
package canvas
