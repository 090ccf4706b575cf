// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// Surface is the pixel buffer owned by one chart. Its backing store is
// always viewport size times the device pixel ratio; drawing code receives
// the scale and converts layout coordinates to device pixels itself.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	dc       *gg.Context
	viewport Viewport
	scale    float64
	width    int
	height   int
	closed   bool
}

// NewSurface creates a surface for vp at the given device pixel ratio.
func NewSurface(vp Viewport, scale float64) (*Surface, error) {
	w, h, err := backingSize(vp, scale)
	if err != nil {
		return nil, err
	}
	return &Surface{
		dc:       gg.NewContext(w, h),
		viewport: vp,
		scale:    scale,
		width:    w,
		height:   h,
	}, nil
}

// validScale reports whether scale is a finite positive device pixel ratio.
func validScale(scale float64) bool {
	return scale > 0 && !math.IsInf(scale, 0)
}

func backingSize(vp Viewport, scale float64) (int, int, error) {
	if !validScale(scale) {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	if !vp.Valid() {
		return 0, 0, fmt.Errorf("%w: %vx%v", ErrInvalidDimensions, vp.Width, vp.Height)
	}
	w, h := vp.DeviceSize(scale)
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: backing store %dx%d", ErrInvalidDimensions, w, h)
	}
	return w, h, nil
}

// Resize adapts the backing store to a new viewport or scale. The pixel
// buffer is reallocated only if the device size changed.
func (s *Surface) Resize(vp Viewport, scale float64) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	w, h, err := backingSize(vp, scale)
	if err != nil {
		return err
	}
	s.viewport = vp
	s.scale = scale
	if w == s.width && h == s.height {
		return nil
	}
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("ggchart: surface resize failed: %w", err)
	}
	s.width, s.height = w, h
	return nil
}

// Draw calls fn with the drawing context and the device pixel ratio.
func (s *Surface) Draw(fn func(dc *gg.Context, scale float64)) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	fn(s.dc, s.scale)
	return nil
}

// Viewport returns the logical size.
func (s *Surface) Viewport() Viewport { return s.viewport }

// Scale returns the device pixel ratio.
func (s *Surface) Scale() float64 { return s.scale }

// Size returns the backing-store size in device pixels.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// ToLayout converts a device-pixel point to layout coordinates.
func (s *Surface) ToLayout(p gg.Point) gg.Point { return p.Div(s.scale) }

// Image returns the rendered pixels, or nil once closed.
func (s *Surface) Image() image.Image {
	if s.closed {
		return nil
	}
	return s.dc.Image()
}

// EncodePNG writes the rendered pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrSurfaceClosed
	}
	return s.dc.EncodePNG(w)
}

// Closed reports whether Close has been called.
func (s *Surface) Closed() bool { return s.closed }

// Close releases the pixel buffer. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.dc.Close()
}
