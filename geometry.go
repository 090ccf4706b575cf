// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/internal/polar"
)

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p gg.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Bar is the shape record of one bar, in viewport coordinates.
type Bar struct {
	Rect
	Label     string
	Value     float64
	Color     gg.RGBA
	ValueText string
	AxisLabel string
}

// Centroid returns the center of the bar.
func (b Bar) Centroid() gg.Point {
	return gg.Pt(b.X+b.Width/2, b.Y+b.Height/2)
}

// Slice is the shape record of one pie slice. Angles are radians measured
// clockwise in screen space; StartAngle of the first slice is 12 o'clock.
type Slice struct {
	StartAngle float64
	EndAngle   float64
	Label      string
	Value      float64
	Color      gg.RGBA
}

// Span returns the angular size of the slice.
func (s Slice) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// MidAngle returns the angle bisecting the slice.
func (s Slice) MidAngle() float64 {
	return s.StartAngle + s.Span()/2
}

// LegendEntry is one row of the pie legend.
type LegendEntry struct {
	Label     string
	Value     float64
	ValueText string
	Color     gg.RGBA
}

// Geometry is the shape list produced by one geometry build. The same
// Geometry feeds rendering and hit-testing, so drawn shapes and interactive
// regions always agree. A Geometry is immutable once built.
type Geometry struct {
	Kind     Kind
	Viewport Viewport
	Options  Options

	// Area is the plotting area. For bar charts Area.Height is the full
	// scale bar height.
	Area Rect

	Bars []Bar

	Slices []Slice
	Center gg.Point
	Radius float64
	Legend []LegendEntry
}

// Len returns the number of shapes.
func (g *Geometry) Len() int {
	if g == nil {
		return 0
	}
	if g.Kind == KindPie {
		return len(g.Slices)
	}
	return len(g.Bars)
}

// Empty reports whether the geometry is in the placeholder state.
func (g *Geometry) Empty() bool {
	return g.Len() == 0
}

// Shape returns the label and value of shape i.
func (g *Geometry) Shape(i int) (label string, value float64, ok bool) {
	if i < 0 || i >= g.Len() {
		return "", 0, false
	}
	if g.Kind == KindPie {
		return g.Slices[i].Label, g.Slices[i].Value, true
	}
	return g.Bars[i].Label, g.Bars[i].Value, true
}

// Centroid returns a point inside shape i: the bar center, or the point at
// 60% of the radius on a slice's bisector.
func (g *Geometry) Centroid(i int) (gg.Point, bool) {
	if i < 0 || i >= g.Len() {
		return gg.Point{}, false
	}
	if g.Kind == KindPie {
		x, y := polar.PointAt(g.Center.X, g.Center.Y, g.Radius*0.6, g.Slices[i].MidAngle())
		return gg.Pt(x, y), true
	}
	return g.Bars[i].Centroid(), true
}

// valueText formats v for display, in the geometry's value format.
func (g *Geometry) valueText(i int) string {
	_, v, ok := g.Shape(i)
	if !ok {
		return ""
	}
	if g.Kind == KindBar {
		return g.Bars[i].ValueText
	}
	return g.Options.ValueFormat.Format(v)
}

func emptyGeometry(kind Kind, vp Viewport, opts Options) *Geometry {
	return &Geometry{Kind: kind, Viewport: vp, Options: opts}
}
