// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart/internal/polar"
)

// HitTest returns the index of the shape containing p, in the coordinate
// space g was built in (layout pixels). Shapes are tested in order and the
// first match wins. HitTest is pure and O(n).
func HitTest(g *Geometry, p gg.Point) (int, bool) {
	if g.Empty() {
		return -1, false
	}
	if g.Kind == KindPie {
		return hitTestSlices(g, p)
	}
	return hitTestBars(g.Bars, p)
}

func hitTestBars(bars []Bar, p gg.Point) (int, bool) {
	for i := range bars {
		if bars[i].Contains(p) {
			return i, true
		}
	}
	return -1, false
}

func hitTestSlices(g *Geometry, p gg.Point) (int, bool) {
	d := p.Sub(g.Center)
	if d.Length() > g.Radius+pieHitSlop {
		return -1, false
	}
	a := polar.Angle(d.X, d.Y)
	for i, s := range g.Slices {
		if polar.InSpan(a, s.StartAngle, s.EndAngle) {
			return i, true
		}
	}
	return -1, false
}
