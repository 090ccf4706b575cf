// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/gogpu/ggchart/internal/polar"
)

// Pie chart layout, in layout pixels.
const (
	pieInset      = 16
	pieHoverDelta = 6
	pieHitSlop    = 2
)

// BuildPieGeometry computes pie slices for ds. MaxShapes is ignored.
//
// Slices start at 12 o'clock and proceed clockwise in data set order, each
// spanning value/total of a full turn. The last slice ends exactly one turn
// after the first starts. A zero total or a viewport too small for a pie
// yields an empty Geometry with no legend.
func BuildPieGeometry(ds *DataSet, vp Viewport, opts Options) *Geometry {
	g := emptyGeometry(KindPie, vp, opts)
	if !vp.Valid() {
		return g
	}

	top := 0.0
	if opts.Title != "" {
		top = titleSpace
	}
	g.Area = Rect{X: 0, Y: top, Width: vp.Width, Height: vp.Height - top}
	g.Center = gg.Pt(g.Area.X+g.Area.Width/2, g.Area.Y+g.Area.Height/2)
	g.Radius = min(g.Area.Width, g.Area.Height)/2 - pieInset

	total, unit := pieTotal(ds)
	if total == 0 || g.Radius <= 0 {
		return g
	}

	palette := ResolvePalette(opts.Palette)
	printer := message.NewPrinter(opts.Locale)
	n := ds.Len()
	g.Slices = make([]Slice, n)
	g.Legend = make([]LegendEntry, n)

	angle := polar.Up
	for i := 0; i < n; i++ {
		e := ds.At(i)
		end := angle + drawable(e.Value)/unit/total*polar.TwoPi
		if i == n-1 {
			end = polar.Up + polar.TwoPi
		}
		g.Slices[i] = Slice{
			StartAngle: angle,
			EndAngle:   end,
			Label:      e.Label,
			Value:      e.Value,
			Color:      palette.At(i),
		}
		g.Legend[i] = LegendEntry{
			Label:     e.Label,
			Value:     e.Value,
			ValueText: legendValue(printer, opts.ValueFormat, e.Value),
			Color:     palette.At(i),
		}
		angle = end
	}
	return g
}

// pieTotal returns the sum of drawable values in units of unit. The unit is
// 1 unless the sum overflows, in which case values are measured relative
// to the largest one so spans stay proportional.
func pieTotal(ds *DataSet) (total, unit float64) {
	total = ds.Sum()
	if !math.IsInf(total, 1) {
		return total, 1
	}
	unit = ds.Max()
	total = 0
	for i := 0; i < ds.Len(); i++ {
		total += drawable(ds.At(i).Value) / unit
	}
	return total, unit
}

// legendValue formats a raw value with locale-aware digit grouping.
func legendValue(p *message.Printer, f ValueFormat, v float64) string {
	if f == FormatDecimal {
		return p.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}
