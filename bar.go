// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

// Bar chart layout, in layout pixels.
const (
	barPaddingX      = 16
	barPaddingTop    = 24 // room for value labels above the tallest bar
	barPaddingBottom = 12
	barAxisSpace     = 24
	titleSpace       = 28
	barGapRatio      = 0.1
)

// BuildBarGeometry computes bar shapes for ds.
//
// The data set is truncated to the first opts.MaxShapes entries in the
// order given; callers wanting a ranking must sort beforehand. Bar heights
// are value/max times the plotting area height, where max is taken over
// the truncated entries. An empty data set, a zero max, or a viewport too
// small to plot in yields an empty Geometry.
func BuildBarGeometry(ds *DataSet, vp Viewport, opts Options) *Geometry {
	g := emptyGeometry(KindBar, vp, opts)
	if !vp.Valid() {
		return g
	}

	top := float64(barPaddingTop)
	if opts.Title != "" {
		top += titleSpace
	}
	bottom := vp.Height - barPaddingBottom
	if opts.ShowAxisLabels {
		bottom -= barAxisSpace
	}
	g.Area = Rect{X: barPaddingX, Y: top, Width: vp.Width - 2*barPaddingX, Height: bottom - top}
	if g.Area.Width <= 0 || g.Area.Height <= 0 {
		return g
	}

	entries := ds.Truncate(opts.MaxShapes)
	maxValue := entries.Max()
	if entries.Len() == 0 || maxValue == 0 {
		return g
	}

	palette := ResolvePalette(opts.Palette)
	slot := g.Area.Width / float64(entries.Len())
	gap := slot * barGapRatio
	chartHeight := g.Area.Height

	g.Bars = make([]Bar, entries.Len())
	for i := range g.Bars {
		e := entries.At(i)
		h := (drawable(e.Value) / maxValue) * chartHeight
		g.Bars[i] = Bar{
			Rect: Rect{
				X:      g.Area.X + float64(i)*slot + gap/2,
				Y:      bottom - h,
				Width:  slot - gap,
				Height: h,
			},
			Label:     e.Label,
			Value:     e.Value,
			Color:     palette.At(i),
			ValueText: opts.ValueFormat.Format(e.Value),
		}
		if opts.ShowAxisLabels {
			g.Bars[i].AxisLabel = opts.axisLabel(i)
		}
	}
	return g
}
