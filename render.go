// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ggchart/internal/polar"
)

// Text sizes in layout pixels.
const (
	titleFontSize = 15
	labelFontSize = 11
	placeholderFS = 13

	barShadeAmount = 0.12
	sliceStroke    = 2
)

// PlaceholderText is drawn when there is no data to show.
const PlaceholderText = "No data"

var (
	defaultFontOnce sync.Once
	defaultFont     *text.FontSource
	defaultFontErr  error
)

// loadDefaultFont parses the embedded Go Regular font once per process.
func loadDefaultFont() (*text.FontSource, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = text.NewFontSource(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Renderer paints a Geometry onto a Surface. Theme colors are resolved
// from the provider on every Render call.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	theme ThemeProvider
	font  *text.FontSource
	faces map[float64]text.Face
}

// NewRenderer creates a renderer reading colors from theme. font may be
// nil, in which case the embedded Go Regular font is used; if no font can
// be loaded, shapes are drawn without text.
func NewRenderer(theme ThemeProvider, font *text.FontSource) *Renderer {
	if font == nil {
		var err error
		if font, err = loadDefaultFont(); err != nil {
			Logger().Warn("ggchart: font unavailable, drawing without text", "err", err)
			font = nil
		}
	}
	return &Renderer{theme: theme, font: font, faces: make(map[float64]text.Face)}
}

// face returns the font face for a size in device pixels, or nil.
func (r *Renderer) face(size float64) text.Face {
	if r.font == nil {
		return nil
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := r.font.Face(size)
	r.faces[size] = f
	return f
}

// Render draws g onto s. hover is the highlighted shape index, or -1.
// Rendering a closed surface is a no-op.
func (r *Renderer) Render(s *Surface, g *Geometry, hover int) {
	if s == nil || s.Closed() || g == nil {
		return
	}
	colors := ResolveColors(r.theme)
	_ = s.Draw(func(dc *gg.Context, k float64) {
		dc.ClearWithColor(colors.Background)
		r.drawTitle(dc, k, g, colors)

		switch {
		case g.Empty():
			r.drawPlaceholder(dc, k, g.Viewport, colors)
		case g.Kind == KindPie:
			r.drawPie(dc, k, g, hover, colors)
		default:
			r.drawBars(dc, k, g, hover, colors)
		}
	})
}

func (r *Renderer) drawTitle(dc *gg.Context, k float64, g *Geometry, colors ThemeColors) {
	if g.Options.Title == "" {
		return
	}
	face := r.face(titleFontSize * k)
	if face == nil {
		return
	}
	dc.SetFont(face)
	setColor(dc, colors.Foreground)
	dc.DrawStringAnchored(g.Options.Title, g.Viewport.Width/2*k, titleSpace/2*k, 0.5, 0.5)
}

func (r *Renderer) drawPlaceholder(dc *gg.Context, k float64, vp Viewport, colors ThemeColors) {
	face := r.face(placeholderFS * k)
	if face == nil {
		return
	}
	dc.SetFont(face)
	setColor(dc, colors.MutedForeground)
	dc.DrawStringAnchored(PlaceholderText, vp.Width/2*k, vp.Height/2*k, 0.5, 0.5)
}

func (r *Renderer) drawBars(dc *gg.Context, k float64, g *Geometry, hover int, colors ThemeColors) {
	for i, b := range g.Bars {
		c := b.Color
		if i == hover && g.Options.ShowHoverHighlight {
			c = Shade(c, barShadeAmount)
		}
		if b.Height > 0 {
			setColor(dc, c)
			dc.DrawRectangle(b.X*k, b.Y*k, b.Width*k, b.Height*k)
			_ = dc.Fill()
		}
	}

	// Baseline under the bars.
	bottom := g.Area.Y + g.Area.Height
	setColor(dc, colors.MutedForeground)
	dc.SetLineWidth(math.Max(1, k))
	dc.DrawLine(g.Area.X*k, bottom*k, (g.Area.X+g.Area.Width)*k, bottom*k)
	_ = dc.Stroke()

	face := r.face(labelFontSize * k)
	if face == nil {
		return
	}
	dc.SetFont(face)
	for _, b := range g.Bars {
		cx := (b.X + b.Width/2) * k
		setColor(dc, colors.Foreground)
		dc.DrawStringAnchored(b.ValueText, cx, (b.Y-4)*k, 0.5, 0)
		if b.AxisLabel != "" {
			setColor(dc, colors.MutedForeground)
			dc.DrawStringAnchored(b.AxisLabel, cx, (bottom+4)*k, 0.5, 1)
		}
	}
}

func (r *Renderer) drawPie(dc *gg.Context, k float64, g *Geometry, hover int, colors ThemeColors) {
	cx, cy := g.Center.X*k, g.Center.Y*k
	dc.SetLineWidth(sliceStroke * k)

	for i, s := range g.Slices {
		if s.Span() <= 0 {
			continue
		}
		radius := g.Radius
		if i == hover && g.Options.ShowHoverHighlight {
			radius += pieHoverDelta
		}
		rk := radius * k

		if s.Span() >= polar.TwoPi-1e-9 {
			dc.DrawCircle(cx, cy, rk)
		} else {
			x0, y0 := polar.PointAt(cx, cy, rk, s.StartAngle)
			dc.MoveTo(cx, cy)
			dc.LineTo(x0, y0)
			dc.DrawArc(cx, cy, rk, s.StartAngle, s.EndAngle)
			dc.ClosePath()
		}
		setColor(dc, s.Color)
		_ = dc.FillPreserve()
		setColor(dc, colors.Background)
		_ = dc.Stroke()
	}
}

func setColor(dc *gg.Context, c gg.RGBA) {
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}
