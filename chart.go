// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/google/uuid"
)

// HoverInfo describes the hovered shape.
type HoverInfo struct {
	Active    bool
	Index     int
	Label     string
	Value     float64
	ValueText string
}

// ChartOption configures a Chart during creation.
type ChartOption func(*chartOptions)

type chartOptions struct {
	theme    ThemeProvider
	font     *text.FontSource
	sizeRule *SizeRule
}

// WithTheme sets the theme provider consulted on every draw.
func WithTheme(p ThemeProvider) ChartOption {
	return func(o *chartOptions) { o.theme = p }
}

// WithFont sets the font used for titles and labels.
func WithFont(src *text.FontSource) ChartOption {
	return func(o *chartOptions) { o.font = src }
}

// WithSizeRule overrides the kind's responsive size rule.
func WithSizeRule(rule SizeRule) ChartOption {
	return func(o *chartOptions) { o.sizeRule = &rule }
}

// Chart is one mounted chart instance. It owns its surface, hover state
// and the single geometry snapshot shared by drawing and hit-testing.
//
// The geometry is rebuilt synchronously whenever the data set, options or
// viewport change, before any redraw or hit-test uses it.
//
// Chart is NOT safe for concurrent use. All calls must come from the one
// goroutine that delivers data, resize and pointer events.
type Chart struct {
	id       string
	entry    *KindEntry
	rule     SizeRule
	renderer *Renderer

	data *DataSet
	opts Options

	surface     *Surface
	scale       float64
	viewport    Viewport
	geom        *Geometry
	generation  uint64
	hover       *HoverController
	unsubscribe func()
	mounted     bool

	hoverFns []hoverListener
	nextFnID uint64
}

type hoverListener struct {
	id uint64
	fn func(HoverInfo)
}

// New creates an unmounted chart of the given kind.
func New(kind Kind, opts ...ChartOption) (*Chart, error) {
	entry, ok := Lookup(kind)
	if !ok {
		return nil, ErrUnknownKind
	}
	var o chartOptions
	for _, opt := range opts {
		opt(&o)
	}
	rule := entry.SizeRule
	if o.sizeRule != nil {
		rule = *o.sizeRule
	}
	return &Chart{
		id:       uuid.NewString(),
		entry:    entry,
		rule:     rule,
		renderer: NewRenderer(o.theme, o.font),
		data:     &DataSet{},
		opts:     DefaultOptions(),
		hover:    NewHoverController(),
		scale:    1,
	}, nil
}

// ID returns the instance id used in log records.
func (c *Chart) ID() string { return c.id }

// Kind returns the chart kind.
func (c *Chart) Kind() Kind { return c.entry.Kind }

// Mount attaches the chart to a container at the given device pixel ratio.
// The viewport callback fires immediately, so the chart is drawn before
// Mount returns.
func (c *Chart) Mount(container Container, scale float64) error {
	if c.mounted {
		return ErrAlreadyMounted
	}
	if !validScale(scale) {
		return ErrInvalidScale
	}
	c.scale = scale
	c.mounted = true
	Logger().Info("ggchart: chart mounted", "chart", c.id, "kind", c.entry.Kind, "scale", scale)
	c.unsubscribe = Observe(container, c.rule, c.setViewport)
	return nil
}

// Unmount releases the resize subscription, resets hover state and closes
// the surface. Unmount is idempotent.
func (c *Chart) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.hover.Bind(nil) {
		c.emitHover()
	}
	c.hoverFns = nil
	if c.surface != nil {
		_ = c.surface.Close()
		c.surface = nil
	}
	c.geom = nil
	Logger().Info("ggchart: chart unmounted", "chart", c.id)
}

// Mounted reports whether the chart is mounted.
func (c *Chart) Mounted() bool { return c.mounted }

// SetData replaces the data set and display options. Options start from
// DefaultOptions on every call.
func (c *Chart) SetData(ds *DataSet, opts ...Option) {
	if ds == nil {
		ds = &DataSet{}
	}
	c.data = ds
	c.opts = NewOptions(opts...)
	c.rebuild("data")
}

// setViewport is the Observe callback.
func (c *Chart) setViewport(vp Viewport) {
	if !c.mounted {
		return
	}
	Logger().Debug("ggchart: viewport", "chart", c.id, "width", vp.Width, "height", vp.Height)
	c.viewport = vp

	var err error
	if c.surface == nil {
		c.surface, err = NewSurface(vp, c.scale)
	} else {
		err = c.surface.Resize(vp, c.scale)
	}
	if err != nil {
		Logger().Warn("ggchart: surface unavailable", "chart", c.id, "err", err)
		if c.surface != nil {
			_ = c.surface.Close()
			c.surface = nil
		}
	}
	c.rebuild("viewport")
}

// rebuild computes a fresh geometry, resets hover against it and redraws.
func (c *Chart) rebuild(reason string) {
	if !c.mounted {
		return
	}
	c.geom = c.entry.Build(c.data, c.viewport, c.opts)
	c.generation++
	Logger().Debug("ggchart: geometry rebuilt", "chart", c.id, "reason", reason,
		"shapes", c.geom.Len(), "generation", c.generation)
	if c.hover.Bind(c.geom) {
		c.emitHover()
	}
	c.redraw()
}

// Redraw repaints the current geometry. It is a no-op when unmounted.
func (c *Chart) Redraw() {
	c.redraw()
}

func (c *Chart) redraw() {
	if !c.mounted || c.surface == nil || c.geom == nil {
		return
	}
	idx, _ := c.hover.Index()
	c.renderer.Render(c.surface, c.geom, idx)
}

// PointerMove handles a pointer move at (x, y) in layout pixels, the space
// the geometry is built in.
func (c *Chart) PointerMove(x, y float64) {
	if !c.mounted {
		return
	}
	if c.hover.PointerMove(gg.Pt(x, y)) {
		c.emitHover()
		c.redraw()
	}
}

// PointerMoveDevice handles a pointer move in device pixels. The point is
// divided by the same scale the backing store was sized with.
func (c *Chart) PointerMoveDevice(px, py float64) {
	c.PointerMove(px/c.scale, py/c.scale)
}

// PointerLeave clears hover state.
func (c *Chart) PointerLeave() {
	if !c.mounted {
		return
	}
	if c.hover.PointerLeave() {
		c.emitHover()
		c.redraw()
	}
}

// Hovered returns the hovered shape.
func (c *Chart) Hovered() HoverInfo {
	idx, ok := c.hover.Index()
	if !ok || c.geom == nil {
		return HoverInfo{Index: -1}
	}
	label, value, ok := c.geom.Shape(idx)
	if !ok {
		return HoverInfo{Index: -1}
	}
	return HoverInfo{
		Active:    true,
		Index:     idx,
		Label:     label,
		Value:     value,
		ValueText: c.geom.valueText(idx),
	}
}

// HoveredLabel returns the caption text for the hovered shape: its label,
// or "" when idle or when the caption is disabled.
func (c *Chart) HoveredLabel() string {
	if !c.opts.ShowHoverCaption {
		return ""
	}
	return c.Hovered().Label
}

// OnHover registers fn to run after every hover change and returns a
// function that removes it. Removing twice is a no-op.
func (c *Chart) OnHover(fn func(HoverInfo)) (remove func()) {
	c.nextFnID++
	id := c.nextFnID
	c.hoverFns = append(c.hoverFns, hoverListener{id: id, fn: fn})
	return func() {
		for i, l := range c.hoverFns {
			if l.id == id {
				// Fresh slice: emitHover may be ranging over the old one.
				fns := make([]hoverListener, 0, len(c.hoverFns)-1)
				fns = append(fns, c.hoverFns[:i]...)
				c.hoverFns = append(fns, c.hoverFns[i+1:]...)
				return
			}
		}
	}
}

// emitHover notifies the listeners registered when the change happened.
// Listeners may remove themselves or others while being notified.
func (c *Chart) emitHover() {
	info := c.Hovered()
	fns := make([]hoverListener, len(c.hoverFns))
	copy(fns, c.hoverFns)
	for _, l := range fns {
		l.fn(info)
	}
}

// Geometry returns the current geometry snapshot, or nil when unmounted.
func (c *Chart) Geometry() *Geometry { return c.geom }

// Generation counts geometry builds since creation.
func (c *Chart) Generation() uint64 { return c.generation }

// Legend returns the pie legend; bar charts have none.
func (c *Chart) Legend() []LegendEntry {
	if c.geom == nil {
		return nil
	}
	return c.geom.Legend
}

// Viewport returns the current viewport.
func (c *Chart) Viewport() Viewport { return c.viewport }

// Surface returns the chart's surface, or nil.
func (c *Chart) Surface() *Surface { return c.surface }

// Image returns the rendered pixels, or nil when unmounted.
func (c *Chart) Image() image.Image {
	if c.surface == nil {
		return nil
	}
	return c.surface.Image()
}

// EncodePNG writes the rendered pixels as PNG.
func (c *Chart) EncodePNG(w io.Writer) error {
	if !c.mounted || c.surface == nil {
		return ErrNotMounted
	}
	return c.surface.EncodePNG(w)
}
