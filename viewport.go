// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"math"
	"sync"
)

// Viewport is the logical pixel size of a chart's drawing region.
type Viewport struct {
	Width, Height float64
}

// Valid reports whether the viewport has a drawable area.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 &&
		!math.IsInf(v.Width, 0) && !math.IsInf(v.Height, 0)
}

// DeviceSize returns the backing-store size for the given device pixel
// ratio: viewport size times scale, rounded to whole pixels.
func (v Viewport) DeviceSize(scale float64) (width, height int) {
	return int(math.Round(v.Width * scale)), int(math.Round(v.Height * scale))
}

// SizeRule derives a viewport from the container width.
//
// Height is NarrowHeight below Breakpoint and Height otherwise. A zero
// Height follows the container height. MaxAspect > 0 caps the width at
// Height*MaxAspect, which keeps pie drawings roughly square.
type SizeRule struct {
	Breakpoint   float64
	NarrowHeight float64
	Height       float64
	MaxAspect    float64
}

// Rules used by the built-in chart kinds.
var (
	BarSizeRule = SizeRule{Breakpoint: 640, NarrowHeight: 250, Height: 350}
	PieSizeRule = SizeRule{Breakpoint: 640, NarrowHeight: 250, Height: 350, MaxAspect: 1}
)

// Apply computes the viewport for a container of the given size.
func (r SizeRule) Apply(containerWidth, containerHeight float64) Viewport {
	h := r.Height
	if containerWidth < r.Breakpoint && r.NarrowHeight > 0 {
		h = r.NarrowHeight
	}
	if h <= 0 {
		h = containerHeight
	}
	w := containerWidth
	if r.MaxAspect > 0 {
		w = math.Min(w, h*r.MaxAspect)
	}
	return Viewport{Width: w, Height: h}
}

// Container is a drawable region whose size can change.
type Container interface {
	// Size returns the current layout size.
	Size() (width, height float64)
	// OnResize registers fn for size changes and returns a function that
	// removes it. The remove function must be safe to call more than once.
	OnResize(fn func(width, height float64)) (remove func())
}

// Observe subscribes to size changes of c. onChange fires once with the
// initial viewport and again whenever the derived viewport changes;
// notifications that produce the same viewport are dropped.
//
// The returned function releases the subscription. It is idempotent, and
// no callback fires after it returns.
func Observe(c Container, rule SizeRule, onChange func(Viewport)) (unsubscribe func()) {
	if c == nil || onChange == nil {
		return func() {}
	}

	var (
		last   Viewport
		fired  bool
		active = true
	)
	notify := func(w, h float64) {
		if !active {
			return
		}
		vp := rule.Apply(w, h)
		if fired && vp == last {
			return
		}
		last, fired = vp, true
		onChange(vp)
	}

	remove := c.OnResize(notify)
	notify(c.Size())

	return func() {
		if !active {
			return
		}
		active = false
		remove()
	}
}

// ResizeNotifier is an in-process Container. Hosts call Resize when their
// layout changes.
//
// ResizeNotifier is safe for concurrent use; handlers run on the goroutine
// that calls Resize.
type ResizeNotifier struct {
	mu       sync.Mutex
	width    float64
	height   float64
	handlers []resizeHandler
	nextID   uint64
}

type resizeHandler struct {
	id uint64
	fn func(width, height float64)
}

// NewResizeNotifier creates a notifier with an initial size.
func NewResizeNotifier(width, height float64) *ResizeNotifier {
	return &ResizeNotifier{width: width, height: height}
}

// Size implements Container.
func (n *ResizeNotifier) Size() (width, height float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.width, n.height
}

// OnResize implements Container.
func (n *ResizeNotifier) OnResize(fn func(width, height float64)) (remove func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.handlers = append(n.handlers, resizeHandler{id: id, fn: fn})
	return func() { n.remove(id) }
}

func (n *ResizeNotifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, h := range n.handlers {
		if h.id == id {
			n.handlers = append(n.handlers[:i], n.handlers[i+1:]...)
			return
		}
	}
}

// Resize updates the size and notifies handlers if it changed.
func (n *ResizeNotifier) Resize(width, height float64) {
	n.mu.Lock()
	if n.width == width && n.height == height {
		n.mu.Unlock()
		return
	}
	n.width, n.height = width, height
	handlers := make([]resizeHandler, len(n.handlers))
	copy(handlers, n.handlers)
	n.mu.Unlock()

	for _, h := range handlers {
		h.fn(width, height)
	}
}

// Handlers returns the number of registered handlers.
func (n *ResizeNotifier) Handlers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.handlers)
}
