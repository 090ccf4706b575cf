// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"github.com/felixgeelhaar/statekit"
	"github.com/gogpu/gg"
)

// HoverState names the state of a HoverController.
type HoverState string

// Hover states.
const (
	HoverIdle     HoverState = "idle"
	HoverHovering HoverState = "hovering"
)

const (
	stateIdle     statekit.StateID = statekit.StateID(HoverIdle)
	stateHovering statekit.StateID = statekit.StateID(HoverHovering)

	eventHover statekit.EventType = "HOVER"
	eventLeave statekit.EventType = "LEAVE"
	eventReset statekit.EventType = "RESET"
)

// hoverContext is the statechart context: the hovered shape index, -1 when idle.
type hoverContext struct {
	index int
}

// selectShape stores the shape index carried by a HOVER event.
func selectShape(ctx **hoverContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	if i, ok := event.Payload.(int); ok {
		(*ctx).index = i
	}
}

// clearShape drops the hovered index.
func clearShape(ctx **hoverContext, _ statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).index = -1
}

// newHoverMachine builds the two-state hover statechart:
//
//	idle --HOVER--> hovering --LEAVE|RESET--> idle
func newHoverMachine(hc *hoverContext) (*statekit.MachineConfig[*hoverContext], error) {
	return statekit.NewMachine[*hoverContext]("hover").
		WithInitial(stateIdle).
		WithContext(hc).
		WithAction("select", selectShape).
		WithAction("clear", clearShape).
		State(stateIdle).
			On(eventHover).Target(stateHovering).Do("select").
			Done().
		State(stateHovering).
			On(eventLeave).Target(stateIdle).Do("clear").
			On(eventReset).Target(stateIdle).Do("clear").
			Done().
		Build()
}

// HoverController turns pointer events into hover state by hit-testing
// against the geometry it is bound to.
//
// HoverController is NOT safe for concurrent use; it runs on the goroutine
// that delivers pointer events.
type HoverController struct {
	interp *statekit.Interpreter[*hoverContext]
	hc     *hoverContext
	geom   *Geometry
}

// NewHoverController creates a controller in the idle state.
func NewHoverController() *HoverController {
	hc := &hoverContext{index: -1}
	machine, err := newHoverMachine(hc)
	if err != nil {
		// The chart is static; a build error is a programming mistake.
		panic("ggchart: hover statechart: " + err.Error())
	}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **hoverContext) { *c = hc })
	interp.Start()
	return &HoverController{interp: interp, hc: hc}
}

// Bind switches the controller to g and forces the idle state, so an index
// computed against older geometry is never reported. It reports whether the
// hover state changed.
func (h *HoverController) Bind(g *Geometry) bool {
	h.geom = g
	return h.Reset()
}

// Geometry returns the bound geometry.
func (h *HoverController) Geometry() *Geometry {
	return h.geom
}

// PointerMove hit-tests p against the bound geometry and updates the state.
// It reports whether the hovered shape changed and a redraw is needed.
func (h *HoverController) PointerMove(p gg.Point) bool {
	idx, hit := HitTest(h.geom, p)
	cur, hovering := h.Index()

	switch {
	case !hit && !hovering:
		return false
	case !hit:
		h.interp.Send(statekit.Event{Type: eventLeave})
	case !hovering:
		h.interp.Send(statekit.Event{Type: eventHover, Payload: idx})
	case idx != cur:
		h.interp.UpdateContext(func(c **hoverContext) { (*c).index = idx })
	default:
		return false
	}
	Logger().Debug("ggchart: hover", "state", h.State(), "index", h.hc.index)
	return true
}

// PointerLeave returns to idle. It reports whether the state changed.
func (h *HoverController) PointerLeave() bool {
	if !h.hovering() {
		return false
	}
	h.interp.Send(statekit.Event{Type: eventLeave})
	return true
}

// Reset forces the idle state. It reports whether the state changed.
func (h *HoverController) Reset() bool {
	if !h.hovering() {
		return false
	}
	h.interp.Send(statekit.Event{Type: eventReset})
	return true
}

// Index returns the hovered shape index.
func (h *HoverController) Index() (int, bool) {
	if !h.hovering() || h.hc.index < 0 {
		return -1, false
	}
	return h.hc.index, true
}

func (h *HoverController) hovering() bool {
	return string(h.interp.State().Value) == string(HoverHovering)
}

// State returns the current hover state.
func (h *HoverController) State() HoverState {
	if h.hovering() {
		return HoverHovering
	}
	return HoverIdle
}
