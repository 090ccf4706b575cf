// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggchart draws bar and pie charts with hover interaction onto a
// [gg] canvas.
//
// # Overview
//
// A chart turns an ordered data set of (label, value) pairs into a list of
// shapes, paints them with colors read from a theme, and keeps a small
// hover state machine in sync with pointer input. The shape list is the
// single source of truth: the renderer draws it and the hit-tester queries
// it, so what is under the pointer is always what is on screen.
//
// # Quick Start
//
//	c, err := ggchart.New(ggchart.KindBar, ggchart.WithTheme(ggchart.LightTheme))
//	if err != nil {
//		return err
//	}
//	container := ggchart.NewResizeNotifier(800, 0)
//	if err := c.Mount(container, 2); err != nil {
//		return err
//	}
//	defer c.Unmount()
//
//	c.SetData(ggchart.NewDataSet(
//		ggchart.Entry{Label: "Reading", Value: 12},
//		ggchart.Entry{Label: "Writing", Value: 7.8},
//	), ggchart.WithMaxShapes(5), ggchart.WithAxisLabels())
//
//	c.PointerMove(120, 200)
//	fmt.Println(c.HoveredLabel())
//	_ = c.EncodePNG(w)
//
// # Components
//
//   - [ResolveColors] reads foreground, muted-foreground and background
//     tokens from a [ThemeProvider] on every draw.
//   - [Observe] derives a [Viewport] from a [Container] through a [SizeRule].
//   - [BuildBarGeometry] and [BuildPieGeometry] compute a [Geometry].
//   - [Renderer] paints a Geometry on a [Surface] sized viewport times
//     device pixel ratio.
//   - [HitTest] maps a point to a shape index.
//   - [HoverController] keeps the idle/hovering state.
//   - [Chart] ties them together for one mounted instance.
//
// # Coordinates
//
// Geometry and hit-testing use layout pixels. The surface backing store is
// in device pixels. Pointer positions in device pixels go through
// [Chart.PointerMoveDevice], which divides by the device pixel ratio.
//
// Pie angles are screen-space radians: the first slice starts at -π/2
// (12 o'clock) and slices proceed clockwise.
//
// # Logging
//
// ggchart is silent by default. Call [SetLogger] with any [log/slog]
// logger to see mount, geometry and hover records.
//
// # Thread Safety
//
// A [Chart] is driven from a single goroutine. [ResizeNotifier],
// [SwitchableTheme], [Registry] and the package logger are safe for
// concurrent use.
package ggchart
