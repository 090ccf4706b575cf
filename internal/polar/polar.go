// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package polar holds the angle arithmetic shared by pie geometry and
// pie hit-testing.
//
// Angles are in radians in screen space (y grows downward), so increasing
// angles run clockwise and -π/2 points straight up.
package polar

import "math"

// TwoPi is a full turn.
const TwoPi = 2 * math.Pi

// Up is the angle of 12 o'clock in screen space.
const Up = -math.Pi / 2

// Angle returns the angle of the vector (dx, dy) in (-π, π].
func Angle(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}

// Unwrap shifts a by whole turns until it is not less than start.
// a comes from Angle, start is a running slice start in [Up, Up+2π).
func Unwrap(a, start float64) float64 {
	for a < start {
		a += TwoPi
	}
	return a
}

// InSpan reports whether angle a lies in the half-open span [start, end).
func InSpan(a, start, end float64) bool {
	a = Unwrap(a, start)
	return a >= start && a < end
}

// PointAt returns the point at radius r and angle a around (cx, cy).
func PointAt(cx, cy, r, a float64) (x, y float64) {
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
