// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import "errors"

// Common errors returned by chart operations.
//
// Degenerate data (empty data sets, zero totals) is never an error: it is
// rendered as the placeholder state.
var (
	// ErrSurfaceClosed is returned when drawing on a closed surface.
	ErrSurfaceClosed = errors.New("ggchart: surface is closed")

	// ErrInvalidDimensions is returned when a viewport has no drawable area.
	ErrInvalidDimensions = errors.New("ggchart: invalid dimensions")

	// ErrInvalidScale is returned for a non-positive device pixel ratio.
	ErrInvalidScale = errors.New("ggchart: invalid device pixel ratio")

	// ErrUnknownKind is returned when a chart kind is not registered.
	ErrUnknownKind = errors.New("ggchart: unknown chart kind")

	// ErrInvalidColor is returned when a color token cannot be parsed.
	ErrInvalidColor = errors.New("ggchart: invalid color")

	// ErrInvalidValueFormat is returned for an unknown value format name.
	ErrInvalidValueFormat = errors.New("ggchart: invalid value format")

	// ErrNotMounted is returned when an operation needs a mounted chart.
	ErrNotMounted = errors.New("ggchart: chart is not mounted")

	// ErrAlreadyMounted is returned by Mount on a chart that is mounted.
	ErrAlreadyMounted = errors.New("ggchart: chart is already mounted")
)
