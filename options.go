// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// ValueFormat selects how values are printed in value labels.
type ValueFormat int

const (
	// FormatInteger rounds to the nearest integer: 7.8 prints as "8".
	FormatInteger ValueFormat = iota
	// FormatDecimal prints two fixed decimals: 7.8 prints as "7.80".
	FormatDecimal
)

// Format renders v according to f.
func (f ValueFormat) Format(v float64) string {
	if f == FormatDecimal {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

// String returns the format name.
func (f ValueFormat) String() string {
	if f == FormatDecimal {
		return "decimal"
	}
	return "integer"
}

// ParseValueFormat parses "integer", "decimal" or "decimal(2)".
func ParseValueFormat(s string) (ValueFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "integer", "int":
		return FormatInteger, nil
	case "decimal", "decimal(2)":
		return FormatDecimal, nil
	}
	return FormatInteger, fmt.Errorf("%w: %q", ErrInvalidValueFormat, s)
}

// Options are the display options of a chart.
type Options struct {
	// Title is drawn above the chart when non-empty.
	Title string

	// Palette holds color tokens assigned to shapes in order, cycled when
	// shorter than the data set. Empty means DefaultPalette.
	Palette []string

	// MaxShapes truncates bar charts to the first N entries. 0 disables
	// truncation. Pie charts ignore it.
	MaxShapes int

	// ValueFormat controls bar value labels and legend values.
	ValueFormat ValueFormat

	// ShowHoverHighlight paints the hovered shape with a shaded or expanded
	// variant of its color.
	ShowHoverHighlight bool

	// ShowHoverCaption exposes the hovered label through Chart.HoveredLabel.
	// Bar charts only.
	ShowHoverCaption bool

	// ShowAxisLabels draws a label beneath each bar slot. Bar charts only.
	ShowAxisLabels bool

	// AxisLabels overrides the positional "1", "2", ... axis labels.
	AxisLabels []string

	// Locale formats raw values in the pie legend.
	Locale language.Tag
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		ValueFormat:        FormatInteger,
		ShowHoverHighlight: true,
		Locale:             language.English,
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithPalette sets the shape color tokens.
func WithPalette(tokens ...string) Option {
	return func(o *Options) { o.Palette = append([]string(nil), tokens...) }
}

// WithMaxShapes limits bar charts to the first n entries.
func WithMaxShapes(n int) Option {
	return func(o *Options) { o.MaxShapes = n }
}

// WithValueFormat sets the value label format.
func WithValueFormat(f ValueFormat) Option {
	return func(o *Options) { o.ValueFormat = f }
}

// WithHoverHighlight toggles the highlighted redraw of the hovered shape.
func WithHoverHighlight(on bool) Option {
	return func(o *Options) { o.ShowHoverHighlight = on }
}

// WithHoverCaption toggles the hovered-label caption.
func WithHoverCaption(on bool) Option {
	return func(o *Options) { o.ShowHoverCaption = on }
}

// WithAxisLabels enables axis labels. With no arguments the positional
// labels "1", "2", ... are used.
func WithAxisLabels(labels ...string) Option {
	return func(o *Options) {
		o.ShowAxisLabels = true
		o.AxisLabels = append([]string(nil), labels...)
	}
}

// WithLocale sets the locale used for legend values.
func WithLocale(tag language.Tag) Option {
	return func(o *Options) { o.Locale = tag }
}

// axisLabel returns the axis label for slot i.
func (o Options) axisLabel(i int) string {
	if i < len(o.AxisLabels) && o.AxisLabels[i] != "" {
		return o.AxisLabels[i]
	}
	return strconv.Itoa(i + 1)
}
