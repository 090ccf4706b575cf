// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggchart

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"golang.org/x/text/language"
)

func TestValueFormat(t *testing.T) {
	tests := []struct {
		f    ValueFormat
		v    float64
		want string
	}{
		{FormatInteger, 7.8, "8"},
		{FormatInteger, 7.4, "7"},
		{FormatInteger, 2.5, "3"},
		{FormatInteger, 0, "0"},
		{FormatInteger, -0.2, "0"},
		{FormatInteger, 1234, "1234"},
		{FormatDecimal, 7.8, "7.80"},
		{FormatDecimal, 3, "3.00"},
	}
	for _, tt := range tests {
		if got := tt.f.Format(tt.v); got != tt.want {
			t.Errorf("%v.Format(%v) = %q, want %q", tt.f, tt.v, got, tt.want)
		}
	}
	if got := FormatInteger.Format(math.Copysign(0, -1)); got != "0" {
		t.Errorf("Format(-0) = %q, want \"0\"", got)
	}
}

func TestParseValueFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ValueFormat
		wantErr bool
	}{
		{"", FormatInteger, false},
		{"integer", FormatInteger, false},
		{"INT", FormatInteger, false},
		{"decimal", FormatDecimal, false},
		{" decimal(2) ", FormatDecimal, false},
		{"percent", FormatInteger, true},
	}
	for _, tt := range tests {
		got, err := ParseValueFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidValueFormat) {
				t.Errorf("ParseValueFormat(%q) error = %v, want ErrInvalidValueFormat", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseValueFormat(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	for _, f := range []ValueFormat{FormatInteger, FormatDecimal} {
		if got, err := ParseValueFormat(f.String()); err != nil || got != f {
			t.Errorf("ParseValueFormat(%q) = %v, %v, want %v", f.String(), got, err, f)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.ValueFormat != FormatInteger {
		t.Errorf("ValueFormat = %v, want integer", o.ValueFormat)
	}
	if !o.ShowHoverHighlight {
		t.Error("ShowHoverHighlight = false, want true")
	}
	if o.ShowHoverCaption || o.ShowAxisLabels {
		t.Error("caption and axis labels should be off by default")
	}
	if o.MaxShapes != 0 {
		t.Errorf("MaxShapes = %d, want 0", o.MaxShapes)
	}
	if o.Locale != language.English {
		t.Errorf("Locale = %v, want en", o.Locale)
	}
}

func TestNewOptions(t *testing.T) {
	o := NewOptions(
		WithTitle("Skills"),
		WithPalette("#ff0000", "#00ff00"),
		WithMaxShapes(5),
		WithValueFormat(FormatDecimal),
		WithHoverHighlight(false),
		WithHoverCaption(true),
		WithAxisLabels("Q1", "Q2"),
		WithLocale(language.German),
	)
	if o.Title != "Skills" {
		t.Errorf("Title = %q", o.Title)
	}
	if !reflect.DeepEqual(o.Palette, []string{"#ff0000", "#00ff00"}) {
		t.Errorf("Palette = %v", o.Palette)
	}
	if o.MaxShapes != 5 || o.ValueFormat != FormatDecimal {
		t.Errorf("MaxShapes, ValueFormat = %d, %v", o.MaxShapes, o.ValueFormat)
	}
	if o.ShowHoverHighlight || !o.ShowHoverCaption || !o.ShowAxisLabels {
		t.Errorf("flags = highlight %v caption %v axis %v", o.ShowHoverHighlight, o.ShowHoverCaption, o.ShowAxisLabels)
	}
	if o.Locale != language.German {
		t.Errorf("Locale = %v, want de", o.Locale)
	}
}

func TestWithPaletteCopies(t *testing.T) {
	tokens := []string{"#ff0000"}
	o := NewOptions(WithPalette(tokens...))
	tokens[0] = "#000000"
	if o.Palette[0] != "#ff0000" {
		t.Errorf("Palette[0] = %q after mutating caller slice", o.Palette[0])
	}
}

func TestAxisLabel(t *testing.T) {
	o := NewOptions(WithAxisLabels("Q1", "", "Q3"))
	tests := []struct {
		i    int
		want string
	}{
		{0, "Q1"},
		{1, "2"},
		{2, "Q3"},
		{3, "4"},
	}
	for _, tt := range tests {
		if got := o.axisLabel(tt.i); got != tt.want {
			t.Errorf("axisLabel(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}
