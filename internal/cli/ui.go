// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/ggchart"
)

var (
	colorCyan = lipgloss.Color("36")  // primary values
	colorGray = lipgloss.Color("245") // secondary text
	colorDim  = lipgloss.Color("240") // muted text
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleLabel = lipgloss.NewStyle().Foreground(colorGray)
)

const swatch = "■"

// printLegend writes one line per legend entry with a swatch in the
// slice color.
func printLegend(w io.Writer, entries []ggchart.LegendEntry) {
	if len(entries) == 0 {
		return
	}
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Label))
	}
	fmt.Fprintln(w, StyleTitle.Render("Legend"))
	for _, e := range entries {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(ggchart.ColorHex(e.Color))).Render(swatch)
		label := styleLabel.Width(width).Render(e.Label)
		fmt.Fprintf(w, "  %s %s  %s\n", sw, label, StyleNumber.Render(e.ValueText))
	}
}

// printCaption writes the hovered shape.
func printCaption(w io.Writer, info ggchart.HoverInfo) {
	fmt.Fprintf(w, "%s %s %s\n", StyleDim.Render("hover ›"), info.Label, StyleNumber.Render(info.ValueText))
}

// printKinds writes the registered chart kinds.
func printKinds(w io.Writer) {
	for _, k := range ggchart.Kinds() {
		e, _ := ggchart.Lookup(k)
		fmt.Fprintf(w, "%s  %s\n", StyleTitle.Width(6).Render(string(k)), StyleDim.Render(e.Description))
	}
}
