// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/source"
)

const (
	defaultWidth = 800 // container width in layout pixels
	defaultDPR   = 1
)

// chartFlags holds the flags shared by render, watch and serve.
type chartFlags struct {
	kind       string   // chart kind: bar or pie
	width      float64  // container width in layout pixels
	dpr        float64  // device pixel ratio
	theme      string   // light or dark
	palette    []string // shape color tokens
	maxShapes  int      // bar truncation, 0 for all
	format     string   // integer or decimal
	axisLabels bool     // numbered labels under bars
	title      string   // overrides the data file title
	sheet      string   // spreadsheet sheet name
}

func defaultChartFlags() chartFlags {
	return chartFlags{
		kind:   string(ggchart.KindBar),
		width:  defaultWidth,
		dpr:    defaultDPR,
		theme:  "light",
		format: ggchart.FormatInteger.String(),
	}
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", f.kind, "chart kind: bar, pie")
	cmd.Flags().Float64Var(&f.width, "width", f.width, "container width in layout pixels")
	cmd.Flags().Float64Var(&f.dpr, "dpr", f.dpr, "device pixel ratio")
	cmd.Flags().StringVar(&f.theme, "theme", f.theme, "color theme: light, dark")
	cmd.Flags().StringSliceVar(&f.palette, "palette", nil, "shape colors (comma-separated hex, rgb() or hsl())")
	cmd.Flags().IntVar(&f.maxShapes, "max", 0, "show only the first N bars (0 for all)")
	cmd.Flags().StringVar(&f.format, "format", f.format, "value label format: integer, decimal")
	cmd.Flags().BoolVar(&f.axisLabels, "axis-labels", false, "draw numbered labels under bars")
	cmd.Flags().StringVar(&f.title, "title", "", "chart title (overrides the data file)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "spreadsheet sheet (default: first sheet)")
}

func (f *chartFlags) loadOptions() []source.Option {
	if f.sheet == "" {
		return nil
	}
	return []source.Option{source.WithSheet(f.sheet)}
}

// chartOptions converts the flags to display options for doc.
func (f *chartFlags) chartOptions(doc *source.Document) ([]ggchart.Option, error) {
	vf, err := ggchart.ParseValueFormat(f.format)
	if err != nil {
		return nil, err
	}
	opts := append(doc.Options(),
		ggchart.WithValueFormat(vf),
		ggchart.WithMaxShapes(f.maxShapes),
		ggchart.WithHoverCaption(true),
	)
	if f.title != "" {
		opts = append(opts, ggchart.WithTitle(f.title))
	}
	if len(f.palette) > 0 {
		opts = append(opts, ggchart.WithPalette(f.palette...))
	}
	if f.axisLabels {
		opts = append(opts, ggchart.WithAxisLabels())
	}
	return opts, nil
}

// mount creates a chart for doc and mounts it on a notifier of the flagged
// width. Callers must Unmount the chart.
func (f *chartFlags) mount(doc *source.Document) (*ggchart.Chart, error) {
	kind, err := ggchart.ParseKind(f.kind)
	if err != nil {
		return nil, err
	}
	theme, ok := ggchart.ThemeByName(f.theme)
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (want light or dark)", f.theme)
	}
	if !(f.width > 0) || math.IsInf(f.width, 0) {
		return nil, fmt.Errorf("width must be a positive number, got %v", f.width)
	}
	if !(f.dpr > 0) || math.IsInf(f.dpr, 0) {
		return nil, fmt.Errorf("dpr must be a positive number, got %v", f.dpr)
	}
	opts, err := f.chartOptions(doc)
	if err != nil {
		return nil, err
	}

	c, err := ggchart.New(kind, ggchart.WithTheme(theme))
	if err != nil {
		return nil, err
	}
	if err := c.Mount(ggchart.NewResizeNotifier(f.width, 0), f.dpr); err != nil {
		return nil, err
	}
	c.SetData(doc.Data, opts...)
	return c, nil
}

// parsePoint parses "x,y" in layout pixels.
func parsePoint(s string) (x, y float64, err error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid point %q (want x,y)", s)
	}
	if x, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	if y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return x, y, nil
}

// writePNG encodes the chart to path, or to w when path is "-".
func writePNG(c *ggchart.Chart, path string, w io.Writer) error {
	if path == "-" {
		return c.EncodePNG(w)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.EncodePNG(out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
