// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/source"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	chartFlags
	output string // PNG path, "-" for stdout
	hover  string // pointer position "x,y" in layout pixels
	quiet  bool   // skip the legend and caption
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{chartFlags: defaultChartFlags(), output: "chart.png"}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a data set file to PNG",
		Long: `Render draws a bar or pie chart of a TOML, YAML, JSON or XLSX data set.

With --hover, the pointer is placed at the given layout position first, so
the hovered shape is drawn highlighted and its label printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.OutOrStdout(), args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG file (- for stdout)")
	cmd.Flags().StringVar(&opts.hover, "hover", "", "pointer position x,y in layout pixels")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print legend or caption")

	return cmd
}

func (c *CLI) runRender(w io.Writer, path string, opts *renderOpts) error {
	prog := newProgress(c.Logger)

	doc, err := source.Load(path, opts.loadOptions()...)
	if err != nil {
		return err
	}
	chart, err := opts.mount(doc)
	if err != nil {
		return err
	}
	defer chart.Unmount()

	if opts.hover != "" {
		x, y, err := parsePoint(opts.hover)
		if err != nil {
			return err
		}
		chart.PointerMove(x, y)
	}

	if err := writePNG(chart, opts.output, w); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	vp := chart.Viewport()
	prog.done("Rendered chart", "file", opts.output, "kind", chart.Kind(),
		"viewport", fmt.Sprintf("%gx%g", vp.Width, vp.Height), "shapes", chart.Geometry().Len())

	if opts.quiet || opts.output == "-" {
		return nil
	}
	printLegend(w, chart.Legend())
	if info := chart.Hovered(); info.Active {
		printCaption(w, info)
	}
	return nil
}

// renderDoc draws doc once with flags f and writes the PNG to output.
func renderDoc(doc *source.Document, f *chartFlags, output string, w io.Writer) (*ggchart.Geometry, error) {
	chart, err := f.mount(doc)
	if err != nil {
		return nil, err
	}
	defer chart.Unmount()

	g := chart.Geometry()
	if err := writePNG(chart, output, w); err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}
	return g, nil
}
