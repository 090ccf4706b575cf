// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/source"
)

type demoOpts struct {
	dir   string
	width float64
	dpr   float64
}

func (c *CLI) demoCommand() *cobra.Command {
	opts := demoOpts{dir: ".", width: defaultWidth, dpr: defaultDPR}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a gallery of sample charts",
		Long: `Demo renders a sample data set as bar and pie charts in the light and dark
themes, plus a hovered variant of each kind, into the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runDemo(cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", opts.dir, "output directory")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "container width in layout pixels")
	cmd.Flags().Float64Var(&opts.dpr, "dpr", opts.dpr, "device pixel ratio")

	return cmd
}

// demoDocument is the sample data set of the gallery.
func demoDocument() *source.Document {
	return &source.Document{
		Title: "Study hours per skill",
		Data: ggchart.NewDataSet(
			ggchart.Entry{Label: "Reading", Value: 12},
			ggchart.Entry{Label: "Writing", Value: 7.5},
			ggchart.Entry{Label: "Listening", Value: 3},
			ggchart.Entry{Label: "Speaking", Value: 6},
			ggchart.Entry{Label: "Grammar", Value: 9},
		),
	}
}

func (c *CLI) runDemo(w io.Writer, opts *demoOpts) error {
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return err
	}
	doc := demoDocument()
	prog := newProgress(c.Logger)

	written := 0
	for _, kind := range ggchart.Kinds() {
		for _, theme := range []string{"light", "dark"} {
			f := defaultChartFlags()
			f.kind = string(kind)
			f.theme = theme
			f.width = opts.width
			f.dpr = opts.dpr
			f.format = ggchart.FormatDecimal.String()

			name := filepath.Join(opts.dir, fmt.Sprintf("%s-%s.png", kind, theme))
			if _, err := renderDoc(doc, &f, name, w); err != nil {
				return err
			}
			c.Logger.Debug("Wrote", "file", name)
			written++
		}

		name := filepath.Join(opts.dir, fmt.Sprintf("%s-hover.png", kind))
		if err := c.renderHovered(doc, kind, opts, name, w); err != nil {
			return err
		}
		written++
	}

	prog.done("Rendered demo gallery", "dir", opts.dir, "files", written)
	return nil
}

// renderHovered renders kind with the pointer over its first shape.
func (c *CLI) renderHovered(doc *source.Document, kind ggchart.Kind, opts *demoOpts, name string, w io.Writer) error {
	f := defaultChartFlags()
	f.kind = string(kind)
	f.width = opts.width
	f.dpr = opts.dpr

	chart, err := f.mount(doc)
	if err != nil {
		return err
	}
	defer chart.Unmount()

	if p, ok := chart.Geometry().Centroid(0); ok {
		chart.PointerMove(p.X, p.Y)
	}
	if info := chart.Hovered(); info.Active {
		c.Logger.Debug("Hovered", "kind", kind, "label", info.Label)
	}
	return writePNG(chart, name, w)
}
