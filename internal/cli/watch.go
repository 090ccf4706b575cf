// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart/source"
)

type watchOpts struct {
	chartFlags
	output string
}

func (c *CLI) watchCommand() *cobra.Command {
	opts := watchOpts{chartFlags: defaultChartFlags(), output: "chart.png"}

	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Re-render a data set file whenever it changes",
		Long: `Watch renders the data set once, then again each time the file is saved.
Load errors are logged and the last good PNG is kept. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), cmd.OutOrStdout(), args[0], &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output PNG file")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, w io.Writer, path string, opts *watchOpts) error {
	c.Logger.Info("Watching", "file", path, "output", opts.output)

	return source.Watch(ctx, path, func(doc *source.Document, err error) {
		if err != nil {
			c.Logger.Error("Load failed", "err", err)
			return
		}
		prog := newProgress(c.Logger)
		g, err := renderDoc(doc, &opts.chartFlags, opts.output, w)
		if err != nil {
			c.Logger.Error("Render failed", "err", err)
			return
		}
		prog.done("Rendered chart", "file", opts.output, "entries", doc.Data.Len(), "shapes", g.Len())
	}, opts.loadOptions()...)
}
