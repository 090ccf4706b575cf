// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cli implements the ggchart command-line interface.
//
// # Commands
//
//   - render: draw a data set file to PNG
//   - watch: re-render whenever the data set file changes
//   - serve: serve charts over HTTP
//   - kinds: list chart kinds
//   - demo: render a gallery of sample charts
//
// # Logging
//
// All commands log through charmbracelet/log. The same logger is installed
// as the ggchart library logger, so --verbose also shows geometry and hover
// records.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggchart"
)

const appName = "ggchart"

// version is set at build time with -ldflags "-X".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w and installs its logger as the library
// logger.
func New(w io.Writer, level log.Level) *CLI {
	logger := newLogger(w, level)
	ggchart.SetLogger(slog.New(logger))
	return &CLI{Logger: logger}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. The persistent --verbose flag lowers the log level to debug
// before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ggchart draws bar and pie charts from data files",
		Long:         `ggchart renders bar and pie charts from TOML, YAML, JSON or XLSX data sets to PNG, on demand, on file change, or over HTTP.`,
		Version:      version,
		SilenceUsage: true,
	}

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log geometry, hover and reload details")
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
	}

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.demoCommand())

	return root
}
