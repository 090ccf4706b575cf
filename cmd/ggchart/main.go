// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command ggchart renders bar and pie charts from data files.
//
// Usage:
//
//	ggchart render data.toml -o chart.png
//	ggchart serve data.yaml --addr :8080
//	ggchart demo -d gallery
//
// Run "ggchart help" for all commands and flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/ggchart/internal/cli"
)

// exitInterrupted is the shell status for a run stopped by SIGINT.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(exitInterrupted)
	default:
		fmt.Fprintln(os.Stderr, "ggchart:", err)
		os.Exit(1)
	}
}
