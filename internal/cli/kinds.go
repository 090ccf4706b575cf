// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cli

import "github.com/spf13/cobra"

func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List chart kinds",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printKinds(cmd.OutOrStdout())
		},
	}
}
