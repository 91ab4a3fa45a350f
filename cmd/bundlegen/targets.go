// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/beastbytes/bundlegen/generator"
	"github.com/beastbytes/bundlegen/generators/php"
)

func init() {
	generator.Register(php.NewGenerator())
}

func newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the available target generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tVERSION\tEXTENSIONS\tDESCRIPTION")
			for _, g := range generator.All() {
				m := g.Metadata()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.Name, m.Version, strings.Join(m.FileExtensions, ","), m.Description)
			}
			return tw.Flush()
		},
	}
}
