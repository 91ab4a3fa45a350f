// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command bundlegen generates asset bundle classes from Webpack manifests.
//
// Usage:
//
//	bundlegen [generate] [flags]
//	bundlegen watch [flags]
//	bundlegen targets
//	bundlegen version
//
// Examples:
//
//	# One bundle, described by flags
//	bundlegen -a app=./src -a basePath=./public/build \
//	    -n 'App\Assets' --base-path @basePath
//
//	# Every bundle in a configuration file
//	bundlegen --config bundlegen.yaml
//
//	# Regenerate whenever a manifest changes
//	bundlegen watch --config bundlegen.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beastbytes/bundlegen/internal/logging"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// cli holds state shared by the commands of one invocation.
type cli struct {
	configPath string
	verbose    bool
	logJSON    bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	flags := &bundleFlags{}

	root := &cobra.Command{
		Use:   "bundlegen",
		Short: "Generate asset bundle classes from Webpack manifests",
		Long: `bundlegen reads a Webpack manifest and writes an asset bundle class
listing the CSS and JS files of the configured chunks, in chunk order.

A bundle is skipped when its class file is already newer than the manifest.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logging.Options{Verbose: c.verbose, JSON: c.logJSON})
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd, flags)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "Configuration file (YAML)")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&c.logJSON, "log-json", false, "Log as JSON")
	flags.register(root.Flags())

	root.AddCommand(
		c.newGenerateCmd(),
		c.newWatchCmd(),
		newTargetsCmd(),
		newVersionCmd(),
	)
	return root
}

func (c *cli) newGenerateCmd() *cobra.Command {
	flags := &bundleFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bundles once (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.generate(cmd, flags)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bundlegen %s (commit: %s, built: %s)\n", version, commit, date)
			return err
		},
	}
}
