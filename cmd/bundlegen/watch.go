// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beastbytes/bundlegen/internal/creator"
	"github.com/beastbytes/bundlegen/internal/watch"
)

func (c *cli) newWatchCmd() *cobra.Command {
	flags := &bundleFlags{}
	var debounce = watch.DefaultDebounce

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Generate bundles, then regenerate when a manifest changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creators, err := c.creators(cmd, flags)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			byManifest := make(map[string][]*creator.Creator)
			for _, cr := range creators {
				path, err := cr.ManifestFile()
				if err != nil {
					return err
				}
				abs, err := filepath.Abs(path)
				if err != nil {
					return err
				}
				byManifest[abs] = append(byManifest[abs], cr)
			}

			regenerate := func(ctx context.Context, crs []*creator.Creator) {
				var err error
				if flags.dryRun {
					err = render(ctx, out, crs)
				} else {
					err = c.run(ctx, out, crs)
				}
				if err != nil {
					c.logger.Error("generate failed", zap.Error(err))
				}
			}

			// A missing manifest is expected before the first build finishes.
			regenerate(ctx, creators)

			files := make([]string, 0, len(byManifest))
			for path := range byManifest {
				files = append(files, path)
			}
			w, err := watch.New(files, func(ctx context.Context, path string) {
				c.logger.Info("manifest changed", zap.String("manifest", path))
				regenerate(ctx, byManifest[path])
			}, watch.Options{Debounce: debounce, Logger: c.logger})
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				w.Stop()
				return err
			}
			c.logger.Info("watching manifests", zap.Strings("manifests", w.Files()))

			defer w.Stop()
			select {
			case <-ctx.Done():
				return nil
			case <-w.Done():
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher stopped unexpectedly")
			}
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period after a manifest change before regenerating")
	return cmd
}
