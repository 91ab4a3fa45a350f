// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beastbytes/bundlegen/internal/alias"
	"github.com/beastbytes/bundlegen/internal/config"
	"github.com/beastbytes/bundlegen/internal/creator"
)

func (c *cli) generate(cmd *cobra.Command, flags *bundleFlags) error {
	creators, err := c.creators(cmd, flags)
	if err != nil {
		return err
	}
	if flags.dryRun {
		return render(cmd.Context(), cmd.OutOrStdout(), creators)
	}
	return c.run(cmd.Context(), cmd.OutOrStdout(), creators)
}

// creators builds one creator per configured bundle.
func (c *cli) creators(cmd *cobra.Command, flags *bundleFlags) ([]*creator.Creator, error) {
	cfg, resolver, err := flags.load(cmd.Flags(), c.configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		c.logger.Debug("loaded config", zap.String("path", cfg.Path), zap.Int("bundles", len(cfg.Bundles)))
	}
	return newCreators(cfg, resolver, c.logger)
}

// newCreators rejects bundles that resolve to the same output file, such as
// namespaces differing only in the case of the first letter.
func newCreators(cfg *config.Config, resolver alias.Resolver, logger *zap.Logger) ([]*creator.Creator, error) {
	creators := make([]*creator.Creator, 0, len(cfg.Bundles))
	outputs := make(map[string]string, len(cfg.Bundles))
	for _, b := range cfg.Bundles {
		cr, err := creator.New(b, resolver, logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		out, err := cr.OutputFile()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		out = filepath.Clean(out)
		if prev, dup := outputs[out]; dup {
			return nil, fmt.Errorf("%w: %s and %s both write %s", config.ErrInvalid, prev, b.Name(), out)
		}
		outputs[out] = b.Name()
		creators = append(creators, cr)
	}
	return creators, nil
}

// run creates every bundle and reports one line per bundle. A write failure
// is an error once every bundle has been attempted.
func (c *cli) run(ctx context.Context, w io.Writer, creators []*creator.Creator) error {
	results, err := creator.RunAll(ctx, creators, 0)
	if err != nil {
		return err
	}

	for i, res := range results {
		name := creators[i].Config().Name()
		switch res.Status {
		case creator.StatusWritten:
			fmt.Fprintf(w, "%s: written %s (%d bytes)\n", name, res.Output, res.Bytes)
		case creator.StatusSkipped:
			fmt.Fprintf(w, "%s: up to date\n", name)
		case creator.StatusWriteFailed:
			fmt.Fprintf(w, "%s: write failed: %v\n", name, res.Err)
		}
	}

	if failed := creator.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d bundle(s) could not be written", len(failed))
	}
	return nil
}

// render prints every bundle without writing. Several bundles are separated
// by a header naming the file each would be written to.
func render(ctx context.Context, w io.Writer, creators []*creator.Creator) error {
	for _, cr := range creators {
		content, err := cr.Render(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", cr.Config().Name(), err)
		}
		if len(creators) > 1 {
			out, err := cr.OutputFile()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "==> %s <==\n", out)
		}
		fmt.Fprintln(w, string(content))
	}
	return nil
}
