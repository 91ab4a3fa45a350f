// SPDX-License-Identifier: MIT
//
// Copyright 2026 BeastBytes. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package creator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RunAll creates every bundle concurrently, at most limit at a time
// (unlimited when limit <= 0). Results are returned in the order of
// creators. The first fatal error cancels the remaining bundles and is
// returned; write failures are reported in the results only.
func RunAll(ctx context.Context, creators []*Creator, limit int) ([]*Result, error) {
	results := make([]*Result, len(creators))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, c := range creators {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := c.Create(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", c.cfg.Name(), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Failed returns the results whose status is StatusWriteFailed.
func Failed(results []*Result) []*Result {
	var failed []*Result
	for _, r := range results {
		if r != nil && r.Status == StatusWriteFailed {
			failed = append(failed, r)
		}
	}
	return failed
}
