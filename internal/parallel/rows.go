// SPDX-License-Identifier: MIT

// Package parallel runs row-indexed kernels on a bounded errgroup.
//
// Work is striped: worker k handles rows k, k+w, k+2w, ... so triangular
// workloads (pairwise distances) stay balanced. Every row is handled by
// exactly one worker, which is what lets callers write row-owned output
// without locks.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers normalizes a requested worker count: w ≤ 0 means GOMAXPROCS, and
// the result never exceeds n (and is at least 1).
func Workers(w, n int) int {
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}

	return w
}

// Rows calls fn(i) for every i in [0, n) using up to workers goroutines.
// The first error cancels the remaining rows and is returned. ctx is polled
// between rows. With one worker the rows run inline in ascending order.
func Rows(ctx context.Context, n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	w := Workers(workers, n)
	if w == 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w)
	for k := 0; k < w; k++ {
		k := k
		g.Go(func() error {
			for i := k; i < n; i += w {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
