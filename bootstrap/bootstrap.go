// SPDX-License-Identifier: MIT

package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/biascal/biascal/center"
	"github.com/biascal/biascal/core"
)

// Run executes opts.Replicates bootstrap replicates over m.
//
// Algorithm, per replicate i in 1..B:
//  1. Derive replicate i's private RNG stream from opts.Seed (SplitMix64
//     mixing), making the draw independent of execution order.
//  2. Draw n row indices uniformly with replacement (n = samples of m) and
//     build the resampled matrix; duplicated rows contribute their values
//     multiply to the per-taxon geometric means, as the nonparametric
//     bootstrap over sampling units requires.
//  3. Re-run center.Estimate on the resampled matrix.
//  4. On ErrUnidentifiableBias: skip-and-count under
//     opts.SkipFailedReplicates, otherwise propagate tagged with the
//     replicate id. Any other error always propagates.
//
// Replicates are shared-nothing: each one reads m and writes only its own
// result slot, so opts.Workers > 1 runs them concurrently under a bounded
// errgroup with no further coordination. ctx is honored between replicates
// (cooperative cancellation); a canceled run returns the cancellation cause.
//
// Errors: ErrNoReplicates, ErrAllReplicatesFailed, core.ErrEmptyInput,
// plus anything center.Estimate surfaces.
//
// Complexity: O(B × samples × taxa²) time, O(B × taxa) memory for results.
func Run(ctx context.Context, m *core.ErrorMatrix, opts Options) (*ReplicateSet, error) {
	if opts.Replicates <= 0 {
		return nil, ErrNoReplicates
	}
	if m == nil {
		return nil, fmt.Errorf("bootstrap: nil matrix: %w", core.ErrEmptyInput)
	}
	n := m.NumSamples()
	if n == 0 || m.NumTaxa() == 0 {
		return nil, fmt.Errorf("bootstrap: %d samples × %d taxa: %w", n, m.NumTaxa(), core.ErrEmptyInput)
	}

	copts := center.Options{AllowMultipleComponents: opts.AllowMultipleComponents}

	// One result slot per replicate; goroutines never touch foreign slots.
	type slot struct {
		est     center.BiasEstimate
		ok      bool
		skipped bool
	}
	slots := make([]slot, opts.Replicates)

	g, gctx := errgroup.WithContext(ctx)
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	launched := 0
	for i := 1; i <= opts.Replicates; i++ {
		if gctx.Err() != nil {
			break // cooperative cancellation between replicates
		}
		launched++
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rng := replicateRNG(opts.Seed, i)
			idx := make([]int, n)
			for k := range idx {
				idx[k] = rng.Intn(n)
			}

			resampled, err := m.Resample(idx)
			if err != nil {
				return fmt.Errorf("bootstrap: replicate %d: %w", i, err)
			}

			est, err := center.Estimate(resampled, copts)
			if err != nil {
				if opts.SkipFailedReplicates && errors.Is(err, center.ErrUnidentifiableBias) {
					slots[i-1].skipped = true

					return nil
				}

				return fmt.Errorf("bootstrap: replicate %d: %w", i, err)
			}

			slots[i-1] = slot{est: est, ok: true}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if launched < opts.Replicates {
		return nil, fmt.Errorf("bootstrap: canceled after launching %d of %d replicates: %w",
			launched, opts.Replicates, context.Cause(gctx))
	}

	rs := &ReplicateSet{Requested: opts.Replicates}
	for i := range slots {
		switch {
		case slots[i].skipped:
			rs.Skipped++
		case slots[i].ok:
			rs.Replicates = append(rs.Replicates, Replicate{ID: i + 1, Estimate: slots[i].est})
		}
	}
	if len(rs.Replicates) == 0 {
		return nil, ErrAllReplicatesFailed
	}

	return rs, nil
}
