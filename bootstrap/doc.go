// SPDX-License-Identifier: MIT

// Package bootstrap quantifies the uncertainty of a bias estimate by
// nonparametric resampling of the control samples.
//
// 🚀 How it works:
//
//	For each of B replicates, draw n sample indices uniformly with
//	replacement from the original n control samples, rebuild the error
//	matrix from the drawn rows (duplicates contribute their row multiple
//	times — that is the point of resampling sampling units), and re-run the
//	center estimator. The spread of the B re-estimates approximates the
//	sampling distribution of the bias.
//
// ✨ Key features:
//   - seedable and exactly reproducible: replicate i derives private RNG
//     stream i from the base seed, so results are bit-identical for any
//     Workers setting
//   - shared-nothing parallelism: replicates run concurrently under a
//     bounded errgroup; each reads the original matrix and writes only its
//     own slot
//   - policy-controlled identifiability failures: a replicate whose redraw
//     disconnects the co-occurrence graph either propagates the failure or
//     is skipped-and-counted (never silently dropped)
//   - cooperative cancellation between replicates via context
//   - Summarize: per-taxon and per-pair geometric mean, geometric standard
//     deviation (exp of the log-scale sd) and multiplicative intervals
//
// Interval convention: the approximate interval is center ÷ gsd² to
// center × gsd² — the square of the geometric standard deviation, with an
// exponent of exactly 2 rather than a 1.96 normal quantile. Percentile
// (2.5%, 97.5%) intervals are reported alongside.
//
// Errors:
//
//	ErrNoReplicates        — replicate count not positive, or nothing to
//	                         summarize.
//	ErrAllReplicatesFailed — the skip policy discarded every replicate.
//	center/core errors     — propagated from the per-replicate estimator.
package bootstrap
