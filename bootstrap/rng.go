// SPDX-License-Identifier: MIT

// Package bootstrap - RNG utilities for resampling.
//
// This file centralizes deterministic random generation for the bootstrap
// engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical replicate draws across platforms,
//     and across any Workers setting — replicate i always owns stream i.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each replicate derives its own
//     private stream; streams are never shared across goroutines.
package bootstrap

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// replicateRNG returns the deterministic private RNG of replicate id
// (1-based) under the given base seed. Policy: seed==0 ⇒ defaultRNGSeed.
//
// Complexity: O(1).
func replicateRNG(seed int64, id int) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(s, uint64(id))))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche mix, eliminating correlations
// between consecutive replicate streams.
//
// Constants are the canonical SplitMix64 multipliers/finalizer (Vigna 2014);
// small input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
