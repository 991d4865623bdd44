// SPDX-License-Identifier: MIT

// Package compvec provides the compositional-vector primitives the rest of
// biascal is built on: a missing-aware positive value type, geometric-mean
// aggregation, closure (geometric-mean normalization) and missing-propagating
// ratios.
//
// 🚀 What is a compositional vector?
//
//	A vector of strictly positive values where only the ratios between
//	entries carry meaning, never the absolute scale. Sequencing measurements,
//	market shares and chemical compositions all behave this way: multiplying
//	every entry by the same constant changes nothing.
//
// ✨ Key features:
//   - Value: a tagged optional positive real — "missing" is a first-class
//     state, never an IEEE-754 sentinel (no NaN/Inf encoding anywhere)
//   - GeometricMean: the compositional workhorse; ignores missing entries
//   - Closure: rescale so the geometric mean of the non-missing entries is 1
//   - Ratio: element division with missing propagation
//
// ⚙️ Usage:
//
//	v := []compvec.Value{compvec.V(2), compvec.Missing(), compvec.V(8)}
//
//	gm, err := compvec.GeometricMean(v) // 4, ignoring the missing slot
//	cl, err := compvec.Closure(v)       // {0.5, missing, 2}
//	r := compvec.Ratio(cl[0], cl[2])    // 0.25
//
// Errors:
//
//	ErrAllMissing  — closure asked for a vector with no non-missing entries.
//	ErrNonPositive — a non-missing entry is zero, negative, NaN or ±Inf.
//
// All operations are pure: inputs are never mutated, outputs are fresh
// slices. Complexity is O(n) throughout.
package compvec
