// SPDX-License-Identifier: MIT

package compvec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GeometricMean computes the geometric mean of the non-missing entries of v.
//
// Algorithm:
//  1. Validate: every non-missing entry must be a finite positive real,
//     otherwise ErrNonPositive.
//  2. Aggregate: sum the natural logs of the non-missing entries.
//  3. Finalize: exp(sum/k) for k non-missing entries; Missing() when k == 0.
//
// Working on the log scale keeps the product stable for long vectors where a
// direct running product would overflow or underflow.
//
// Complexity: O(n) time, O(n) scratch for the log slice.
func GeometricMean(v []Value) (Value, error) {
	logs := make([]float64, 0, len(v))
	for _, x := range v {
		f, ok := x.Float64()
		if !ok {
			continue
		}
		if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return Missing(), ErrNonPositive
		}
		logs = append(logs, math.Log(f))
	}
	if len(logs) == 0 {
		return Missing(), nil
	}

	return V(math.Exp(floats.Sum(logs) / float64(len(logs)))), nil
}

// Closure normalizes v to the canonical compositional scale: every present
// entry is divided by the geometric mean of the present entries, so that the
// geometric mean of the result's present entries is exactly 1. Missing
// entries pass through unchanged. The input is never mutated.
//
// Errors:
//   - ErrAllMissing  — v has no non-missing entry to normalize against.
//   - ErrNonPositive — a non-missing entry violates the positivity invariant.
//
// Complexity: O(n) time, O(n) memory for the result.
func Closure(v []Value) ([]Value, error) {
	gm, err := GeometricMean(v)
	if err != nil {
		return nil, err
	}
	g, ok := gm.Float64()
	if !ok {
		return nil, ErrAllMissing
	}

	out := make([]Value, len(v))
	for i, x := range v {
		f, present := x.Float64()
		if !present {
			out[i] = Missing()
			continue
		}
		out[i] = V(f / g)
	}

	return out, nil
}
