// SPDX-License-Identifier: MIT

// Package calibrate corrects observed compositions with an estimated bias:
// divide each observed taxon value by its bias and renormalize the result
// to proportions.
//
// 🚀 What calibration does:
//
//	If the measurement process distorts taxon i by a factor bias(i), then
//	observed(i)/bias(i) recovers the actual composition up to a constant,
//	and renormalizing the non-missing entries to sum 1 removes the
//	constant. Missing observed entries stay missing — calibration works on
//	the observed subcomposition.
//
// Guard rails:
//   - every observed (non-missing) taxon must be present in the estimate
//     (ErrUnknownTaxon)
//   - all observed taxa must belong to one bias component
//     (ErrCrossComponent): dividing by bias values from different
//     components would mix factors whose relative scale is undefined
//
// Complexity: O(n) per observation vector.
package calibrate
