// SPDX-License-Identifier: MIT

// Package core defines the central data model of biascal: the ErrorMatrix of
// per-(sample, taxon) observed/actual error ratios and its derived
// PresenceMatrix, together with the validation that every downstream
// estimator relies on.
//
// 🚀 What is an ErrorMatrix?
//
//	A dense samples × taxa matrix whose entries are the multiplicative
//	measurement errors observed on control samples: observed abundance
//	divided by actual abundance, per taxon. An entry is either a finite
//	positive real or missing (the taxon was absent from both the observed
//	and the reference measurement in that sample). Zero and infinity are
//	never legal entries — a positive-observed/zero-actual cell must be
//	resolved by the caller (pseudocounts, masking) before the matrix is
//	built here.
//
// ✨ Key features:
//   - row-major flat storage of compvec.Value cells, bounds-checked access
//   - NewErrorMatrix for pre-computed ratios, FromObservedActual for paired
//     raw measurements with the both-zero ⇒ missing convention enforced
//   - Validate pinpoints every offending cell by (sample, taxon)
//   - Presence derives the boolean mask driving co-occurrence analysis
//   - Resample builds the row-multiset matrices the bootstrap engine draws
//
// Errors:
//
//	ErrInvalidInput — malformed matrix: shape mismatch, duplicate labels, or
//	                  an entry that is zero, negative, NaN or infinite.
//	                  Cell-level violations are reported as *CellError values
//	                  that unwrap to ErrInvalidInput.
//	ErrEmptyInput   — zero samples or zero taxa.
//
// All types are immutable after construction; accessors return copies.
package core
