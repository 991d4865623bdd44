// SPDX-License-Identifier: MIT

// Package center estimates the compositional center of an error matrix: the
// per-taxon multiplicative bias of the measurement process.
//
// 🚀 How bias estimation works:
//
//	Each control sample yields a vector of per-taxon error ratios
//	(observed/actual). The bias estimate is the compositional center of
//	those vectors: per taxon, the geometric mean of its observed error
//	ratios across samples; per component, closure to the canonical scale
//	(geometric mean = 1). Only ratios between taxa in the same
//	co-occurrence component are meaningful — absolute values are an
//	arbitrary representative of the compositional equivalence class.
//
// ✨ Key features:
//   - Estimate: pure function ErrorMatrix → BiasEstimate
//   - identifiability guard: >1 co-occurrence component fails with
//     ErrUnidentifiableBias unless per-component estimation is requested;
//     the error carries the component partition as diagnostics
//   - per-component closure: each component is normalized independently
//   - BiasEstimate.Ratio refuses to produce cross-component point
//     estimates — it returns missing instead of a number
//
// Errors:
//
//	core.ErrInvalidInput     — malformed entries (zero/negative/NaN/Inf).
//	core.ErrEmptyInput       — zero samples, zero taxa, or no observed taxon.
//	ErrUnidentifiableBias    — multiple components without opt-in; match via
//	                           errors.Is, inspect via errors.As on
//	                           *UnidentifiableError.
package center
