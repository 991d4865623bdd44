// Package biascal estimates multiplicative measurement bias from paired
// observed/actual compositional measurements on control samples, and
// calibrates measurements of unknown composition against the result.
//
// 🚀 What is biascal?
//
//	A pure in-memory statistical estimation library that brings together:
//		• Compositional primitives: missing-aware values, geometric mean, closure
//		• Co-occurrence analysis: which taxa were ever measured together
//		• Identifiability: connected components bound what is estimable
//		• Center estimation: per-taxon bias, globally or per component
//		• Bootstrap: seedable, parallel resampling with log-scale summaries
//		• Pairwise views: ratio tables for downstream inspection
//		• Calibration: divide observed by bias, renormalize, done
//
// ✨ Why choose biascal?
//
//   - Deterministic – seedable RNG streams, stable orderings, reproducible runs
//   - Honest about missingness – a tagged optional value type, no NaN tricks
//   - Honest about identifiability – disconnected taxa fail loudly instead of
//     being silently renormalized into nonsense
//   - Pure in-memory Go – no I/O, no wire formats, no hidden state
//
// Under the hood, everything is organized under focused subpackages:
//
//	compvec/   — Value type, geometric mean, closure, ratio
//	core/      — ErrorMatrix and PresenceMatrix data model
//	cooccur/   — co-occurrence graph and connected components
//	center/    — the bias estimator
//	bootstrap/ — resampling engine and uncertainty summaries
//	pairwise/  — pairwise ratio expansion
//	calibrate/ — composition correction
//
// The usual pipeline: build an ErrorMatrix (core), estimate the bias
// (center, which consults cooccur internally), quantify uncertainty
// (bootstrap), inspect ratios (pairwise), and correct new observations
// (calibrate).
//
//	go get github.com/biascal/biascal
package biascal
