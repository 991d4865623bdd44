// SPDX-License-Identifier: MIT

// Package pairwise expands per-taxon value vectors and tables into all
// pairwise ratio views.
//
// 🚀 Why pairwise ratios?
//
//	Compositional values are only meaningful relative to each other, so
//	downstream inspection and plotting work on ratios: how strongly is
//	taxon x distorted relative to taxon y? This package generates those
//	views from a raw error table, a bias estimate, or any per-taxon value
//	mapping.
//
// ✨ Key features:
//   - FromVector: one labeled value vector → all ordered pairs (x, y), x≠y
//   - FromTable: grouped (group, taxon, value) rows → per-group pairwise
//     expansion (e.g. one group per sample, or per bootstrap replicate)
//   - FromBias: a center.BiasEstimate → pairwise ratios with
//     cross-component pairs reported as missing, never as numbers
//   - missing propagation per compvec.Ratio throughout
//
// Both orientations of every pair are emitted; callers wanting one row per
// unordered pair filter on TaxonX < TaxonY downstream.
//
// Output ordering is deterministic: groups and taxa appear in first-seen
// input order (FromVector/FromTable) or lexicographic estimate order
// (FromBias).
package pairwise
