// SPDX-License-Identifier: MIT

// Package cooccur builds the taxon co-occurrence graph of a presence mask
// and derives its connected components — the identifiability structure of a
// bias estimation problem.
//
// 🚀 Why a co-occurrence graph?
//
//	A multiplicative bias is only defined up to a constant factor, so bias
//	ratios between two taxa are estimable only when some chain of samples
//	links them: each sample pins down the ratios among the taxa it contains.
//	Two taxa never observed together (directly or transitively) live in
//	separate connected components and their ratio is undefined.
//
// ✨ Key features:
//   - BuildGraph: nodes = taxa observed in ≥1 sample; edge (u,v) with weight
//     = number of samples containing both; no self-loops
//   - Components: union-find with path compression and union by rank over
//     integer-indexed taxa; component ids assigned in lexicographic order of
//     each component's first taxon, so numbering is reproducible across runs
//   - Edges/Nodes enumeration in a fixed lexicographic order, ready for
//     diagnostic display by external tooling
//
// Edge weights are diagnostic only: component membership depends solely on
// edge existence.
//
// Complexity: building is O(samples × taxa²) — intentional, taxon counts in
// this domain are tens, not millions. Components run in near-linear time in
// nodes + edges.
package cooccur
