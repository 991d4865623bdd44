// SPDX-License-Identifier: MIT

package center

import (
	"fmt"

	"github.com/biascal/biascal/compvec"
	"github.com/biascal/biascal/cooccur"
	"github.com/biascal/biascal/core"
)

// Estimate computes the compositional center (bias estimate) of m.
//
// Algorithm:
//  1. Validate: m non-nil with non-zero dimensions (core.ErrEmptyInput) and
//     every entry finite-positive or missing (core.ErrInvalidInput with the
//     offending cells identified).
//  2. Derive the presence mask, build the co-occurrence graph and label its
//     connected components. Taxa observed in no sample drop out here.
//  3. Identifiability: with more than one component and
//     !opts.AllowMultipleComponents, fail with *UnidentifiableError
//     carrying the partition.
//  4. Per component: compute the geometric mean of each member taxon's
//     column (missing entries ignored), then apply closure within the
//     component so each component's values are a canonical compositional
//     representative (geometric mean = 1).
//
// Estimate is a pure function: it never mutates m and carries no state
// between calls.
//
// Complexity: O(samples × taxa²) time (graph build dominates),
// O(taxa²) memory for the graph.
func Estimate(m *core.ErrorMatrix, opts Options) (BiasEstimate, error) {
	// 1. Input validation.
	if m == nil {
		return BiasEstimate{}, fmt.Errorf("center: nil matrix: %w", core.ErrEmptyInput)
	}
	if m.NumSamples() == 0 || m.NumTaxa() == 0 {
		return BiasEstimate{}, fmt.Errorf("center: %d samples × %d taxa: %w",
			m.NumSamples(), m.NumTaxa(), core.ErrEmptyInput)
	}
	if err := m.Validate(); err != nil {
		return BiasEstimate{}, err
	}

	// 2. Identifiability structure.
	graph := cooccur.BuildGraph(m.Presence())
	assign := graph.Components()
	if assign.Count() == 0 {
		// Every taxon is missing in every sample; nothing is estimable.
		return BiasEstimate{}, fmt.Errorf("center: no taxon observed in any sample: %w", core.ErrEmptyInput)
	}

	// 3. Identifiability policy.
	if assign.Count() > 1 && !opts.AllowMultipleComponents {
		return BiasEstimate{}, &UnidentifiableError{Assignment: assign}
	}

	// 4. Per-component center: column geometric means, then closure.
	taxa := m.Taxa()
	colOf := make(map[string]int, len(taxa))
	for j, taxon := range taxa {
		colOf[taxon] = j
	}

	values := make(map[string]float64, len(taxa))
	for id := 0; id < assign.Count(); id++ {
		members := assign.Members(id)

		raw := make([]compvec.Value, len(members))
		for k, taxon := range members {
			col, err := m.Column(colOf[taxon])
			if err != nil {
				return BiasEstimate{}, err
			}
			gm, err := compvec.GeometricMean(col)
			if err != nil {
				return BiasEstimate{}, fmt.Errorf("center: taxon %q: %w", taxon, err)
			}
			// gm is present: every component member is observed at least once.
			raw[k] = gm
		}

		closed, err := compvec.Closure(raw)
		if err != nil {
			return BiasEstimate{}, fmt.Errorf("center: component %d: %w", id, err)
		}
		for k, taxon := range members {
			f, _ := closed[k].Float64()
			values[taxon] = f
		}
	}

	return newBiasEstimate(values, assign), nil
}
