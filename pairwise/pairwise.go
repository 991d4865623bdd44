// SPDX-License-Identifier: MIT

package pairwise

import (
	"errors"
	"fmt"

	"github.com/biascal/biascal/center"
	"github.com/biascal/biascal/compvec"
)

// Sentinel errors for pairwise expansion.
var (
	// ErrLengthMismatch indicates taxa and values differ in length.
	ErrLengthMismatch = errors.New("pairwise: taxa and values length mismatch")

	// ErrDuplicateTaxon indicates the same taxon occurs twice in one vector
	// or within one group, making its ratio ambiguous.
	ErrDuplicateTaxon = errors.New("pairwise: duplicate taxon")
)

// Row is one input observation: the value of a taxon within a group. An
// empty Group is an ordinary key, so ungrouped input (all rows sharing
// Group "") expands globally.
type Row struct {
	Group string
	Taxon string
	Value compvec.Value
}

// RatioRow is one output row: value(TaxonX)/value(TaxonY) within Group.
type RatioRow struct {
	Group  string
	TaxonX string
	TaxonY string
	Ratio  compvec.Value
}

// RatioTable is the pairwise expansion result; read-only by convention.
type RatioTable struct {
	Rows []RatioRow
}

// FromVector expands a single labeled value vector into all ordered pairs
// (x, y) with x ≠ y, in input taxon order. Missing values propagate into
// missing ratios.
//
// Errors: ErrLengthMismatch, ErrDuplicateTaxon.
//
// Complexity: O(n²) output rows for n taxa.
func FromVector(taxa []string, values []compvec.Value) (*RatioTable, error) {
	if len(taxa) != len(values) {
		return nil, fmt.Errorf("pairwise: %d taxa, %d values: %w", len(taxa), len(values), ErrLengthMismatch)
	}
	if err := checkDuplicates(taxa, ""); err != nil {
		return nil, err
	}

	return &RatioTable{Rows: expand("", taxa, values)}, nil
}

// FromTable expands grouped rows: within each group, all ordered pairs of
// the group's taxa. Groups and taxa keep their first-seen input order, so
// output is deterministic for a given input.
//
// Errors: ErrDuplicateTaxon when a taxon repeats within one group.
//
// Complexity: O(Σ n_g²) over group sizes n_g.
func FromTable(rows []Row) (*RatioTable, error) {
	var groups []string
	taxa := make(map[string][]string)
	values := make(map[string][]compvec.Value)

	for _, r := range rows {
		if _, seen := taxa[r.Group]; !seen {
			groups = append(groups, r.Group)
		}
		taxa[r.Group] = append(taxa[r.Group], r.Taxon)
		values[r.Group] = append(values[r.Group], r.Value)
	}

	out := &RatioTable{}
	for _, g := range groups {
		if err := checkDuplicates(taxa[g], g); err != nil {
			return nil, err
		}
		out.Rows = append(out.Rows, expand(g, taxa[g], values[g])...)
	}

	return out, nil
}

// FromBias expands a bias estimate into pairwise bias ratios in the
// estimate's (lexicographic) taxon order. Pairs in different components get
// a missing ratio — a cross-component point estimate is undefined and never
// reported as a number.
//
// Complexity: O(n²) for n estimable taxa.
func FromBias(est center.BiasEstimate) *RatioTable {
	taxa := est.Taxa()
	out := &RatioTable{}
	for _, x := range taxa {
		for _, y := range taxa {
			if x == y {
				continue
			}
			out.Rows = append(out.Rows, RatioRow{
				TaxonX: x,
				TaxonY: y,
				Ratio:  est.Ratio(x, y),
			})
		}
	}

	return out
}

// expand emits every ordered pair of the given vector within group g.
func expand(g string, taxa []string, values []compvec.Value) []RatioRow {
	var rows []RatioRow
	for i, x := range taxa {
		for j, y := range taxa {
			if i == j {
				continue
			}
			rows = append(rows, RatioRow{
				Group:  g,
				TaxonX: x,
				TaxonY: y,
				Ratio:  compvec.Ratio(values[i], values[j]),
			})
		}
	}

	return rows
}

// checkDuplicates rejects repeated taxa within one expansion scope.
func checkDuplicates(taxa []string, group string) error {
	seen := make(map[string]struct{}, len(taxa))
	for _, taxon := range taxa {
		if _, dup := seen[taxon]; dup {
			if group == "" {
				return fmt.Errorf("pairwise: taxon %q: %w", taxon, ErrDuplicateTaxon)
			}

			return fmt.Errorf("pairwise: taxon %q in group %q: %w", taxon, group, ErrDuplicateTaxon)
		}
		seen[taxon] = struct{}{}
	}

	return nil
}
