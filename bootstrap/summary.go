// SPDX-License-Identifier: MIT

package bootstrap

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/biascal/biascal/compvec"
)

// Percentile levels of the reported percentile interval.
const (
	percentileLo = 2.5
	percentileHi = 97.5
)

// Summarize aggregates a ReplicateSet into per-taxon and per-pair
// uncertainty summaries.
//
// Per taxon, over the replicates in which the taxon was estimable: the
// geometric mean, the geometric standard deviation gsd = exp(sd(ln values))
// (sample sd, log scale), the two-geometric-SD multiplicative interval
// center÷gsd² .. center×gsd² (the exponent is exactly 2, not a normal
// quantile), and the 2.5%/97.5% nearest-rank percentile interval
// (nearest-rank stays defined for arbitrarily small replicate counts).
//
// Per ordered taxon pair, the same aggregation over the per-replicate
// ratios bias(x)/bias(y), restricted to replicates where both taxa share a
// component. A pair never linked in any replicate reports missing values
// throughout rather than a number.
//
// Errors: ErrNoReplicates on a nil/empty set, ErrAllReplicatesFailed when
// the set was emptied by the skip policy.
//
// Complexity: O(B × taxa²) time, O(taxa²) memory for pair rows.
func Summarize(rs *ReplicateSet) (Summary, error) {
	if rs == nil || rs.Requested == 0 {
		return Summary{}, ErrNoReplicates
	}
	if len(rs.Replicates) == 0 {
		if rs.Skipped > 0 {
			return Summary{}, ErrAllReplicatesFailed
		}

		return Summary{}, ErrNoReplicates
	}

	// Union of estimable taxa across replicates, sorted.
	seen := make(map[string]struct{})
	var taxa []string
	for _, rep := range rs.Replicates {
		for _, taxon := range rep.Estimate.Taxa() {
			if _, dup := seen[taxon]; !dup {
				seen[taxon] = struct{}{}
				taxa = append(taxa, taxon)
			}
		}
	}
	sort.Strings(taxa)

	sum := Summary{
		Requested:  rs.Requested,
		Successful: len(rs.Replicates),
		Skipped:    rs.Skipped,
	}

	// Per-taxon rows.
	for _, taxon := range taxa {
		var vals []float64
		for _, rep := range rs.Replicates {
			if v, ok := rep.Estimate.Value(taxon); ok {
				vals = append(vals, v)
			}
		}
		row, err := taxonRow(taxon, vals)
		if err != nil {
			return Summary{}, err
		}
		sum.Taxa = append(sum.Taxa, row)
	}

	// Per-pair rows, all ordered pairs.
	for _, x := range taxa {
		for _, y := range taxa {
			if x == y {
				continue
			}
			var vals []float64
			for _, rep := range rs.Replicates {
				if r, ok := rep.Estimate.Ratio(x, y).Float64(); ok {
					vals = append(vals, r)
				}
			}
			row, err := pairRow(x, y, vals)
			if err != nil {
				return Summary{}, err
			}
			sum.Pairs = append(sum.Pairs, row)
		}
	}

	return sum, nil
}

// logScale aggregates positive values on the log scale: geometric mean and,
// for two or more values, the geometric standard deviation with the
// squared-gsd multiplicative interval.
func logScale(vals []float64) (gmean float64, gsd, lo, hi compvec.Value) {
	logs := make([]float64, len(vals))
	for i, v := range vals {
		logs[i] = math.Log(v)
	}
	mean, sd := stat.MeanStdDev(logs, nil)
	gmean = math.Exp(mean)
	if len(vals) < 2 {
		// A single value has no spread; gsd and the interval stay missing.
		return gmean, compvec.Missing(), compvec.Missing(), compvec.Missing()
	}
	g := math.Exp(sd)

	return gmean, compvec.V(g), compvec.V(gmean / (g * g)), compvec.V(gmean * (g * g))
}

// taxonRow builds one TaxonSummary; vals is non-empty by construction
// (the taxon appeared in at least one replicate).
func taxonRow(taxon string, vals []float64) (TaxonSummary, error) {
	gmean, gsd, lo, hi := logScale(vals)

	plo, err := stats.PercentileNearestRank(vals, percentileLo)
	if err != nil {
		return TaxonSummary{}, fmt.Errorf("bootstrap: taxon %q percentile: %w", taxon, err)
	}
	phi, err := stats.PercentileNearestRank(vals, percentileHi)
	if err != nil {
		return TaxonSummary{}, fmt.Errorf("bootstrap: taxon %q percentile: %w", taxon, err)
	}

	return TaxonSummary{
		Taxon:        taxon,
		Replicates:   len(vals),
		Center:       gmean,
		GeoSD:        gsd,
		IntervalLo:   lo,
		IntervalHi:   hi,
		PercentileLo: plo,
		PercentileHi: phi,
	}, nil
}

// pairRow builds one PairSummary; an empty vals means the pair was never
// linked within a component and every field stays missing.
func pairRow(x, y string, vals []float64) (PairSummary, error) {
	row := PairSummary{
		TaxonX:       x,
		TaxonY:       y,
		Replicates:   len(vals),
		Center:       compvec.Missing(),
		GeoSD:        compvec.Missing(),
		IntervalLo:   compvec.Missing(),
		IntervalHi:   compvec.Missing(),
		PercentileLo: compvec.Missing(),
		PercentileHi: compvec.Missing(),
	}
	if len(vals) == 0 {
		return row, nil
	}

	gmean, gsd, lo, hi := logScale(vals)
	row.Center = compvec.V(gmean)
	row.GeoSD = gsd
	row.IntervalLo = lo
	row.IntervalHi = hi

	plo, err := stats.PercentileNearestRank(vals, percentileLo)
	if err != nil {
		return PairSummary{}, fmt.Errorf("bootstrap: pair (%s, %s) percentile: %w", x, y, err)
	}
	phi, err := stats.PercentileNearestRank(vals, percentileHi)
	if err != nil {
		return PairSummary{}, fmt.Errorf("bootstrap: pair (%s, %s) percentile: %w", x, y, err)
	}
	row.PercentileLo = compvec.V(plo)
	row.PercentileHi = compvec.V(phi)

	return row, nil
}
