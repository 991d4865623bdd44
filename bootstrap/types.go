// SPDX-License-Identifier: MIT

// Package bootstrap: options, result containers and sentinel errors.
package bootstrap

import (
	"errors"

	"github.com/biascal/biascal/center"
	"github.com/biascal/biascal/compvec"
)

// Sentinel errors for the bootstrap engine.
var (
	// ErrNoReplicates indicates a non-positive replicate count, or a nil or
	// empty replicate set passed to Summarize.
	ErrNoReplicates = errors.New("bootstrap: no replicates")

	// ErrAllReplicatesFailed indicates that SkipFailedReplicates discarded
	// every single replicate, leaving nothing to summarize.
	ErrAllReplicatesFailed = errors.New("bootstrap: all replicates failed identifiability")
)

// DefaultReplicates is the replicate count used by DefaultOptions.
const DefaultReplicates = 1000

// Options configures a bootstrap run.
//
// Fields:
//   - Replicates — number of resampling replicates B (must be positive).
//   - Seed       — base RNG seed; 0 selects a fixed default seed, so the
//     zero value is still fully reproducible.
//   - AllowMultipleComponents — forwarded to the center estimator for every
//     replicate (and meaningful when the original matrix itself is
//     disconnected).
//   - SkipFailedReplicates — when a replicate's redraw disconnects the
//     co-occurrence graph, omit that replicate and count the omission
//     instead of failing the whole run. Only identifiability failures are
//     skippable; any other error always propagates.
//   - Workers — maximum concurrent replicates; values < 1 mean serial
//     execution. Results are independent of this setting.
type Options struct {
	Replicates              int
	Seed                    int64
	AllowMultipleComponents bool
	SkipFailedReplicates    bool
	Workers                 int
}

// DefaultOptions returns the default bootstrap policy: 1000 serial
// replicates, fixed default seed, strict identifiability.
func DefaultOptions() Options {
	return Options{Replicates: DefaultReplicates, Workers: 1}
}

// Replicate is one successful bootstrap re-estimate, tagged with its
// replicate id (1..B).
type Replicate struct {
	ID       int
	Estimate center.BiasEstimate
}

// ReplicateSet is the outcome of a bootstrap run: the successful replicates
// in ascending id order, the requested replicate count, and how many
// replicates the skip policy discarded.
type ReplicateSet struct {
	Replicates []Replicate
	Requested  int
	Skipped    int
}

// TaxonSummary aggregates one taxon's bias across the successful replicates
// in which the taxon was estimable.
//
// Center is the geometric mean of the replicate values. GeoSD is
// exp(sd(log values)) and is missing when fewer than two replicates
// contribute. IntervalLo/Hi apply the ÷gsd²/×gsd² convention;
// PercentileLo/Hi are the 2.5% and 97.5% sample percentiles.
type TaxonSummary struct {
	Taxon      string
	Replicates int

	Center       float64
	GeoSD        compvec.Value
	IntervalLo   compvec.Value
	IntervalHi   compvec.Value
	PercentileLo float64
	PercentileHi float64
}

// PairSummary aggregates the bias ratio of an ordered taxon pair across the
// replicates in which both taxa shared a co-occurrence component. When no
// replicate links the pair, Center and every spread field are missing —
// a cross-component ratio is never reported as a number.
type PairSummary struct {
	TaxonX     string
	TaxonY     string
	Replicates int

	Center       compvec.Value
	GeoSD        compvec.Value
	IntervalLo   compvec.Value
	IntervalHi   compvec.Value
	PercentileLo compvec.Value
	PercentileHi compvec.Value
}

// Summary is the aggregated view of a ReplicateSet: per-taxon rows sorted by
// taxon, per-pair rows sorted by (TaxonX, TaxonY), plus the run accounting
// (requested, successful and skipped replicate counts).
type Summary struct {
	Taxa  []TaxonSummary
	Pairs []PairSummary

	Requested  int
	Successful int
	Skipped    int
}
