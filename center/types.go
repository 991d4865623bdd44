// SPDX-License-Identifier: MIT

// Package center: options, result type and sentinel errors.
package center

import (
	"errors"
	"fmt"
	"sort"

	"github.com/biascal/biascal/compvec"
	"github.com/biascal/biascal/cooccur"
)

// ErrUnidentifiableBias indicates the co-occurrence graph splits into more
// than one component and the caller did not opt into per-component
// estimation. Recoverable only by explicitly requesting per-component
// results; never silently downgraded.
var ErrUnidentifiableBias = errors.New("center: bias not identifiable across disconnected taxa")

// UnidentifiableError carries the component partition that caused an
// identifiability failure. It unwraps to ErrUnidentifiableBias.
type UnidentifiableError struct {
	// Assignment is the component labeling of the observed taxa.
	Assignment cooccur.ComponentAssignment
}

// Error renders the partition for diagnostics.
func (e *UnidentifiableError) Error() string {
	return fmt.Sprintf("center: bias not identifiable: co-occurrence graph has %d components %v; "+
		"enable AllowMultipleComponents for per-component estimates",
		e.Assignment.Count(), e.Assignment.Partition())
}

// Unwrap links to the ErrUnidentifiableBias sentinel.
func (e *UnidentifiableError) Unwrap() error { return ErrUnidentifiableBias }

// Options configures Estimate.
//
// Fields:
//   - AllowMultipleComponents — when the co-occurrence graph is
//     disconnected, estimate each component independently instead of
//     failing. Ratios across components remain undefined in the result.
type Options struct {
	AllowMultipleComponents bool
}

// DefaultOptions returns the default policy: a disconnected graph is an
// error.
func DefaultOptions() Options { return Options{AllowMultipleComponents: false} }

// BiasEstimate maps each estimable taxon to its bias value and component id.
// Within one component the values form a compositional equivalence class
// normalized to geometric mean 1; only within-component ratios carry
// meaning.
type BiasEstimate struct {
	taxa   []string // estimable taxa, lexicographically sorted
	values map[string]float64
	comps  map[string]int
	ncomp  int
}

// newBiasEstimate assembles the result container from per-taxon values and
// the component assignment restricted to those taxa.
func newBiasEstimate(values map[string]float64, ca cooccur.ComponentAssignment) BiasEstimate {
	est := BiasEstimate{
		taxa:   make([]string, 0, len(values)),
		values: values,
		comps:  make(map[string]int, len(values)),
		ncomp:  ca.Count(),
	}
	for taxon := range values {
		est.taxa = append(est.taxa, taxon)
		id, _ := ca.ComponentOf(taxon)
		est.comps[taxon] = id
	}
	sort.Strings(est.taxa)

	return est
}

// Taxa returns the estimable taxa, lexicographically sorted.
func (e BiasEstimate) Taxa() []string { return append([]string(nil), e.taxa...) }

// NumComponents returns the number of components in the estimate.
func (e BiasEstimate) NumComponents() int { return e.ncomp }

// Value returns the bias of taxon and whether the taxon was estimable.
func (e BiasEstimate) Value(taxon string) (float64, bool) {
	v, ok := e.values[taxon]

	return v, ok
}

// Component returns the component id of taxon and whether the taxon was
// estimable.
func (e BiasEstimate) Component(taxon string) (int, bool) {
	id, ok := e.comps[taxon]

	return id, ok
}

// Ratio returns bias(x)/bias(y) when x and y are estimable and share a
// component, and missing otherwise. Cross-component ratios are undefined by
// construction and are never reported as numbers.
//
// Complexity: O(1).
func (e BiasEstimate) Ratio(x, y string) compvec.Value {
	cx, okX := e.comps[x]
	cy, okY := e.comps[y]
	if !okX || !okY || cx != cy {
		return compvec.Missing()
	}

	return compvec.V(e.values[x] / e.values[y])
}
