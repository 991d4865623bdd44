// SPDX-License-Identifier: MIT

package calibrate

import (
	"errors"
	"fmt"
	"math"

	"github.com/biascal/biascal/center"
	"github.com/biascal/biascal/compvec"
)

// Sentinel errors for calibration.
var (
	// ErrLengthMismatch indicates taxa and observed differ in length.
	ErrLengthMismatch = errors.New("calibrate: taxa and observed length mismatch")

	// ErrUnknownTaxon indicates an observed taxon with no bias estimate.
	ErrUnknownTaxon = errors.New("calibrate: taxon not in bias estimate")

	// ErrCrossComponent indicates the observed taxa span more than one bias
	// component; their bias values have no common scale, so a joint
	// correction is undefined.
	ErrCrossComponent = errors.New("calibrate: observed taxa span multiple bias components")

	// ErrEmptyObservation indicates an observation vector with no
	// non-missing entry.
	ErrEmptyObservation = errors.New("calibrate: observation has no non-missing entries")
)

// Calibrate divides the observed composition by the estimated bias and
// renormalizes the non-missing result to proportions (sum 1).
//
// Stage 1 (Validate): lengths match; every present entry is finite
// positive; every present taxon is estimable and all present taxa share one
// bias component.
// Stage 2 (Correct): corrected(i) = observed(i) / bias(i); missing entries
// pass through.
// Stage 3 (Renormalize): divide present corrected entries by their sum.
//
// The input is never mutated.
//
// Errors: ErrLengthMismatch, ErrEmptyObservation, ErrUnknownTaxon,
// ErrCrossComponent, compvec.ErrNonPositive.
//
// Complexity: O(n) time, O(n) memory.
func Calibrate(taxa []string, observed []compvec.Value, est center.BiasEstimate) ([]compvec.Value, error) {
	if len(taxa) != len(observed) {
		return nil, fmt.Errorf("calibrate: %d taxa, %d observed: %w", len(taxa), len(observed), ErrLengthMismatch)
	}

	// Stage 1: validation over the present entries.
	component := -1
	present := 0
	for i, obs := range observed {
		f, ok := obs.Float64()
		if !ok {
			continue
		}
		present++
		if f <= 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, fmt.Errorf("calibrate: taxon %q = %s: %w", taxa[i], obs, compvec.ErrNonPositive)
		}
		comp, estimable := est.Component(taxa[i])
		if !estimable {
			return nil, fmt.Errorf("calibrate: taxon %q: %w", taxa[i], ErrUnknownTaxon)
		}
		if component == -1 {
			component = comp
		} else if comp != component {
			return nil, fmt.Errorf("calibrate: taxa %q (component %d) and %q (component %d): %w",
				taxa[i], comp, firstInComponent(taxa, observed, est, component), component, ErrCrossComponent)
		}
	}
	if present == 0 {
		return nil, ErrEmptyObservation
	}

	// Stage 2: element-wise correction.
	out := make([]compvec.Value, len(observed))
	total := 0.0
	for i, obs := range observed {
		f, ok := obs.Float64()
		if !ok {
			out[i] = compvec.Missing()
			continue
		}
		b, _ := est.Value(taxa[i]) // estimable, checked above
		corrected := f / b
		out[i] = compvec.V(corrected)
		total += corrected
	}

	// Stage 3: renormalize the observed subcomposition to proportions.
	for i, v := range out {
		if f, ok := v.Float64(); ok {
			out[i] = compvec.V(f / total)
		}
	}

	return out, nil
}

// firstInComponent names a present taxon already attributed to component id,
// for the cross-component diagnostic.
func firstInComponent(taxa []string, observed []compvec.Value, est center.BiasEstimate, id int) string {
	for i, obs := range observed {
		if obs.IsMissing() {
			continue
		}
		if comp, ok := est.Component(taxa[i]); ok && comp == id {
			return taxa[i]
		}
	}

	return ""
}
