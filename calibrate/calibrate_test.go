// SPDX-License-Identifier: MIT

package calibrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biascal/biascal/calibrate"
	"github.com/biascal/biascal/center"
	"github.com/biascal/biascal/compvec"
	"github.com/biascal/biascal/core"
)

// estimate builds a bias estimate from the given single-sample error rows.
func estimate(t *testing.T, taxa []string, rows [][]compvec.Value, allowMulti bool) center.BiasEstimate {
	t.Helper()
	samples := make([]string, len(rows))
	for i := range rows {
		samples[i] = "S" + string(rune('1'+i))
	}
	m, err := core.NewErrorMatrix(samples, taxa, rows)
	require.NoError(t, err)
	est, err := center.Estimate(m, center.Options{AllowMultipleComponents: allowMulti})
	require.NoError(t, err)

	return est
}

// TestCalibrate_RecoversActual runs the full round trip: a known actual
// composition distorted by a known bias is recovered exactly.
//
// Bias from one control sample with errors (A=2, B=8): closure gives
// bias = (0.5, 2). Observed proportions (0.2, 0.8) are the distortion of
// actual (0.5, 0.5) by that bias; calibration inverts it.
func TestCalibrate_RecoversActual(t *testing.T) {
	est := estimate(t, []string{"A", "B"},
		[][]compvec.Value{{compvec.V(2), compvec.V(8)}}, false)

	got, err := calibrate.Calibrate(
		[]string{"A", "B"},
		[]compvec.Value{compvec.V(0.2), compvec.V(0.8)},
		est,
	)
	require.NoError(t, err)
	require.Len(t, got, 2)

	a, ok := got[0].Float64()
	require.True(t, ok)
	b, _ := got[1].Float64()
	assert.Equal(t, 0.5, a)
	assert.Equal(t, 0.5, b)
}

// TestCalibrate_SubcompositionAndMissing verifies that missing observed
// entries pass through and the present entries renormalize among
// themselves to sum 1.
func TestCalibrate_SubcompositionAndMissing(t *testing.T) {
	est := estimate(t, []string{"A", "B", "C"},
		[][]compvec.Value{{compvec.V(2), compvec.V(4), compvec.V(8)}}, false)

	got, err := calibrate.Calibrate(
		[]string{"A", "B", "C"},
		[]compvec.Value{compvec.V(0.3), compvec.Missing(), compvec.V(0.7)},
		est,
	)
	require.NoError(t, err)

	assert.True(t, got[1].IsMissing(), "missing observed entry stays missing")

	a, ok := got[0].Float64()
	require.True(t, ok)
	c, ok := got[2].Float64()
	require.True(t, ok)
	assert.InDelta(t, 1.0, a+c, 1e-12, "present entries must renormalize to proportions")
	assert.Positive(t, a)
	assert.Positive(t, c)
}

// TestCalibrate_Errors walks the error taxonomy.
func TestCalibrate_Errors(t *testing.T) {
	est := estimate(t, []string{"A", "B", "C"},
		[][]compvec.Value{
			{compvec.V(2), compvec.V(4), compvec.Missing()},
			{compvec.Missing(), compvec.Missing(), compvec.V(3)},
		}, true)

	// Length mismatch.
	_, err := calibrate.Calibrate([]string{"A"}, nil, est)
	assert.ErrorIs(t, err, calibrate.ErrLengthMismatch)

	// All-missing observation.
	_, err = calibrate.Calibrate([]string{"A"}, []compvec.Value{compvec.Missing()}, est)
	assert.ErrorIs(t, err, calibrate.ErrEmptyObservation)

	// Unknown taxon.
	_, err = calibrate.Calibrate([]string{"Z"}, []compvec.Value{compvec.V(1)}, est)
	assert.ErrorIs(t, err, calibrate.ErrUnknownTaxon)

	// Non-positive observed entry.
	_, err = calibrate.Calibrate([]string{"A"}, []compvec.Value{compvec.V(0)}, est)
	assert.ErrorIs(t, err, compvec.ErrNonPositive)

	// Observed taxa span components {A,B} and {C}.
	_, err = calibrate.Calibrate(
		[]string{"A", "C"},
		[]compvec.Value{compvec.V(0.5), compvec.V(0.5)},
		est,
	)
	assert.ErrorIs(t, err, calibrate.ErrCrossComponent)

	// Restricting to one component works.
	got, err := calibrate.Calibrate(
		[]string{"A", "B"},
		[]compvec.Value{compvec.V(0.5), compvec.V(0.5)},
		est,
	)
	require.NoError(t, err)
	a, _ := got[0].Float64()
	b, _ := got[1].Float64()
	assert.InDelta(t, 1.0, a+b, 1e-12)
}
