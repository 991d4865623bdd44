// SPDX-License-Identifier: MIT

package bootstrap_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biascal/biascal/bootstrap"
	"github.com/biascal/biascal/center"
)

// estimateOf runs the center estimator over a single-sample matrix, giving a
// fully controlled replicate estimate for summary arithmetic tests.
func estimateOf(t *testing.T, a, b float64) center.BiasEstimate {
	t.Helper()
	m := matrix(t, []string{"S"}, []string{"A", "B"}, [][]float64{{a, b}})
	est, err := center.Estimate(m, center.DefaultOptions())
	require.NoError(t, err)

	return est
}

// TestSummarize_LogScaleArithmetic checks the per-taxon and per-pair
// aggregation on two handcrafted replicates:
//
//	replicate 1: closure(2, 8) = (0.5, 2)
//	replicate 2: closure(8, 2) = (2, 0.5)
//
// Taxon A values {0.5, 2}: geometric mean 1, log-sd = ln2·√2, so
// gsd = 2^√2 and the squared-gsd interval is [2^(-2√2), 2^(2√2)].
func TestSummarize_LogScaleArithmetic(t *testing.T) {
	rs := &bootstrap.ReplicateSet{
		Replicates: []bootstrap.Replicate{
			{ID: 1, Estimate: estimateOf(t, 2, 8)},
			{ID: 2, Estimate: estimateOf(t, 8, 2)},
		},
		Requested: 2,
	}

	sum, err := bootstrap.Summarize(rs)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Requested)
	assert.Equal(t, 2, sum.Successful)
	assert.Zero(t, sum.Skipped)

	require.Len(t, sum.Taxa, 2)
	rowA := sum.Taxa[0]
	require.Equal(t, "A", rowA.Taxon)
	assert.Equal(t, 2, rowA.Replicates)
	assert.InDelta(t, 1.0, rowA.Center, 1e-12)

	wantGSD := math.Pow(2, math.Sqrt2)
	gsd, ok := rowA.GeoSD.Float64()
	require.True(t, ok)
	assert.InDelta(t, wantGSD, gsd, 1e-9)

	// Interval convention: center ÷/× the SQUARE of the geometric sd.
	// The exponent is exactly 2, not a 1.96 normal quantile.
	lo, ok := rowA.IntervalLo.Float64()
	require.True(t, ok)
	hi, ok := rowA.IntervalHi.Float64()
	require.True(t, ok)
	assert.InDelta(t, 1/(wantGSD*wantGSD), lo, 1e-9)
	assert.InDelta(t, wantGSD*wantGSD, hi, 1e-9)

	// Percentiles of {0.5, 2} at 2.5/97.5 are the sample extremes.
	assert.InDelta(t, 0.5, rowA.PercentileLo, 1e-12)
	assert.InDelta(t, 2.0, rowA.PercentileHi, 1e-12)

	// Pair rows: both ordered directions, ratios {0.25, 4} for (A, B).
	require.Len(t, sum.Pairs, 2)
	ab := sum.Pairs[0]
	require.Equal(t, "A", ab.TaxonX)
	require.Equal(t, "B", ab.TaxonY)
	assert.Equal(t, 2, ab.Replicates)
	c, ok := ab.Center.Float64()
	require.True(t, ok)
	assert.InDelta(t, 1.0, c, 1e-12)
}

// TestSummarize_SingleReplicateSpreadMissing verifies that spread fields
// stay missing when only one replicate contributes — a single value has no
// dispersion to report.
func TestSummarize_SingleReplicateSpreadMissing(t *testing.T) {
	rs := &bootstrap.ReplicateSet{
		Replicates: []bootstrap.Replicate{{ID: 1, Estimate: estimateOf(t, 2, 8)}},
		Requested:  1,
	}

	sum, err := bootstrap.Summarize(rs)
	require.NoError(t, err)

	require.Len(t, sum.Taxa, 2)
	row := sum.Taxa[0]
	assert.Equal(t, 1, row.Replicates)
	assert.InDelta(t, 0.5, row.Center, 1e-12)
	assert.True(t, row.GeoSD.IsMissing())
	assert.True(t, row.IntervalLo.IsMissing())
	assert.True(t, row.IntervalHi.IsMissing())
	assert.Equal(t, 0.5, row.PercentileLo, "percentile of one value is that value")
}

// TestSummarize_CrossComponentPairsMissing runs a genuinely disconnected
// matrix per-component and confirms that pairs never linked in any
// replicate report missing values throughout, never a number.
func TestSummarize_CrossComponentPairsMissing(t *testing.T) {
	m := matrix(t,
		[]string{"S1", "S2"},
		[]string{"A", "B"},
		[][]float64{
			{2, -1},
			{-1, 4},
		})

	rs, err := bootstrap.Run(context.Background(), m, bootstrap.Options{
		Replicates:              30,
		Seed:                    9,
		AllowMultipleComponents: true,
	})
	require.NoError(t, err)

	sum, err := bootstrap.Summarize(rs)
	require.NoError(t, err)

	for _, pair := range sum.Pairs {
		assert.Zero(t, pair.Replicates, "(%s,%s): no sample ever links the taxa", pair.TaxonX, pair.TaxonY)
		assert.True(t, pair.Center.IsMissing())
		assert.True(t, pair.GeoSD.IsMissing())
		assert.True(t, pair.PercentileLo.IsMissing())
	}

	// The taxa themselves are estimable (each closes to 1 in its own
	// component) whenever they appear.
	for _, row := range sum.Taxa {
		assert.InDelta(t, 1.0, row.Center, 1e-12, row.Taxon)
	}
}

// TestSummarize_Skipped propagates the skip accounting into the summary.
func TestSummarize_Skipped(t *testing.T) {
	rs := &bootstrap.ReplicateSet{
		Replicates: []bootstrap.Replicate{{ID: 3, Estimate: estimateOf(t, 2, 8)}},
		Requested:  5,
		Skipped:    4,
	}

	sum, err := bootstrap.Summarize(rs)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Requested)
	assert.Equal(t, 1, sum.Successful)
	assert.Equal(t, 4, sum.Skipped)
}

// TestSummarize_Errors covers the degenerate-input taxonomy.
func TestSummarize_Errors(t *testing.T) {
	_, err := bootstrap.Summarize(nil)
	assert.ErrorIs(t, err, bootstrap.ErrNoReplicates)

	_, err = bootstrap.Summarize(&bootstrap.ReplicateSet{})
	assert.ErrorIs(t, err, bootstrap.ErrNoReplicates)

	_, err = bootstrap.Summarize(&bootstrap.ReplicateSet{Requested: 5, Skipped: 5})
	assert.ErrorIs(t, err, bootstrap.ErrAllReplicatesFailed)
}
