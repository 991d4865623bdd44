// SPDX-License-Identifier: MIT

package compvec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biascal/biascal/compvec"
)

const tol = 1e-12

// TestGeometricMean_Basic verifies the geometric mean of an all-present
// vector: gmean(2, 8) = 4.
func TestGeometricMean_Basic(t *testing.T) {
	gm, err := compvec.GeometricMean([]compvec.Value{compvec.V(2), compvec.V(8)})
	require.NoError(t, err)

	f, ok := gm.Float64()
	require.True(t, ok, "geometric mean of present entries must be present")
	assert.InDelta(t, 4.0, f, tol)
}

// TestGeometricMean_IgnoresMissing verifies that missing entries do not
// contribute: gmean(2, missing, 8) = gmean(2, 8) = 4.
func TestGeometricMean_IgnoresMissing(t *testing.T) {
	gm, err := compvec.GeometricMean([]compvec.Value{
		compvec.V(2), compvec.Missing(), compvec.V(8),
	})
	require.NoError(t, err)

	f, ok := gm.Float64()
	require.True(t, ok)
	assert.InDelta(t, 4.0, f, tol)
}

// TestGeometricMean_AllMissing verifies the all-missing vector yields a
// missing mean and no error.
func TestGeometricMean_AllMissing(t *testing.T) {
	gm, err := compvec.GeometricMean([]compvec.Value{compvec.Missing(), compvec.Missing()})
	require.NoError(t, err)
	assert.True(t, gm.IsMissing(), "all-missing input must yield a missing mean")
}

// TestGeometricMean_RejectsNonPositive ensures zero, negative, NaN and Inf
// entries all surface ErrNonPositive.
func TestGeometricMean_RejectsNonPositive(t *testing.T) {
	bad := []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, x := range bad {
		_, err := compvec.GeometricMean([]compvec.Value{compvec.V(x), compvec.V(2)})
		assert.ErrorIs(t, err, compvec.ErrNonPositive, "entry %v must be rejected", x)
	}
}

// TestClosure_Invariant checks the closure invariant: after Closure, the
// geometric mean of the non-missing entries equals 1 within tolerance.
func TestClosure_Invariant(t *testing.T) {
	v := []compvec.Value{
		compvec.V(0.3), compvec.Missing(), compvec.V(7), compvec.V(42), compvec.V(1e-4),
	}

	cl, err := compvec.Closure(v)
	require.NoError(t, err)
	require.Len(t, cl, len(v))

	gm, err := compvec.GeometricMean(cl)
	require.NoError(t, err)
	f, ok := gm.Float64()
	require.True(t, ok)
	assert.InDelta(t, 1.0, f, 1e-9, "closure must normalize the geometric mean to 1")

	// Missing slots pass through untouched.
	assert.True(t, cl[1].IsMissing(), "missing entries must survive closure")
}

// TestClosure_SingleEntry verifies that a vector with exactly one present
// entry closes that entry to exactly 1 (it normalizes to itself).
func TestClosure_SingleEntry(t *testing.T) {
	cl, err := compvec.Closure([]compvec.Value{compvec.Missing(), compvec.V(17)})
	require.NoError(t, err)

	f, ok := cl[1].Float64()
	require.True(t, ok)
	assert.Equal(t, 1.0, f, "single present value must close to exactly 1")
}

// TestClosure_Errors covers the two closure failure modes.
func TestClosure_Errors(t *testing.T) {
	_, err := compvec.Closure([]compvec.Value{compvec.Missing()})
	assert.ErrorIs(t, err, compvec.ErrAllMissing)

	_, err = compvec.Closure([]compvec.Value{compvec.V(0), compvec.V(1)})
	assert.ErrorIs(t, err, compvec.ErrNonPositive)
}

// TestClosure_PreservesRatios verifies closure invariance under pairwise
// ratios: ratios between entries are identical before and after closure.
func TestClosure_PreservesRatios(t *testing.T) {
	v := []compvec.Value{compvec.V(4), compvec.V(math.Sqrt(8))}

	cl, err := compvec.Closure(v)
	require.NoError(t, err)

	before := compvec.Ratio(v[0], v[1])
	after := compvec.Ratio(cl[0], cl[1])

	fb, _ := before.Float64()
	fa, ok := after.Float64()
	require.True(t, ok)
	assert.InDelta(t, fb, fa, 1e-9, "closure must not disturb pairwise ratios")
	assert.InDelta(t, 4/math.Sqrt(8), fa, 1e-9)
}

// TestRatio_MissingPropagation checks Ratio's missing propagation in all
// three missing configurations.
func TestRatio_MissingPropagation(t *testing.T) {
	a, b := compvec.V(3), compvec.V(6)

	assert.True(t, compvec.Ratio(a, compvec.Missing()).IsMissing())
	assert.True(t, compvec.Ratio(compvec.Missing(), b).IsMissing())
	assert.True(t, compvec.Ratio(compvec.Missing(), compvec.Missing()).IsMissing())

	r, ok := compvec.Ratio(a, b).Float64()
	require.True(t, ok)
	assert.InDelta(t, 0.5, r, tol)
}

// TestValue_ZeroValueIsMissing pins the zero-value contract of Value.
func TestValue_ZeroValueIsMissing(t *testing.T) {
	var v compvec.Value
	assert.True(t, v.IsMissing())
	assert.Equal(t, "missing", v.String())
	assert.Equal(t, "2.5", compvec.V(2.5).String())
}
