// SPDX-License-Identifier: MIT

package compvec

import (
	"errors"
	"strconv"
)

// Sentinel errors for compositional-vector operations.
var (
	// ErrAllMissing indicates that every entry of the input vector is missing,
	// so there is nothing to normalize against.
	ErrAllMissing = errors.New("compvec: all entries missing")

	// ErrNonPositive indicates that a non-missing entry is zero, negative,
	// NaN or infinite. Compositional values must be finite positive reals.
	ErrNonPositive = errors.New("compvec: non-positive or non-finite entry")
)

// Value is a positive real that may be missing. Missing means the quantity is
// undefined for this slot (e.g. a taxon absent from both the observed and the
// reference measurement), not zero: zero is an invalid compositional value.
//
// The zero Value is Missing(); V(x) constructs a present value.
// Missing is tracked with an explicit flag rather than a NaN/Inf sentinel so
// that IEEE-754 edge cases can never silently leak through arithmetic.
type Value struct {
	val     float64
	present bool
}

// V returns a present Value holding x. V performs no validation; operations
// that consume Values reject non-positive or non-finite entries with
// ErrNonPositive.
func V(x float64) Value { return Value{val: x, present: true} }

// Missing returns the missing Value.
func Missing() Value { return Value{} }

// IsMissing reports whether v is missing.
func (v Value) IsMissing() bool { return !v.present }

// Float64 returns the underlying number and true when v is present,
// or (0, false) when v is missing.
func (v Value) Float64() (float64, bool) { return v.val, v.present }

// String renders the value for diagnostics: "missing" or the decimal form.
func (v Value) String() string {
	if !v.present {
		return "missing"
	}

	return strconv.FormatFloat(v.val, 'g', -1, 64)
}

// Ratio returns a/b, propagating missing: if either operand is missing the
// result is missing. No positivity check is performed here; operands are
// expected to satisfy the compositional invariant already.
//
// Complexity: O(1).
func Ratio(a, b Value) Value {
	if !a.present || !b.present {
		return Missing()
	}

	return V(a.val / b.val)
}
