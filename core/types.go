// SPDX-License-Identifier: MIT

// Package core: sentinel error set and the cell-level error type.
// All constructors and validators in this package return these sentinels and
// callers match them via errors.Is. Cell-level violations carry their
// coordinates in a *CellError that unwraps to ErrInvalidInput.
package core

import (
	"errors"
	"fmt"

	"github.com/biascal/biascal/compvec"
)

// Sentinel errors for matrix construction and validation.
var (
	// ErrInvalidInput indicates a malformed ErrorMatrix: inconsistent shape,
	// duplicate sample or taxon labels, or an entry violating the
	// finite-positive invariant.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrEmptyInput indicates a matrix with zero samples or zero taxa.
	ErrEmptyInput = errors.New("core: empty input")

	// ErrOutOfRange indicates a row or column index outside matrix bounds.
	ErrOutOfRange = errors.New("core: index out of range")
)

// CellError identifies a single matrix cell that violates the
// finite-positive-or-missing invariant. It unwraps to ErrInvalidInput so
// errors.Is(err, ErrInvalidInput) matches.
type CellError struct {
	// Sample and Taxon are the labels of the offending cell.
	Sample string
	Taxon  string

	// Value is the offending entry as supplied.
	Value compvec.Value

	// Reason describes the violation ("zero entry", "negative entry", ...).
	Reason string
}

// Error renders the cell coordinates and the violation.
func (e *CellError) Error() string {
	return fmt.Sprintf("core: invalid input: cell (%s, %s) = %s: %s",
		e.Sample, e.Taxon, e.Value, e.Reason)
}

// Unwrap links the cell error to the ErrInvalidInput sentinel.
func (e *CellError) Unwrap() error { return ErrInvalidInput }

// joinCellErrors collapses a collected slice of cell violations into a single
// error (nil for none, the lone error for one, errors.Join otherwise).
func joinCellErrors(bad []error) error {
	switch len(bad) {
	case 0:
		return nil
	case 1:
		return bad[0]
	default:
		return errors.Join(bad...)
	}
}
