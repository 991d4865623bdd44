// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"math"

	"github.com/biascal/biascal/compvec"
)

// ErrorMatrix is a dense, row-major samples × taxa matrix of per-cell
// multiplicative measurement errors (observed/actual ratios).
//
// Invariant: every non-missing cell is a finite positive real. The invariant
// is established at construction and re-checkable via Validate; downstream
// estimators treat it as guaranteed.
type ErrorMatrix struct {
	samples []string        // row labels, unique, construction order
	taxa    []string        // column labels, unique, construction order
	cells   []compvec.Value // flat backing storage, length == len(samples)*len(taxa)
}

// NewErrorMatrix builds an ErrorMatrix from pre-computed error ratios.
//
// Stage 1 (Validate shape): non-empty dimensions, unique labels, every row
// of cells the same width as taxa.
// Stage 2 (Validate cells): every non-missing entry finite and positive;
// the first offending cell is reported as a *CellError.
// Stage 3 (Finalize): copy rows into flat row-major storage.
//
// Errors: ErrEmptyInput, ErrInvalidInput (shape, duplicate labels, bad cell).
//
// Complexity: O(samples × taxa) time and memory.
func NewErrorMatrix(samples, taxa []string, cells [][]compvec.Value) (*ErrorMatrix, error) {
	if len(samples) == 0 || len(taxa) == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkLabels(samples, "sample"); err != nil {
		return nil, err
	}
	if err := checkLabels(taxa, "taxon"); err != nil {
		return nil, err
	}
	if len(cells) != len(samples) {
		return nil, fmt.Errorf("core: %d rows for %d samples: %w", len(cells), len(samples), ErrInvalidInput)
	}

	m := &ErrorMatrix{
		samples: append([]string(nil), samples...),
		taxa:    append([]string(nil), taxa...),
		cells:   make([]compvec.Value, 0, len(samples)*len(taxa)),
	}
	for i, row := range cells {
		if len(row) != len(taxa) {
			return nil, fmt.Errorf("core: row %q has %d cells for %d taxa: %w",
				samples[i], len(row), len(taxa), ErrInvalidInput)
		}
		m.cells = append(m.cells, row...)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// FromObservedActual builds an ErrorMatrix from paired raw measurements.
// Cell policy, applied per (sample, taxon):
//   - observed == 0 && actual == 0  ⇒ missing (absent from both measurements)
//   - observed  > 0 && actual  > 0  ⇒ observed/actual
//   - anything else                 ⇒ *CellError (a positive/zero pair would
//     produce 0 or +Inf; callers must pre-resolve such cells, e.g. via a
//     pseudocount-and-mask policy, before the matrix reaches the core)
//
// Errors: ErrEmptyInput, ErrInvalidInput.
//
// Complexity: O(samples × taxa).
func FromObservedActual(samples, taxa []string, observed, actual [][]float64) (*ErrorMatrix, error) {
	if len(samples) == 0 || len(taxa) == 0 {
		return nil, ErrEmptyInput
	}
	if len(observed) != len(samples) || len(actual) != len(samples) {
		return nil, fmt.Errorf("core: observed/actual have %d/%d rows for %d samples: %w",
			len(observed), len(actual), len(samples), ErrInvalidInput)
	}

	rows := make([][]compvec.Value, len(samples))
	for i := range samples {
		if len(observed[i]) != len(taxa) || len(actual[i]) != len(taxa) {
			return nil, fmt.Errorf("core: row %q has %d/%d cells for %d taxa: %w",
				samples[i], len(observed[i]), len(actual[i]), len(taxa), ErrInvalidInput)
		}
		rows[i] = make([]compvec.Value, len(taxa))
		for j := range taxa {
			cell, err := errorCell(samples[i], taxa[j], observed[i][j], actual[i][j])
			if err != nil {
				return nil, err
			}
			rows[i][j] = cell
		}
	}

	return NewErrorMatrix(samples, taxa, rows)
}

// errorCell applies the observed/actual cell policy for a single cell.
func errorCell(sample, taxon string, obs, act float64) (compvec.Value, error) {
	switch {
	case !finiteNonNegative(obs) || !finiteNonNegative(act):
		return compvec.Missing(), &CellError{
			Sample: sample, Taxon: taxon,
			Value:  compvec.V(obs),
			Reason: "observed/actual must be finite and non-negative",
		}
	case obs == 0 && act == 0:
		return compvec.Missing(), nil
	case obs > 0 && act > 0:
		return compvec.V(obs / act), nil
	case act == 0:
		// observed > 0, actual == 0 would yield +Inf.
		return compvec.Missing(), &CellError{
			Sample: sample, Taxon: taxon,
			Value:  compvec.V(obs),
			Reason: "positive observed with zero actual; pre-mask or pseudocount required",
		}
	default:
		// observed == 0, actual > 0 would yield a masked zero.
		return compvec.Missing(), &CellError{
			Sample: sample, Taxon: taxon,
			Value:  compvec.V(0),
			Reason: "zero observed with positive actual; pre-mask or pseudocount required",
		}
	}
}

// finiteNonNegative reports whether x is a usable raw measurement.
func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}

// checkLabels rejects empty and duplicate labels.
func checkLabels(labels []string, kind string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if l == "" {
			return fmt.Errorf("core: empty %s label: %w", kind, ErrInvalidInput)
		}
		if _, dup := seen[l]; dup {
			return fmt.Errorf("core: duplicate %s label %q: %w", kind, l, ErrInvalidInput)
		}
		seen[l] = struct{}{}
	}

	return nil
}

// NumSamples returns the number of rows.
func (m *ErrorMatrix) NumSamples() int { return len(m.samples) }

// NumTaxa returns the number of columns.
func (m *ErrorMatrix) NumTaxa() int { return len(m.taxa) }

// Samples returns a copy of the row labels in matrix order.
func (m *ErrorMatrix) Samples() []string { return append([]string(nil), m.samples...) }

// Taxa returns a copy of the column labels in matrix order.
func (m *ErrorMatrix) Taxa() []string { return append([]string(nil), m.taxa...) }

// At returns the cell at (row, col), bounds-checked.
//
// Complexity: O(1).
func (m *ErrorMatrix) At(row, col int) (compvec.Value, error) {
	if row < 0 || row >= len(m.samples) {
		return compvec.Missing(), fmt.Errorf("core: row %d of %d: %w", row, len(m.samples), ErrOutOfRange)
	}
	if col < 0 || col >= len(m.taxa) {
		return compvec.Missing(), fmt.Errorf("core: col %d of %d: %w", col, len(m.taxa), ErrOutOfRange)
	}

	return m.cells[row*len(m.taxa)+col], nil
}

// Column returns a copy of column col (one Value per sample).
//
// Complexity: O(samples).
func (m *ErrorMatrix) Column(col int) ([]compvec.Value, error) {
	if col < 0 || col >= len(m.taxa) {
		return nil, fmt.Errorf("core: col %d of %d: %w", col, len(m.taxa), ErrOutOfRange)
	}

	out := make([]compvec.Value, len(m.samples))
	for i := range m.samples {
		out[i] = m.cells[i*len(m.taxa)+col]
	}

	return out, nil
}

// Validate re-checks the finite-positive-or-missing invariant over every
// cell. Violations are collected as *CellError values and joined, so both
// errors.Is(err, ErrInvalidInput) and errors.As(&CellError) work on the
// result. Returns nil when the matrix is well-formed.
//
// Complexity: O(samples × taxa).
func (m *ErrorMatrix) Validate() error {
	var bad []error
	for i := range m.samples {
		for j := range m.taxa {
			v := m.cells[i*len(m.taxa)+j]
			f, present := v.Float64()
			if !present {
				continue
			}
			switch {
			case math.IsNaN(f):
				bad = append(bad, &CellError{Sample: m.samples[i], Taxon: m.taxa[j], Value: v, Reason: "NaN entry"})
			case math.IsInf(f, 0):
				bad = append(bad, &CellError{Sample: m.samples[i], Taxon: m.taxa[j], Value: v, Reason: "infinite entry"})
			case f == 0:
				bad = append(bad, &CellError{Sample: m.samples[i], Taxon: m.taxa[j], Value: v, Reason: "zero entry"})
			case f < 0:
				bad = append(bad, &CellError{Sample: m.samples[i], Taxon: m.taxa[j], Value: v, Reason: "negative entry"})
			}
		}
	}

	return joinCellErrors(bad)
}

// Resample builds a new ErrorMatrix whose rows are the rows of m selected by
// rowIdx, in order and with repetition allowed — the row-multiset view drawn
// by the nonparametric bootstrap. Sample labels are suffixed with their draw
// position ("S1#3") to keep row labels unique in the resampled matrix.
//
// Errors: ErrEmptyInput when rowIdx is empty, ErrOutOfRange on a bad index.
//
// Complexity: O(len(rowIdx) × taxa).
func (m *ErrorMatrix) Resample(rowIdx []int) (*ErrorMatrix, error) {
	if len(rowIdx) == 0 {
		return nil, ErrEmptyInput
	}

	t := len(m.taxa)
	out := &ErrorMatrix{
		samples: make([]string, len(rowIdx)),
		taxa:    append([]string(nil), m.taxa...),
		cells:   make([]compvec.Value, 0, len(rowIdx)*t),
	}
	for pos, r := range rowIdx {
		if r < 0 || r >= len(m.samples) {
			return nil, fmt.Errorf("core: resample row %d of %d: %w", r, len(m.samples), ErrOutOfRange)
		}
		out.samples[pos] = fmt.Sprintf("%s#%d", m.samples[r], pos+1)
		out.cells = append(out.cells, m.cells[r*t:(r+1)*t]...)
	}

	return out, nil
}

// Presence derives the boolean PresenceMatrix: true where the cell is
// non-missing.
//
// Complexity: O(samples × taxa).
func (m *ErrorMatrix) Presence() *PresenceMatrix {
	p := &PresenceMatrix{
		samples: append([]string(nil), m.samples...),
		taxa:    append([]string(nil), m.taxa...),
		mask:    make([]bool, len(m.cells)),
	}
	for i, v := range m.cells {
		p.mask[i] = !v.IsMissing()
	}

	return p
}
