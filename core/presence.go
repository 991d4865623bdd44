// SPDX-License-Identifier: MIT

package core

import "fmt"

// PresenceMatrix is the boolean samples × taxa mask derived from an
// ErrorMatrix: true where the error entry is non-missing. It is the sole
// input to co-occurrence analysis — downstream code never needs the numeric
// entries to reason about identifiability.
type PresenceMatrix struct {
	samples []string
	taxa    []string
	mask    []bool // row-major, length == len(samples)*len(taxa)
}

// NumSamples returns the number of rows.
func (p *PresenceMatrix) NumSamples() int { return len(p.samples) }

// NumTaxa returns the number of columns.
func (p *PresenceMatrix) NumTaxa() int { return len(p.taxa) }

// Samples returns a copy of the row labels in matrix order.
func (p *PresenceMatrix) Samples() []string { return append([]string(nil), p.samples...) }

// Taxa returns a copy of the column labels in matrix order.
func (p *PresenceMatrix) Taxa() []string { return append([]string(nil), p.taxa...) }

// Present reports whether the cell at (row, col) is present, bounds-checked.
//
// Complexity: O(1).
func (p *PresenceMatrix) Present(row, col int) (bool, error) {
	if row < 0 || row >= len(p.samples) {
		return false, fmt.Errorf("core: row %d of %d: %w", row, len(p.samples), ErrOutOfRange)
	}
	if col < 0 || col >= len(p.taxa) {
		return false, fmt.Errorf("core: col %d of %d: %w", col, len(p.taxa), ErrOutOfRange)
	}

	return p.mask[row*len(p.taxa)+col], nil
}

// RowTaxa returns the column indices present in the given row, ascending.
// It is the per-sample taxon set the co-occurrence builder iterates.
//
// Complexity: O(taxa).
func (p *PresenceMatrix) RowTaxa(row int) ([]int, error) {
	if row < 0 || row >= len(p.samples) {
		return nil, fmt.Errorf("core: row %d of %d: %w", row, len(p.samples), ErrOutOfRange)
	}

	var out []int
	base := row * len(p.taxa)
	for j := range p.taxa {
		if p.mask[base+j] {
			out = append(out, j)
		}
	}

	return out, nil
}
