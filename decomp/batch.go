// Package decomp: multiplicative batch correction.

package decomp

import "fmt"

// BatchScale folds the per-confounder correction coefficients into a single
// multiplicative factor per in-scope cell.
//
// For each confounder c, a cell's factor is batch[c][assignment[c][cell]];
// factors are folded in declared confounder order (multiplication is
// commutative, but the fixed order keeps floating-point rounding
// reproducible). With no confounders configured the result is all ones.
//
// Returns a vector of length len(interval), or NumCells when interval is
// nil.
//
// Errors:
//   - ErrNilSpec, ErrShapeMismatch — malformed spec or batch list.
//   - ErrBadInterval — interval position outside [0, NumCells).
//   - ErrIndexOutOfRange — an assignment index not addressing a coefficient.
func BatchScale(batch [][]float64, spec *ModelSpec, interval Interval) ([]float64, error) {
	if err := validateSpec(spec); err != nil {
		return nil, fmt.Errorf("BatchScale: %w", err)
	}
	if err := validateBatch(batch, spec); err != nil {
		return nil, fmt.Errorf("BatchScale: %w", err)
	}
	cells, err := interval.cells(spec.NumCells)
	if err != nil {
		return nil, fmt.Errorf("BatchScale: %w", err)
	}

	scale, err := scaleCells(batch, spec, cells)
	if err != nil {
		return nil, fmt.Errorf("BatchScale: %w", err)
	}

	return scale, nil
}

// scaleCells is the validated kernel behind BatchScale: spec and batch are
// assumed consistent and cells already resolved/bounds-checked.
func scaleCells(batch [][]float64, spec *ModelSpec, cells []int) ([]float64, error) {
	scale := make([]float64, len(cells))
	for j := range scale {
		scale[j] = 1
	}
	for c, coeffs := range batch {
		asg := spec.BatchAssignments[c]
		for j, cell := range cells {
			idx := asg[cell]
			if idx < 0 || idx >= len(coeffs) {
				return nil, fmt.Errorf("confounder %d, cell %d, index %d into %d coefficients: %w",
					c, cell, idx, len(coeffs), ErrIndexOutOfRange)
			}
			scale[j] *= coeffs[idx]
		}
	}

	return scale, nil
}
