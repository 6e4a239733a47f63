// Package decomp: mean and dispersion expansion kernels.
// ExpandMean and ExpandDispersion share one generic kernel; the two
// exported names exist because the fitting layer treats the families
// separately and because the mixture-matrix forms diverge (dispersion
// supports a constant-within-mixture variant the mean does not).

package decomp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/celltrend/zinb/impulse"
)

// ExpandMean expands one gene's compressed mean coefficients into a
// per-cell mean vector of length len(interval) (NumCells when interval is
// nil). The raw per-kind value is computed first, then multiplied
// elementwise by the batch scale (see BatchScale).
//
// Coefficient width by kind: 1 for KindConstant and KindMixture (the
// vector form carries exactly one component's mean), impulse.NumParams for
// KindImpulse, one per basis column for KindSpline, one per group for
// KindGroups.
//
// Errors: ErrNilSpec, ErrUnknownKind, ErrMissingPayload, ErrShapeMismatch,
// ErrBadInterval, ErrIndexOutOfRange — always wrapped with the offending
// field and value, matched via errors.Is.
func ExpandMean(coeffs []float64, spec *ModelSpec, batch [][]float64, interval Interval) ([]float64, error) {
	out, err := expandParameter(coeffs, spec, batch, interval)
	if err != nil {
		return nil, fmt.Errorf("ExpandMean: %w", err)
	}

	return out, nil
}

// ExpandDispersion expands one gene's compressed dispersion coefficients
// into a per-cell dispersion vector. Kind vocabulary, shapes and errors
// are identical to ExpandMean.
func ExpandDispersion(coeffs []float64, spec *ModelSpec, batch [][]float64, interval Interval) ([]float64, error) {
	out, err := expandParameter(coeffs, spec, batch, interval)
	if err != nil {
		return nil, fmt.Errorf("ExpandDispersion: %w", err)
	}

	return out, nil
}

// expandParameter is the shared kernel: raw per-kind expansion followed by
// multiplicative batch scaling.
func expandParameter(coeffs []float64, spec *ModelSpec, batch [][]float64, interval Interval) ([]float64, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	if err := validateBatch(batch, spec); err != nil {
		return nil, err
	}
	cells, err := interval.cells(spec.NumCells)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(cells))
	switch spec.Kind {
	case KindConstant, KindMixture:
		// KindMixture's vector form holds exactly one component's value
		// and broadcasts it just like a constant.
		if len(coeffs) != 1 {
			return nil, fmt.Errorf("kind %s expects 1 coefficient, got %d: %w", spec.Kind, len(coeffs), ErrShapeMismatch)
		}
		for j := range out {
			out[j] = coeffs[0]
		}

	case KindImpulse:
		times := make([]float64, len(cells))
		for j, cell := range cells {
			times[j] = spec.Pseudotime[cell]
		}
		out, err = impulse.Eval(coeffs, times)
		if err != nil {
			return nil, fmt.Errorf("kind %s: %w", spec.Kind, err)
		}

	case KindSpline:
		_, p := spec.Basis.Dims()
		if len(coeffs) != p {
			return nil, fmt.Errorf("kind %s expects %d coefficients (basis columns), got %d: %w", spec.Kind, p, len(coeffs), ErrShapeMismatch)
		}
		row := make([]float64, p)
		for j, cell := range cells {
			mat.Row(row, cell, spec.Basis)
			out[j] = math.Exp(floats.Dot(row, coeffs))
		}

	case KindGroups:
		for j, cell := range cells {
			g := spec.Groups[cell]
			if g < 0 || g >= len(coeffs) {
				return nil, fmt.Errorf("kind %s: cell %d, group %d into %d coefficients: %w", spec.Kind, cell, g, len(coeffs), ErrIndexOutOfRange)
			}
			out[j] = coeffs[g]
		}

	default:
		// validateSpec already rejects out-of-enum kinds; kept for
		// exhaustiveness if the enum grows.
		return nil, fmt.Errorf("field Kind has unrecognized value %d: %w", uint8(spec.Kind), ErrUnknownKind)
	}

	scale, err := scaleCells(batch, spec, cells)
	if err != nil {
		return nil, err
	}
	floats.Mul(out, scale)

	return out, nil
}

// ExpandMeanMixtureMatrix expands per-component mean coefficients into a
// cells-in-scope × NumMixtureComponents matrix: the batch scale (a
// per-cell scalar, identical across components) outer-producted with the
// per-component mean vector. coeffs must hold exactly one mean per
// component and spec.Kind must be KindMixture.
func ExpandMeanMixtureMatrix(coeffs []float64, spec *ModelSpec, batch [][]float64, interval Interval) (*mat.Dense, error) {
	m, err := expandMixtureMatrix(coeffs, spec, batch, KindMixture, interval)
	if err != nil {
		return nil, fmt.Errorf("ExpandMeanMixtureMatrix: %w", err)
	}

	return m, nil
}

// ExpandDispersionMixtureMatrix expands dispersion coefficients into a
// cells-in-scope × NumMixtureComponents matrix. outerKind names the
// dispersion family requested by the fitting layer:
//
//   - KindConstant — one scalar coefficient, batch-scaled per cell and
//     tiled identically across all component columns;
//   - KindMixture — one coefficient per component, outer product with the
//     per-cell batch scale exactly as in ExpandMeanMixtureMatrix.
//
// Any other outerKind is a configuration error.
func ExpandDispersionMixtureMatrix(coeffs []float64, spec *ModelSpec, batch [][]float64, outerKind ModelKind, interval Interval) (*mat.Dense, error) {
	m, err := expandMixtureMatrix(coeffs, spec, batch, outerKind, interval)
	if err != nil {
		return nil, fmt.Errorf("ExpandDispersionMixtureMatrix: %w", err)
	}

	return m, nil
}

// expandMixtureMatrix builds the per-cell-per-component matrix for the
// vector of raw component values implied by outerKind. The batch scale is
// computed once per cell and never varies across components.
func expandMixtureMatrix(coeffs []float64, spec *ModelSpec, batch [][]float64, outerKind ModelKind, interval Interval) (*mat.Dense, error) {
	if err := validateSpec(spec); err != nil {
		return nil, err
	}
	if spec.NumMixtureComponents <= 0 {
		return nil, fmt.Errorf("NumMixtureComponents=%d: %w", spec.NumMixtureComponents, ErrMissingPayload)
	}
	if err := validateBatch(batch, spec); err != nil {
		return nil, err
	}
	cells, err := interval.cells(spec.NumCells)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("empty interval: %w", ErrBadInterval)
	}

	nComp := spec.NumMixtureComponents
	perComp := make([]float64, nComp)
	switch outerKind {
	case KindConstant:
		if len(coeffs) != 1 {
			return nil, fmt.Errorf("kind %s expects 1 coefficient, got %d: %w", outerKind, len(coeffs), ErrShapeMismatch)
		}
		for k := range perComp {
			perComp[k] = coeffs[0]
		}
	case KindMixture:
		if len(coeffs) != nComp {
			return nil, fmt.Errorf("kind %s expects %d coefficients (one per component), got %d: %w", outerKind, nComp, len(coeffs), ErrShapeMismatch)
		}
		copy(perComp, coeffs)
	default:
		return nil, fmt.Errorf("field outerKind has unrecognized value %s: %w", outerKind, ErrUnknownKind)
	}

	scale, err := scaleCells(batch, spec, cells)
	if err != nil {
		return nil, err
	}

	var m mat.Dense
	m.Outer(1, mat.NewVecDense(len(scale), scale), mat.NewVecDense(nComp, perComp))

	return &m, nil
}
