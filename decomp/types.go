// Package decomp: model-kind vocabulary and model specifications.

package decomp

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ModelKind selects how a compressed coefficient vector unfolds across
// cells. The set is closed; switch statements over ModelKind dispatch
// exhaustively and treat any other value as a configuration error.
type ModelKind uint8

const (
	// KindConstant broadcasts a single scalar coefficient to every cell.
	KindConstant ModelKind = iota

	// KindImpulse evaluates the impulse curve at each cell's pseudotime,
	// using the coefficients as the curve's parameter vector.
	KindImpulse

	// KindSpline multiplies in-scope rows of the basis matrix by the
	// coefficients and exponentiates elementwise, guaranteeing positivity.
	KindSpline

	// KindGroups selects, for each cell, the coefficient addressed by the
	// cell's group assignment.
	KindGroups

	// KindMixture holds the value of one latent mixture component. The
	// vector form broadcasts it like KindConstant; the matrix form
	// produces one column per component (see ExpandMeanMixtureMatrix).
	KindMixture
)

// String returns the canonical lowercase name of the kind, or a numeric
// placeholder for out-of-enum values.
func (k ModelKind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindImpulse:
		return "impulse"
	case KindSpline:
		return "spline"
	case KindGroups:
		return "groups"
	case KindMixture:
		return "mixture"
	default:
		return fmt.Sprintf("ModelKind(%d)", uint8(k))
	}
}

// DropoutLink selects the link function used by dropout-rate expansion.
type DropoutLink uint8

const (
	// LinkLogistic assembles the predictor vector as [1, constPredictors...]
	// and applies the logistic link.
	LinkLogistic DropoutLink = iota

	// LinkLogisticOfMu assembles [1, log(mean), constPredictors...]; the
	// mean must be supplied and strictly positive.
	LinkLogisticOfMu
)

// String returns the canonical name of the link.
func (l DropoutLink) String() string {
	switch l {
	case LinkLogistic:
		return "logistic"
	case LinkLogisticOfMu:
		return "logistic_of_mean"
	default:
		return fmt.Sprintf("DropoutLink(%d)", uint8(l))
	}
}

// ModelSpec describes, for one parameter family (mean or dispersion), how
// compressed coefficients expand across cells. It is constructed once per
// fitting run from the static experiment design and never mutated by this
// package; sharing one ModelSpec across concurrent per-gene calls is safe.
//
// Per-kind payload:
//   - KindImpulse: Pseudotime, length NumCells.
//   - KindSpline:  Basis, NumCells rows, one column per basis function,
//     shared across all genes of the family.
//   - KindGroups:  Groups, length NumCells, values in [0, len(coeffs)).
//   - KindMixture: NumMixtureComponents > 0.
//
// BatchAssignments carries one entry per confounder; each entry maps every
// cell to an index into that confounder's correction-coefficient vector.
// Nil/empty means no batch correction.
type ModelSpec struct {
	Kind     ModelKind
	NumCells int
	NumGenes int

	Pseudotime           []float64
	Basis                mat.Matrix
	Groups               []int
	NumMixtureComponents int

	BatchAssignments [][]int
}

// NumConfounders reports how many batch-correction confounders the spec
// declares.
func (s *ModelSpec) NumConfounders() int { return len(s.BatchAssignments) }

// DropoutSpec describes how dropout-rate coefficients expand, for the
// by-gene orientation (one value per cell) and the by-cell orientation
// (one value per gene).
type DropoutSpec struct {
	Link     DropoutLink
	NumCells int
	NumGenes int
}

// Interval is an ordered subset of cell positions restricting an expansion
// to a minibatch. A nil Interval means the full range [0, NumCells).
// Positions must lie in [0, NumCells); duplicates and arbitrary order are
// permitted (the output follows the interval's order).
type Interval []int

// cells resolves the interval against n cells: nil yields the identity
// sequence 0..n-1, otherwise the interval itself after bounds validation.
func (iv Interval) cells(n int) ([]int, error) {
	if iv == nil {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}

		return all, nil
	}
	for _, pos := range iv {
		if pos < 0 || pos >= n {
			return nil, fmt.Errorf("position %d with %d cells: %w", pos, n, ErrBadInterval)
		}
	}

	return iv, nil
}
