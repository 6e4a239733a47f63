// Package decomp: dropout-rate expansion.
// Two orientations share the predictor-assembly and link logic: by-gene
// (one gene, coefficients vary per cell) and by-cell (one cell,
// coefficients fixed, constant predictors vary per gene).

package decomp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/celltrend/zinb/link"
)

// ExpandDropoutByGene expands one gene's dropout model into a per-cell
// dropout probability vector of length NumCells.
//
// coeffsPerCell has one row per cell; row j holds cell j's coefficient
// vector. constPredictors (may be nil) holds predictors shared by every
// cell of this gene. The per-cell predictor vector is assembled as
//
//	LinkLogistic:     [1, constPredictors...]
//	LinkLogisticOfMu: [1, log(mu[cell]), constPredictors...]
//
// and the coefficient row width must match it exactly. LinkLogisticOfMu
// requires mu (the already-expanded mean, length NumCells) with strictly
// positive entries; a zero or negative entry fails the whole call with
// ErrNonPositiveMean rather than silently producing NaN.
func ExpandDropoutByGene(coeffsPerCell mat.Matrix, mu, constPredictors []float64, spec *DropoutSpec) ([]float64, error) {
	const op = "ExpandDropoutByGene"
	if err := validateDropoutSpec(spec); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if spec.NumCells <= 0 {
		return nil, fmt.Errorf("%s: NumCells=%d: %w", op, spec.NumCells, ErrShapeMismatch)
	}
	rows, k := coeffsPerCell.Dims()
	if rows != spec.NumCells {
		return nil, fmt.Errorf("%s: coefficient rows=%d, NumCells=%d: %w", op, rows, spec.NumCells, ErrShapeMismatch)
	}
	if spec.Link == LinkLogisticOfMu {
		if mu == nil {
			return nil, fmt.Errorf("%s: %w", op, ErrMissingMean)
		}
		if len(mu) != spec.NumCells {
			return nil, fmt.Errorf("%s: len(mu)=%d, NumCells=%d: %w", op, len(mu), spec.NumCells, ErrShapeMismatch)
		}
	}

	width := predictorWidth(spec.Link, len(constPredictors))
	if k != width {
		return nil, fmt.Errorf("%s: coefficient columns=%d, predictor width=%d for link %s: %w", op, k, width, spec.Link, ErrShapeMismatch)
	}

	out := make([]float64, spec.NumCells)
	pred := make([]float64, width)
	coeffs := make([]float64, width)
	for j := range out {
		if err := assemblePredictors(pred, spec.Link, mu, j, constPredictors); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		mat.Row(coeffs, j, coeffsPerCell)
		pi, err := link.Logistic(coeffs, pred)
		if err != nil {
			return nil, fmt.Errorf("%s: cell %d: %w", op, j, err)
		}
		out[j] = pi
	}

	return out, nil
}

// ExpandDropoutByCell expands one cell's dropout model into a per-gene
// dropout probability vector of length NumGenes.
//
// coeffs is the cell's fixed coefficient vector. constPredictors (may be
// nil) has one row per gene; row i holds gene i's constant predictors.
// mu, required by LinkLogisticOfMu, holds this cell's already-expanded
// mean for every gene and must be strictly positive.
func ExpandDropoutByCell(coeffs, mu []float64, constPredictors mat.Matrix, spec *DropoutSpec) ([]float64, error) {
	const op = "ExpandDropoutByCell"
	if err := validateDropoutSpec(spec); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if spec.NumGenes <= 0 {
		return nil, fmt.Errorf("%s: NumGenes=%d: %w", op, spec.NumGenes, ErrShapeMismatch)
	}
	p := 0
	if constPredictors != nil {
		var rows int
		rows, p = constPredictors.Dims()
		if rows != spec.NumGenes {
			return nil, fmt.Errorf("%s: predictor rows=%d, NumGenes=%d: %w", op, rows, spec.NumGenes, ErrShapeMismatch)
		}
	}
	if spec.Link == LinkLogisticOfMu {
		if mu == nil {
			return nil, fmt.Errorf("%s: %w", op, ErrMissingMean)
		}
		if len(mu) != spec.NumGenes {
			return nil, fmt.Errorf("%s: len(mu)=%d, NumGenes=%d: %w", op, len(mu), spec.NumGenes, ErrShapeMismatch)
		}
	}

	width := predictorWidth(spec.Link, p)
	if len(coeffs) != width {
		return nil, fmt.Errorf("%s: len(coeffs)=%d, predictor width=%d for link %s: %w", op, len(coeffs), width, spec.Link, ErrShapeMismatch)
	}

	out := make([]float64, spec.NumGenes)
	pred := make([]float64, width)
	constRow := make([]float64, p)
	for i := range out {
		if constPredictors != nil {
			mat.Row(constRow, i, constPredictors)
		}
		if err := assemblePredictors(pred, spec.Link, mu, i, constRow); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		pi, err := link.Logistic(coeffs, pred)
		if err != nil {
			return nil, fmt.Errorf("%s: gene %d: %w", op, i, err)
		}
		out[i] = pi
	}

	return out, nil
}

// predictorWidth is the assembled predictor length: fixed intercept, the
// log-mean slot under LinkLogisticOfMu, then the constant predictors.
func predictorWidth(l DropoutLink, numConst int) int {
	width := 1 + numConst
	if l == LinkLogisticOfMu {
		width++
	}

	return width
}

// assemblePredictors fills pred for entry (cell or gene, whichever the
// orientation iterates over). pred has length predictorWidth.
func assemblePredictors(pred []float64, l DropoutLink, mu []float64, entry int, constPredictors []float64) error {
	pred[0] = 1
	next := 1
	if l == LinkLogisticOfMu {
		m := mu[entry]
		if m <= 0 {
			return fmt.Errorf("entry %d: mean %v: %w", entry, m, ErrNonPositiveMean)
		}
		pred[next] = math.Log(m)
		next++
	}
	copy(pred[next:], constPredictors)

	return nil
}
