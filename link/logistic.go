package link

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrLengthMismatch indicates coefficient and predictor vectors of
// different lengths.
var ErrLengthMismatch = errors.New("link: coefficient and predictor lengths differ")

// maxEta bounds the linear predictor magnitude. σ(±36) is representable
// strictly inside (0,1) in float64; beyond that the sigmoid saturates to
// exactly 0 or 1 and corrupts log-likelihood terms.
const maxEta = 36.0

// Logistic returns σ(⟨coeffs, predictors⟩), strictly inside (0, 1).
func Logistic(coeffs, predictors []float64) (float64, error) {
	if len(coeffs) != len(predictors) {
		return 0, fmt.Errorf("len(coeffs)=%d, len(predictors)=%d: %w", len(coeffs), len(predictors), ErrLengthMismatch)
	}

	eta := floats.Dot(coeffs, predictors)
	if eta > maxEta {
		eta = maxEta
	} else if eta < -maxEta {
		eta = -maxEta
	}

	return 1 / (1 + math.Exp(-eta)), nil
}
