package impulse

import (
	"errors"
	"fmt"
	"math"
)

// NumParams is the length of an impulse parameter vector:
// (β, h0, h1, h2, t1, t2).
const NumParams = 6

// Positions of the named parameters inside the vector.
const (
	idxBeta = iota
	idxH0
	idxH1
	idxH2
	idxT1
	idxT2
)

var (
	// ErrParamCount indicates a parameter vector whose length is not NumParams.
	ErrParamCount = errors.New("impulse: parameter vector must have length 6")

	// ErrZeroPeak indicates h1 == 0, for which the normalized curve is undefined.
	ErrZeroPeak = errors.New("impulse: peak level h1 must be non-zero")
)

// Eval evaluates the impulse curve at every timepoint, returning one value
// per entry of timepoints in the same order.
func Eval(params, timepoints []float64) ([]float64, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	out := make([]float64, len(timepoints))
	for i, t := range timepoints {
		out[i] = at(params, t)
	}

	return out, nil
}

// EvalAt evaluates the impulse curve at a single timepoint.
func EvalAt(params []float64, t float64) (float64, error) {
	if err := validate(params); err != nil {
		return 0, err
	}

	return at(params, t), nil
}

// validate rejects malformed parameter vectors before any evaluation.
func validate(params []float64) error {
	if len(params) != NumParams {
		return fmt.Errorf("got length %d: %w", len(params), ErrParamCount)
	}
	if params[idxH1] == 0 {
		return ErrZeroPeak
	}

	return nil
}

// at computes the double-sigmoid impulse value; params are pre-validated.
func at(params []float64, t float64) float64 {
	beta := params[idxBeta]
	h0, h1, h2 := params[idxH0], params[idxH1], params[idxH2]
	t1, t2 := params[idxT1], params[idxT2]

	onset := h0 + (h1-h0)*sigmoid(beta*(t-t1))
	offset := h2 + (h1-h2)*sigmoid(-beta*(t-t2))

	return onset * offset / h1
}

// sigmoid is the standard logistic function 1/(1+e^(−x)).
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
