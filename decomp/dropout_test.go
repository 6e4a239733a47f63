package decomp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/celltrend/zinb/decomp"
)

// TestExpandDropoutByGene_LogisticBounds verifies every produced probability
// lies strictly inside (0,1), including under extreme coefficients.
func TestExpandDropoutByGene_LogisticBounds(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.LinkLogistic, NumCells: 3}
	// One intercept coefficient per cell, including saturating magnitudes.
	coeffs := mat.NewDense(3, 1, []float64{-500.0, 0.0, 500.0})

	pi, err := decomp.ExpandDropoutByGene(coeffs, nil, nil, spec)
	require.NoError(t, err)
	for j, p := range pi {
		assert.Greater(t, p, 0.0, "dropout at cell %d must exceed 0", j)
		assert.Less(t, p, 1.0, "dropout at cell %d must stay below 1", j)
	}
	assert.InDelta(t, 0.5, pi[1], 1e-12, "zero predictor must give probability one half")
}

// TestExpandDropoutByGene_ConstPredictors verifies the predictor vector is
// assembled as [1, constPredictors...] under the plain logistic link.
func TestExpandDropoutByGene_ConstPredictors(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.LinkLogistic, NumCells: 2}
	// Row j = [intercept, slope] for cell j.
	coeffs := mat.NewDense(2, 2, []float64{
		1.0, -1.0,
		-2.0, 0.5,
	})
	constPred := []float64{1.0}

	pi, err := decomp.ExpandDropoutByGene(coeffs, nil, constPred, spec)
	require.NoError(t, err)
	// η = intercept + slope·1.
	assert.InDelta(t, sigmoid(0.0), pi[0], 1e-12)
	assert.InDelta(t, sigmoid(-1.5), pi[1], 1e-12)
}

// TestExpandDropoutByGene_LogisticOfMu verifies the log-mean slot in the
// predictor vector and the strict positivity domain check.
func TestExpandDropoutByGene_LogisticOfMu(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.LinkLogisticOfMu, NumCells: 2}
	coeffs := mat.NewDense(2, 2, []float64{
		0.0, 1.0,
		0.0, 1.0,
	})

	pi, err := decomp.ExpandDropoutByGene(coeffs, []float64{1.0, 10.0}, nil, spec)
	require.NoError(t, err)
	assert.InDelta(t, sigmoid(0.0), pi[0], 1e-12, "log(1)=0 must give one half")
	assert.Less(t, pi[0], pi[1], "a larger mean with positive slope must raise the dropout rate")
}

// TestExpandDropoutByGene_NonPositiveMean verifies a zero or negative mean
// under LinkLogisticOfMu fails with ErrNonPositiveMean instead of NaN.
func TestExpandDropoutByGene_NonPositiveMean(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.LinkLogisticOfMu, NumCells: 2}
	coeffs := mat.NewDense(2, 2, []float64{0, 1, 0, 1})

	_, err := decomp.ExpandDropoutByGene(coeffs, []float64{1.0, 0.0}, nil, spec)
	assert.ErrorIs(t, err, decomp.ErrNonPositiveMean, "zero mean must be a domain error")

	_, err = decomp.ExpandDropoutByGene(coeffs, []float64{-0.5, 1.0}, nil, spec)
	assert.ErrorIs(t, err, decomp.ErrNonPositiveMean, "negative mean must be a domain error")
}

// TestExpandDropoutByGene_MissingMean verifies LinkLogisticOfMu without a
// mean vector fails with ErrMissingMean.
func TestExpandDropoutByGene_MissingMean(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.LinkLogisticOfMu, NumCells: 1}
	coeffs := mat.NewDense(1, 2, []float64{0, 1})

	_, err := decomp.ExpandDropoutByGene(coeffs, nil, nil, spec)
	assert.ErrorIs(t, err, decomp.ErrMissingMean, "logistic-of-mean requires the expanded mean")
}

// TestExpandDropoutByGene_CoefficientWidth verifies a coefficient matrix
// whose column count disagrees with the assembled predictor width fails.
func TestExpandDropoutByGene_CoefficientWidth(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.LinkLogistic, NumCells: 2}
	// Width must be 1 (intercept only): 2 columns is a mismatch.
	coeffs := mat.NewDense(2, 2, []float64{0, 1, 0, 1})

	_, err := decomp.ExpandDropoutByGene(coeffs, nil, nil, spec)
	assert.ErrorIs(t, err, decomp.ErrShapeMismatch, "coefficient width must match predictor width")
}

// TestExpandDropoutByGene_UnknownLink verifies an out-of-enum link is a
// fatal configuration error naming the value.
func TestExpandDropoutByGene_UnknownLink(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.DropoutLink(9), NumCells: 1}
	coeffs := mat.NewDense(1, 1, []float64{0})

	_, err := decomp.ExpandDropoutByGene(coeffs, nil, nil, spec)
	assert.ErrorIs(t, err, decomp.ErrUnknownLink, "link 9 must be rejected")
	assert.Contains(t, err.Error(), "9", "the error must name the offending value")
}

// TestExpandDropoutByCell_Orientation verifies the by-cell orientation:
// fixed coefficients, per-gene constant predictors.
func TestExpandDropoutByCell_Orientation(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.LinkLogistic, NumGenes: 3}
	coeffs := []float64{0.5, -1.0}
	constPred := mat.NewDense(3, 1, []float64{0.0, 1.0, 2.0})

	pi, err := decomp.ExpandDropoutByCell(coeffs, nil, constPred, spec)
	require.NoError(t, err)
	require.Len(t, pi, 3)
	for i, x := range []float64{0.0, 1.0, 2.0} {
		assert.InDelta(t, sigmoid(0.5-1.0*x), pi[i], 1e-12, "gene %d predictor row must drive the link", i)
	}
}

// TestExpandDropoutByCell_LogisticOfMu verifies the by-cell orientation
// consumes a per-gene mean vector under LinkLogisticOfMu.
func TestExpandDropoutByCell_LogisticOfMu(t *testing.T) {
	spec := &decomp.DropoutSpec{Link: decomp.LinkLogisticOfMu, NumGenes: 2}
	coeffs := []float64{0.0, 1.0}

	pi, err := decomp.ExpandDropoutByCell(coeffs, []float64{1.0, math.Exp(2)}, nil, spec)
	require.NoError(t, err)
	assert.InDelta(t, sigmoid(0.0), pi[0], 1e-12)
	assert.InDelta(t, sigmoid(2.0), pi[1], 1e-12)

	_, err = decomp.ExpandDropoutByCell(coeffs, []float64{1.0, 0.0}, nil, spec)
	assert.ErrorIs(t, err, decomp.ErrNonPositiveMean, "zero per-gene mean must be a domain error")
}

// sigmoid mirrors the link definition for expected values in tests.
func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }
