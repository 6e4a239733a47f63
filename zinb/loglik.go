package zinb

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrLengthMismatch indicates counts/mu/disp/dropout vectors of
	// differing lengths.
	ErrLengthMismatch = errors.New("zinb: parameter vector lengths differ")

	// ErrNonPositiveParam indicates a mean or dispersion entry ≤ 0.
	ErrNonPositiveParam = errors.New("zinb: mean and dispersion must be strictly positive")

	// ErrBadDropout indicates a dropout probability outside [0, 1).
	ErrBadDropout = errors.New("zinb: dropout probability outside [0,1)")

	// ErrNegativeCount indicates a negative count entry.
	ErrNegativeCount = errors.New("zinb: negative count")
)

// LogLik returns the per-observation ZINB log-likelihood for parallel
// vectors of counts, means, dispersions and dropout probabilities.
//
// Counts may be non-integer (normalized or size-factor-corrected values);
// the factorial term uses Γ(x+1). Dropout probabilities must lie in
// [0, 1) — exactly 1 would put zero mass on positive counts.
func LogLik(counts, mu, disp, dropout []float64) ([]float64, error) {
	n := len(counts)
	if len(mu) != n || len(disp) != n || len(dropout) != n {
		return nil, fmt.Errorf("counts=%d, mu=%d, disp=%d, dropout=%d: %w",
			n, len(mu), len(disp), len(dropout), ErrLengthMismatch)
	}

	out := make([]float64, n)
	for i := range out {
		ll, err := logLikOne(counts[i], mu[i], disp[i], dropout[i])
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = ll
	}

	return out, nil
}

// LogLikSum returns the summed ZINB log-likelihood over all observations.
func LogLikSum(counts, mu, disp, dropout []float64) (float64, error) {
	ll, err := LogLik(counts, mu, disp, dropout)
	if err != nil {
		return 0, err
	}

	return floats.Sum(ll), nil
}

// logLikOne evaluates one observation in log space.
func logLikOne(x, mu, r, pi float64) (float64, error) {
	switch {
	case x < 0:
		return 0, fmt.Errorf("count %v: %w", x, ErrNegativeCount)
	case mu <= 0 || r <= 0:
		return 0, fmt.Errorf("mean %v, dispersion %v: %w", mu, r, ErrNonPositiveParam)
	case pi < 0 || pi >= 1:
		return 0, fmt.Errorf("dropout %v: %w", pi, ErrBadDropout)
	}

	logRatio := math.Log(r) - math.Log(r+mu)
	if x == 0 {
		logNB0 := r * logRatio
		if pi == 0 {
			return logNB0, nil
		}

		return logSumExp(math.Log(pi), math.Log1p(-pi)+logNB0), nil
	}

	logNB := lgamma(x+r) - lgamma(r) - lgamma(x+1) +
		r*logRatio + x*(math.Log(mu)-math.Log(r+mu))

	return math.Log1p(-pi) + logNB, nil
}

// logSumExp computes log(e^a + e^b) with a max shift against underflow.
func logSumExp(a, b float64) float64 {
	m := math.Max(a, b)

	return m + math.Log(math.Exp(a-m)+math.Exp(b-m))
}

// lgamma wraps math.Lgamma, discarding the sign (all arguments here are
// strictly positive, where Γ > 0).
func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)

	return v
}
