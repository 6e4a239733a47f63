// Package zinb evaluates the zero-inflated negative binomial
// log-likelihood for expanded parameter vectors.
//
// The model for one observation with mean μ, dispersion r and dropout
// probability π is
//
//	P(X = 0) = π + (1−π)·NB(0; μ, r)
//	P(X = x) = (1−π)·NB(x; μ, r)        for x > 0
//
// with NB in the mean/size parameterization:
//
//	NB(x; μ, r) = Γ(x+r)/(Γ(r)·x!) · (r/(r+μ))^r · (μ/(r+μ))^x
//
// Everything is computed in log space; the zero-count mixture mass uses a
// max-shifted log-sum-exp so small dropout probabilities do not underflow.
//
// This package only evaluates: parameter estimation (likelihood
// maximization) belongs to the fitting layer.
//
// Complexity: O(n) time, one output allocation for LogLik, none for
// LogLikSum beyond it.
package zinb
