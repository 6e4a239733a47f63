// Package link evaluates the logistic link used by dropout-rate models:
// the probability σ(⟨coeffs, predictors⟩) for a coefficient vector and an
// assembled predictor vector.
//
// The linear predictor is clamped to ±36 before the sigmoid so the result
// is strictly inside (0, 1) for any finite inputs — σ(36) is still below
// the largest float64 under 1, and σ(−36) is above 0. Downstream likelihood
// code may therefore take log(π) and log(1−π) without guarding.
//
// Complexity: O(len(coeffs)) time, no allocation.
package link
