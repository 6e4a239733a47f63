// Package impulse evaluates the parametric impulse curve used to model
// smooth temporal trends over pseudotime: an onset sigmoid rising from a
// start level h0 to a peak level h1, multiplied by an offset sigmoid
// falling from h1 to a steady-state level h2, normalized by the peak.
//
// The parameter vector is (β, h0, h1, h2, t1, t2):
//
//	f(t) = (1/h1) · (h0 + (h1−h0)·σ(β(t−t1))) · (h2 + (h1−h2)·σ(−β(t−t2)))
//
// where σ is the standard logistic function. For steep β the curve sits at
// h0 well before t1, at h1 between t1 and t2, and at h2 well after t2;
// a monotone trend is the special case h1 between h0 and h2 with t1 ≈ t2.
//
// The curve is defined for all real parameter values except h1 = 0 (the
// peak normalizer), which is rejected with ErrZeroPeak.
//
// Complexity: O(len(timepoints)) time, one output allocation.
package impulse
