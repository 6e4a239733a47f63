// Package zinb is a parameter decompression toolkit for zero-inflated
// negative binomial (ZINB) models of single-cell gene expression — from
// compressed per-gene coefficient vectors to dense per-cell parameter
// surfaces.
//
// 🚀 What is celltrend/zinb?
//
//	A deterministic, pure-Go numeric library that brings together:
//		• Mean & dispersion decompression: constant, impulse, spline,
//		  groups and mixture parameterizations of the per-cell surface
//		• Multiplicative batch correction over any number of confounders
//		• Dropout-rate decompression with logistic and logistic-of-mean links
//		• The impulse curve primitive (double-sigmoid temporal trend)
//		• ZINB log-likelihood evaluation for the expanded parameters
//		• A parallel per-gene fan-out for the embarrassingly parallel outer loop
//
// ✨ Why choose celltrend/zinb?
//
//   - Deterministic – every expansion is a pure function of its inputs
//   - Fail-fast – unknown model kinds and out-of-range indices error
//     immediately instead of corrupting the likelihood with NaNs
//   - Interval-safe – restricting a computation to a minibatch of cells
//     always equals slicing the full-range result
//   - Pure Go – dense numeric computation only, no cgo, no I/O
//
// Under the hood, everything is organized under four subpackages:
//
//	decomp/  — mean, dispersion, batch-scale and dropout expansion kernels
//	impulse/ — parametric impulse curve over pseudotime
//	link/    — logistic link evaluation for dropout models
//	zinb/    — ZINB log-likelihood evaluation
//
// Quick sketch of the control flow for one gene:
//
//	coeffs ──ExpandMean──▶ μ per cell ─┐
//	coeffs ──ExpandDispersion──▶ φ     ├──▶ zinb.LogLik
//	coeffs ──ExpandDropoutByGene(μ)──▶ π ┘
//
// Dive into decomp/doc.go for the model-kind vocabulary and the batch
// correction semantics.
//
//	go get github.com/celltrend/zinb/decomp
package zinb
