// Package decomp expands compressed ZINB model coefficients into dense
// per-cell (or per-cell-per-mixture-component) parameter vectors.
//
// 🚀 What is decomp?
//
//	A gene's mean and dispersion surface is stored as a handful of model
//	coefficients plus a ModelSpec describing how they unfold across cells.
//	decomp performs that unfolding:
//	  • KindConstant — one scalar broadcast to every cell
//	  • KindImpulse  — double-sigmoid temporal trend over pseudotime
//	  • KindSpline   — basis-matrix expansion, exponentiated for positivity
//	  • KindGroups   — discrete per-cell group lookup
//	  • KindMixture  — latent-component level, broadcast or outer-product
//	plus multiplicative batch correction over any number of confounders,
//	and dropout-rate expansion through a logistic link (optionally of the
//	log mean).
//
// ✨ Key guarantees:
//
//   - Restriction commutes with expansion: for any interval I,
//     ExpandMean(…, I) equals ExpandMean(…, nil) sliced at I.
//   - Fail-fast: unknown kinds, out-of-range group/batch indices and
//     non-positive means under LinkLogisticOfMu return sentinel errors
//     (matched via errors.Is) instead of propagating NaN into the
//     likelihood.
//   - Purity: no expander mutates its inputs or any process-wide state;
//     per-gene calls are safe to run concurrently over a shared ModelSpec.
//
// ⚙️ Usage:
//
//	spec := &decomp.ModelSpec{
//	  Kind:     decomp.KindGroups,
//	  NumCells: 4,
//	  Groups:   []int{0, 1, 1, 0},
//	}
//	mu, err := decomp.ExpandMean([]float64{5, 9}, spec, nil, nil)
//	// mu == [5 9 9 5]
//
// Complexity: every expansion is O(cells·k) time, O(cells) extra memory,
// where k is the per-cell coefficient width (1 except spline/dropout).
package decomp
