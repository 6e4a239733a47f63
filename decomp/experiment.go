// Package decomp: per-gene composition and the parallel outer loop.
// One gene's expansion is mean → dispersion → dropout(mean); genes are
// independent of one another, so the fan-out needs no coordination beyond
// read-only sharing of the specs and batch models.

package decomp

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Experiment bundles the static design of a fitting run: one ModelSpec per
// parameter family, the batch-correction coefficient vectors, and the
// constant dropout predictors shared by all genes. It is never mutated by
// this package and is safe to share across concurrent gene expansions.
type Experiment struct {
	Mean       *ModelSpec
	Dispersion *ModelSpec
	// Dropout may be nil, in which case gene expansion skips the dropout
	// step and returns a nil dropout vector.
	Dropout *DropoutSpec

	MeanBatch       [][]float64
	DispersionBatch [][]float64

	// ConstPredictors are the per-gene-constant dropout predictors
	// (by-gene orientation). May be nil.
	ConstPredictors []float64
}

// GeneCoefficients holds one gene's compressed coefficient vectors, owned
// by the fitting layer and read-only here.
type GeneCoefficients struct {
	Mean       []float64
	Dispersion []float64
	// Dropout has one coefficient row per cell; required when the
	// experiment carries a DropoutSpec.
	Dropout mat.Matrix
}

// GeneParams is one gene's fully expanded parameter set, ready for the
// ZINB log-likelihood.
type GeneParams struct {
	Mu         []float64
	Dispersion []float64
	Dropout    []float64
}

// ExpandGene runs the full per-gene pipeline: expand the mean, expand the
// dispersion, then feed the expanded mean into the dropout expansion.
func (e *Experiment) ExpandGene(g GeneCoefficients) (*GeneParams, error) {
	mu, err := ExpandMean(g.Mean, e.Mean, e.MeanBatch, nil)
	if err != nil {
		return nil, err
	}
	disp, err := ExpandDispersion(g.Dispersion, e.Dispersion, e.DispersionBatch, nil)
	if err != nil {
		return nil, err
	}

	params := &GeneParams{Mu: mu, Dispersion: disp}
	if e.Dropout != nil {
		params.Dropout, err = ExpandDropoutByGene(g.Dropout, mu, e.ConstPredictors, e.Dropout)
		if err != nil {
			return nil, err
		}
	}

	return params, nil
}

// ExpandGenes expands every gene concurrently with at most workers
// goroutines (GOMAXPROCS when workers <= 0). Results keep the input order.
// The first failing gene cancels the remaining ones and its error (wrapped
// with the gene index) is returned; per-gene skip-vs-abort policy beyond
// that belongs to the caller.
func (e *Experiment) ExpandGenes(ctx context.Context, genes []GeneCoefficients, workers int) ([]GeneParams, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	out := make([]GeneParams, len(genes))
	for i, gene := range genes {
		i, gene := i, gene
		grp.Go(func() error {
			// Cancellation is checked between genes only; a single
			// expansion is non-blocking dense arithmetic.
			if err := ctx.Err(); err != nil {
				return err
			}
			params, err := e.ExpandGene(gene)
			if err != nil {
				return fmt.Errorf("gene %d: %w", i, err)
			}
			out[i] = *params

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
