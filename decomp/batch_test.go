package decomp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celltrend/zinb/decomp"
)

// TestBatchScale_IdentityWithoutConfounders verifies the all-ones vector is
// returned for any interval when no confounders are configured.
func TestBatchScale_IdentityWithoutConfounders(t *testing.T) {
	spec := &decomp.ModelSpec{Kind: decomp.KindConstant, NumCells: 5}

	full, err := decomp.BatchScale(nil, spec, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, full, "no confounders must yield identity scaling")

	sub, err := decomp.BatchScale(nil, spec, decomp.Interval{2, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, sub, "identity must match the interval length")
}

// TestBatchScale_Multiplicativity verifies scale(cell) == u[a[cell]] * v[b[cell]]
// for two confounders, and that confounder order does not change the result.
func TestBatchScale_Multiplicativity(t *testing.T) {
	spec := &decomp.ModelSpec{
		Kind:     decomp.KindConstant,
		NumCells: 4,
		BatchAssignments: [][]int{
			{0, 0, 1, 1},
			{0, 1, 0, 1},
		},
	}
	u := []float64{2.0, 4.0}
	v := []float64{1.0, 0.5}

	scale, err := decomp.BatchScale([][]float64{u, v}, spec, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{2.0, 1.0, 4.0, 2.0}, scale, "per-cell factor must be u[a[i]]*v[b[i]]")

	// Reordered confounders commute.
	reordered := &decomp.ModelSpec{
		Kind:     decomp.KindConstant,
		NumCells: 4,
		BatchAssignments: [][]int{
			{0, 1, 0, 1},
			{0, 0, 1, 1},
		},
	}
	swapped, err := decomp.BatchScale([][]float64{v, u}, reordered, nil)
	require.NoError(t, err)
	assert.Equal(t, scale, swapped, "confounder reordering must not change the scale")
}

// TestBatchScale_RestrictionCommutes verifies that an interval slice of the
// full-range scale equals the directly restricted computation.
func TestBatchScale_RestrictionCommutes(t *testing.T) {
	spec := &decomp.ModelSpec{
		Kind:             decomp.KindConstant,
		NumCells:         4,
		BatchAssignments: [][]int{{1, 0, 1, 0}},
	}
	batch := [][]float64{{3.0, 7.0}}

	full, err := decomp.BatchScale(batch, spec, nil)
	require.NoError(t, err)

	iv := decomp.Interval{1, 3}
	sub, err := decomp.BatchScale(batch, spec, iv)
	require.NoError(t, err)
	assert.Equal(t, []float64{full[1], full[3]}, sub, "restriction must commute with expansion")
}

// TestBatchScale_IndexOutOfRange verifies an assignment index that does not
// address a coefficient fails with ErrIndexOutOfRange at the lookup site.
func TestBatchScale_IndexOutOfRange(t *testing.T) {
	spec := &decomp.ModelSpec{
		Kind:             decomp.KindConstant,
		NumCells:         2,
		BatchAssignments: [][]int{{0, 5}},
	}

	_, err := decomp.BatchScale([][]float64{{1.5}}, spec, nil)
	assert.ErrorIs(t, err, decomp.ErrIndexOutOfRange, "index 5 into 1 coefficient must error")
}

// TestBatchScale_ShapeMismatch verifies a coefficient list not matching the
// declared confounders fails with ErrShapeMismatch.
func TestBatchScale_ShapeMismatch(t *testing.T) {
	spec := &decomp.ModelSpec{
		Kind:             decomp.KindConstant,
		NumCells:         2,
		BatchAssignments: [][]int{{0, 0}},
	}

	_, err := decomp.BatchScale([][]float64{{1.0}, {2.0}}, spec, nil)
	assert.ErrorIs(t, err, decomp.ErrShapeMismatch, "two coefficient vectors against one confounder must error")
}

// TestBatchScale_BadInterval verifies interval positions outside
// [0, NumCells) fail with ErrBadInterval.
func TestBatchScale_BadInterval(t *testing.T) {
	spec := &decomp.ModelSpec{Kind: decomp.KindConstant, NumCells: 3}

	_, err := decomp.BatchScale(nil, spec, decomp.Interval{0, 3})
	assert.ErrorIs(t, err, decomp.ErrBadInterval, "position 3 with 3 cells must error")
}
