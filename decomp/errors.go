// Package decomp: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// decomp package. Expanders return these sentinels (wrapped with call-site
// context via %w) and tests check them via errors.Is. No expander panics on
// caller-triggered conditions.

package decomp

import "errors"

var (
	// ErrNilSpec indicates a nil *ModelSpec or *DropoutSpec argument.
	ErrNilSpec = errors.New("decomp: nil model spec")

	// ErrUnknownKind is the configuration error for a ModelKind value
	// outside the closed enum. Wrappers name the offending value.
	ErrUnknownKind = errors.New("decomp: unknown model kind")

	// ErrUnknownLink is the configuration error for a DropoutLink value
	// outside the closed enum.
	ErrUnknownLink = errors.New("decomp: unknown dropout link")

	// ErrShapeMismatch indicates an array or matrix whose length/dimensions
	// disagree with the ModelSpec (coefficient width, basis rows, batch
	// list length, predictor columns, …).
	ErrShapeMismatch = errors.New("decomp: shape mismatch")

	// ErrIndexOutOfRange indicates a group or batch assignment index that
	// does not address a valid coefficient entry. Surfaced at the point of
	// lookup, never deferred.
	ErrIndexOutOfRange = errors.New("decomp: assignment index out of range")

	// ErrBadInterval indicates an interval containing a position outside
	// [0, NumCells).
	ErrBadInterval = errors.New("decomp: interval position out of range")

	// ErrMissingPayload indicates a ModelSpec whose per-kind payload is
	// absent (no basis for KindSpline, no groups for KindGroups, …).
	ErrMissingPayload = errors.New("decomp: model payload missing")

	// ErrNonPositiveMean is the domain error for LinkLogisticOfMu applied
	// to a zero or negative mean: log of such a mean is undefined and the
	// whole call fails rather than emitting NaN.
	ErrNonPositiveMean = errors.New("decomp: non-positive mean under logistic-of-mean link")

	// ErrMissingMean indicates LinkLogisticOfMu invoked without the
	// already-expanded mean vector it requires.
	ErrMissingMean = errors.New("decomp: logistic-of-mean link requires a mean vector")
)
