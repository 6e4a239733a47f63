// Package decomp: centralized fail-fast validation.
// Expansion kernels delegate shape/nil/payload checks here so every call
// site rejects a malformed spec the same way. Validators return plain
// sentinels wrapped with a short tag; kernels add the operation prefix.

package decomp

import "fmt"

// validateSpec checks the parts of a ModelSpec every expansion needs:
// non-nil, positive cell count, per-kind payload present with the right
// shape, and batch assignment vectors covering every cell.
func validateSpec(s *ModelSpec) error {
	if s == nil {
		return ErrNilSpec
	}
	if s.NumCells <= 0 {
		return fmt.Errorf("NumCells=%d: %w", s.NumCells, ErrShapeMismatch)
	}

	switch s.Kind {
	case KindConstant:
		// no payload
	case KindImpulse:
		if s.Pseudotime == nil {
			return fmt.Errorf("Pseudotime for kind %s: %w", s.Kind, ErrMissingPayload)
		}
		if len(s.Pseudotime) != s.NumCells {
			return fmt.Errorf("len(Pseudotime)=%d, NumCells=%d: %w", len(s.Pseudotime), s.NumCells, ErrShapeMismatch)
		}
	case KindSpline:
		if s.Basis == nil {
			return fmt.Errorf("Basis for kind %s: %w", s.Kind, ErrMissingPayload)
		}
		if r, _ := s.Basis.Dims(); r != s.NumCells {
			return fmt.Errorf("basis rows=%d, NumCells=%d: %w", r, s.NumCells, ErrShapeMismatch)
		}
	case KindGroups:
		if s.Groups == nil {
			return fmt.Errorf("Groups for kind %s: %w", s.Kind, ErrMissingPayload)
		}
		if len(s.Groups) != s.NumCells {
			return fmt.Errorf("len(Groups)=%d, NumCells=%d: %w", len(s.Groups), s.NumCells, ErrShapeMismatch)
		}
	case KindMixture:
		if s.NumMixtureComponents <= 0 {
			return fmt.Errorf("NumMixtureComponents=%d for kind %s: %w", s.NumMixtureComponents, s.Kind, ErrMissingPayload)
		}
	default:
		return fmt.Errorf("field Kind has unrecognized value %d: %w", uint8(s.Kind), ErrUnknownKind)
	}

	for c, asg := range s.BatchAssignments {
		if len(asg) != s.NumCells {
			return fmt.Errorf("confounder %d: len(assignment)=%d, NumCells=%d: %w", c, len(asg), s.NumCells, ErrShapeMismatch)
		}
	}

	return nil
}

// validateBatch checks that a batch-correction coefficient list lines up
// with the spec's declared confounders. An empty list is always legal
// (identity scaling); a non-empty list must match one-to-one.
func validateBatch(batch [][]float64, s *ModelSpec) error {
	if len(batch) == 0 {
		return nil
	}
	if len(batch) != s.NumConfounders() {
		return fmt.Errorf("%d coefficient vectors, %d confounders declared: %w", len(batch), s.NumConfounders(), ErrShapeMismatch)
	}

	return nil
}

// validateDropoutSpec checks the dropout spec and its link enum.
func validateDropoutSpec(s *DropoutSpec) error {
	if s == nil {
		return ErrNilSpec
	}
	switch s.Link {
	case LinkLogistic, LinkLogisticOfMu:
		return nil
	default:
		return fmt.Errorf("field Link has unrecognized value %d: %w", uint8(s.Link), ErrUnknownLink)
	}
}
