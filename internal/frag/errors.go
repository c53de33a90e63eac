package frag

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasible is matched by every *InfeasibleError via errors.Is.
	ErrInfeasible = errors.New("infeasible partition")

	// ErrInvalidParams is for fragmentation shapes that can't be partitioned
	// (no fragments, max < min, overlap not less than the fragment length).
	ErrInvalidParams = errors.New("invalid partition parameters")
)

// InfeasibleError is returned when the sequence is too short for the
// requested number of fragments, overlap, and minimum length.
type InfeasibleError struct {
	// Length of the sequence
	Length int

	// Fragments requested
	Fragments int

	// Overlap requested between neighbors
	Overlap int

	// IdealLength is the even per-fragment share before clamping
	IdealLength int

	// MinLength requested
	MinLength int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf(
		"sequence too short for %d fragments with %dbp overlaps: %dbp sequence gives %dbp fragments, less than the %dbp minimum",
		e.Fragments, e.Overlap, e.Length, e.IdealLength, e.MinLength,
	)
}

// Is makes errors.Is(err, ErrInfeasible) true for an *InfeasibleError.
func (e *InfeasibleError) Is(target error) bool {
	return target == ErrInfeasible
}
