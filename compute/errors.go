package compute

import (
	"errors"
	"fmt"
)

// Kind classifies a ComputeError.
type Kind int

const (
	// KindShape marks bad input shape: mismatched lengths, empty required
	// input, or values outside the domain (NaN or negative times).
	KindShape Kind = iota + 1

	// KindDegenerate marks statistically degenerate input such as an empty
	// risk set.
	KindDegenerate
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

var (
	// ErrLengthMismatch reports parallel input slices of different lengths.
	ErrLengthMismatch = errors.New("compute: length mismatch")

	// ErrEmptyInput reports an empty slice where at least one element is required.
	ErrEmptyInput = errors.New("compute: empty input")

	// ErrInvalidTime reports a NaN, infinite or negative observation time.
	ErrInvalidTime = errors.New("compute: invalid observation time")

	// ErrZeroAtRisk reports a zero at-risk count, which would divide by zero.
	ErrZeroAtRisk = errors.New("compute: zero at-risk count")

	// ErrEventsExceedRisk reports more events than subjects at risk.
	ErrEventsExceedRisk = errors.New("compute: events exceed at-risk count")
)

// ComputeError is the single error type returned by the kernels and the
// estimator. It wraps one of the package sentinels, so errors.Is works on it.
//
//nolint:revive
type ComputeError struct {
	Op    string // operation, e.g. "SurvivalProbabilities"
	Kind  Kind
	Index int // offending element index, or -1
	Err   error
}

// Error implements error.
func (e *ComputeError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %v at index %d", e.Op, e.Err, e.Index)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ComputeError) Unwrap() error {
	return e.Err
}

// ShapeError returns a KindShape error for op.
func ShapeError(op string, index int, err error) *ComputeError {
	return &ComputeError{Op: op, Kind: KindShape, Index: index, Err: err}
}

// DegenerateError returns a KindDegenerate error for op.
func DegenerateError(op string, index int, err error) *ComputeError {
	return &ComputeError{Op: op, Kind: KindDegenerate, Index: index, Err: err}
}

// IsShape reports whether err is a ComputeError about input shape.
func IsShape(err error) bool {
	var ce *ComputeError
	return errors.As(err, &ce) && ce.Kind == KindShape
}

// IsDegenerate reports whether err is a ComputeError about degenerate input.
func IsDegenerate(err error) bool {
	var ce *ComputeError
	return errors.As(err, &ce) && ce.Kind == KindDegenerate
}
