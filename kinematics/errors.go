package kinematics

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidIndexError is returned when a joint index falls outside of the chain.
type InvalidIndexError struct {
	Index int
	Count int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid joint index %d, arm has %d segments", e.Index, e.Count)
}

// NewInvalidIndexError returns an error for a joint index outside of [0, count).
func NewInvalidIndexError(index, count int) error {
	return &InvalidIndexError{Index: index, Count: count}
}

// IsInvalidIndexError reports whether err is, or wraps, an InvalidIndexError.
func IsInvalidIndexError(err error) bool {
	var target *InvalidIndexError
	return errors.As(err, &target)
}

// UnsupportedChainLengthError is returned when a solver is asked to work on a chain it cannot handle.
type UnsupportedChainLengthError struct {
	Got  int
	Want int
}

func (e *UnsupportedChainLengthError) Error() string {
	return fmt.Sprintf("inverse kinematics is implemented only for %d-link arms, arm has %d segments", e.Want, e.Got)
}

// NewUnsupportedChainLengthError returns an error for a solver called on an arm with the wrong number of segments.
func NewUnsupportedChainLengthError(got, want int) error {
	return &UnsupportedChainLengthError{Got: got, Want: want}
}

// IsUnsupportedChainLengthError reports whether err is, or wraps, an UnsupportedChainLengthError.
func IsUnsupportedChainLengthError(err error) bool {
	var target *UnsupportedChainLengthError
	return errors.As(err, &target)
}

// InvalidSegmentError is returned when a segment cannot be part of a chain.
type InvalidSegmentError struct {
	Length   float64
	AngleDeg float64
	Reason   string
}

func (e *InvalidSegmentError) Error() string {
	return fmt.Sprintf("invalid segment (length %v, angle %v deg): %s", e.Length, e.AngleDeg, e.Reason)
}

// NewInvalidSegmentError returns an error describing why a segment was rejected.
func NewInvalidSegmentError(length, angleDeg float64, reason string) error {
	return &InvalidSegmentError{Length: length, AngleDeg: angleDeg, Reason: reason}
}
