package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrNonMonotonicGrid = errors.New("non-monotonic grid")
	ErrShapeMismatch    = errors.New("shape mismatch")
)

// InvalidDimensionError reports a bad cell count, length, dimension or a
// per-axis list of the wrong size. Axis is -1 when the failure is not tied
// to a single axis.
type InvalidDimensionError struct {
	Axis   int
	Param  string
	Value  interface{}
	Reason string
}

func (e *InvalidDimensionError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("invalid dimension: %s=%v: %s", e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid dimension: axis %s: %s=%v: %s",
		Axis(e.Axis), e.Param, e.Value, e.Reason)
}

func (e *InvalidDimensionError) Is(target error) bool { return target == ErrInvalidDimension }

// NonMonotonicGridError reports the first position along an axis where the
// face locations fail to increase strictly. Position is the index of Next.
type NonMonotonicGridError struct {
	Axis       int
	Position   int
	Prev, Next float64
}

func (e *NonMonotonicGridError) Error() string {
	return fmt.Sprintf("non-monotonic grid: axis %s: face[%d]=%v does not exceed face[%d]=%v",
		Axis(e.Axis), e.Position, e.Next, e.Position-1, e.Prev)
}

func (e *NonMonotonicGridError) Is(target error) bool { return target == ErrNonMonotonicGrid }

// ShapeMismatchError reports a cell field whose shape matches neither the
// interior-only shape nor the ghost-padded shape of the mesh.
type ShapeMismatchError struct {
	Want       []int
	WantPadded []int
	Got        []int
}

func (e *ShapeMismatchError) Error() string {
	if e.WantPadded == nil {
		return fmt.Sprintf("shape mismatch: field shape %v, want %v", e.Got, e.Want)
	}
	return fmt.Sprintf("shape mismatch: field shape %v, want %v (interior) or %v (ghost padded)",
		e.Got, e.Want, e.WantPadded)
}

func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }
