package types

import (
	"fmt"
	"strings"
)

type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

const MaxDimension = 3

var AxisNameMap = map[string]Axis{
	"x": X,
	"y": Y,
	"z": Z,
	"0": X,
	"1": Y,
	"2": Z,
}

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("axis(%d)", uint8(a))
}

func ParseAxis(token string) (a Axis, err error) {
	var ok bool
	if a, ok = AxisNameMap[strings.ToLower(strings.TrimSpace(token))]; !ok {
		err = fmt.Errorf("unknown axis %q, must be one of x, y, z", token)
	}
	return
}

// CheckDimension returns an InvalidDimensionError unless dim is 1, 2 or 3.
func CheckDimension(dim int) error {
	if dim < 1 || dim > MaxDimension {
		return &InvalidDimensionError{
			Axis:   -1,
			Param:  "dimension",
			Value:  dim,
			Reason: "must be 1, 2 or 3",
		}
	}
	return nil
}

// CheckCounts validates a per-axis list of interior cell counts against the
// expected dimension.
func CheckCounts(dim int, counts []int) error {
	if err := CheckDimension(dim); err != nil {
		return err
	}
	if len(counts) != dim {
		return &InvalidDimensionError{
			Axis:   -1,
			Param:  "counts",
			Value:  len(counts),
			Reason: fmt.Sprintf("expected %d entries, one per axis", dim),
		}
	}
	for i, n := range counts {
		if n <= 0 {
			return &InvalidDimensionError{
				Axis:   i,
				Param:  "count",
				Value:  n,
				Reason: "cell count must be positive",
			}
		}
	}
	return nil
}
