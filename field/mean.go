package field

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Mean selects how the two cell values on either side of a face combine.
type Mean uint8

const (
	Arithmetic Mean = iota
	Geometric
	Harmonic
)

var MeanNameMap = map[string]Mean{
	"arithmetic": Arithmetic,
	"geometric":  Geometric,
	"harmonic":   Harmonic,
}

func ParseMean(token string) (m Mean, err error) {
	var ok bool
	if m, ok = MeanNameMap[strings.ToLower(token)]; !ok {
		err = fmt.Errorf("unknown mean %q, must be arithmetic, geometric or harmonic", token)
	}
	return
}

func (m Mean) String() string {
	switch m {
	case Arithmetic:
		return "arithmetic"
	case Geometric:
		return "geometric"
	case Harmonic:
		return "harmonic"
	}
	return fmt.Sprintf("mean(%d)", uint8(m))
}

// pairwise sets dst[k] to the mean of lo[k] and hi[k].
func (m Mean) pairwise(dst, lo, hi []float64) {
	switch m {
	case Geometric:
		// defined for non-negative values
		for k := range dst {
			dst[k] = math.Sqrt(lo[k] * hi[k])
		}
	case Harmonic:
		for k := range dst {
			if s := lo[k] + hi[k]; s != 0 {
				dst[k] = 2 * lo[k] * hi[k] / s
			} else {
				dst[k] = 0
			}
		}
	default:
		floats.AddTo(dst, lo, hi)
		floats.Scale(0.5, dst)
	}
}
