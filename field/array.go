package field

import (
	"fmt"

	"github.com/huahbo/FVTool/utils"
)

// Array is a dense N-d array of float64 flattened with the first axis
// varying fastest, the same ordering as the mesh lattice.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray wraps data in an Array of the given shape. A nil data slice
// allocates zeros.
func NewArray(shape []int, data []float64) (A Array, err error) {
	var (
		n = utils.Prod(shape)
	)
	for _, s := range shape {
		if s <= 0 {
			err = fmt.Errorf("invalid array shape %v, every extent must be positive", shape)
			return
		}
	}
	if data == nil {
		data = make([]float64, n)
	}
	if len(data) != n {
		err = fmt.Errorf("array shape %v needs %d values, have %d", shape, n, len(data))
		return
	}
	A = Array{
		Shape: append([]int(nil), shape...),
		Data:  data,
	}
	return
}

func (A Array) Lattice() utils.Lattice { return utils.NewLattice(A.Shape...) }

func (A Array) At(pos ...int) float64 { return A.Data[utils.LinearIndex(pos, A.Shape)] }

func (A Array) Len() int { return len(A.Data) }
