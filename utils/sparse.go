package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK collects entries during assembly; convert with ToCSR before use.
type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int, name string) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		name,
	}
	return
}

func (m DOK) Set(i, j int, val float64) { m.M.Set(i, j, val) }

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

type CSR struct {
	M    *sparse.CSR
	name string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }
func (m CSR) NNZ() int            { return m.M.NNZ() }
func (m CSR) Name() string        { return m.name }

// MulVec returns m*x for a dense x.
func (m CSR) MulVec(x []float64) (y []float64, err error) {
	var (
		nr, nc = m.Dims()
	)
	if len(x) != nc {
		err = fmt.Errorf("dimension mismatch: matrix %q has %d columns, vector has length %d", m.name, nc, len(x))
		return
	}
	Y := mat.NewVecDense(nr, nil)
	Y.MulVec(m.M, mat.NewVecDense(nc, x))
	y = Y.RawVector().Data
	return
}
