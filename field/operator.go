package field

import (
	"fmt"

	"github.com/huahbo/FVTool/types"
	"github.com/huahbo/FVTool/utils"
)

// Operator is the sparse linear form of the ghost-padded arithmetic mean
// along one axis: it maps the flattened padded cell vector to the flattened
// face component of that axis. Linear-system assemblers use it where the
// face values must stay implicit in the unknowns.
type Operator struct {
	Axis      types.Axis
	Counts    []int
	FaceShape []int
	M         utils.CSR
}

func AverageOperator(counts []int, axis types.Axis) (op *Operator, err error) {
	if err = types.CheckCounts(len(counts), counts); err != nil {
		return
	}
	if int(axis) >= len(counts) {
		err = &types.InvalidDimensionError{
			Axis:   -1,
			Param:  "axis",
			Value:  axis.String(),
			Reason: fmt.Sprintf("mesh has %d axes", len(counts)),
		}
		return
	}
	var (
		a       = int(axis)
		fShape  = faceShape(counts, a)
		faces   = utils.NewLattice(fShape...)
		padded  = utils.NewLattice(expectedShape(counts, GhostPaddedLayout)...)
		D       = utils.NewDOK(faces.Len(), padded.Len(), "average_"+axis.String())
		cellPos = make([]int, len(counts))
	)
	for row := 0; row < faces.Len(); row++ {
		pos := faces.Position(row)
		for b, p := range pos {
			cellPos[b] = p
			if b != a {
				cellPos[b]++
			}
		}
		D.Set(row, padded.Index(cellPos...), 0.5)
		cellPos[a]++
		D.Set(row, padded.Index(cellPos...), 0.5)
	}
	op = &Operator{
		Axis:      axis,
		Counts:    append([]int(nil), counts...),
		FaceShape: fShape,
		M:         D.ToCSR(),
	}
	return
}

// Apply multiplies the operator into a ghost-padded field.
func (op *Operator) Apply(phi CellField) (out Array, err error) {
	if phi.layout != GhostPaddedLayout {
		err = fmt.Errorf("average operator needs a %s field, have %s", GhostPaddedLayout, phi.layout)
		return
	}
	if err = checkField(op.Counts, phi); err != nil {
		return
	}
	var data []float64
	if data, err = op.M.MulVec(phi.values.Data); err != nil {
		return
	}
	return NewArray(op.FaceShape, data)
}
