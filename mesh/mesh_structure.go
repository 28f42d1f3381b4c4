package mesh

import (
	"fmt"

	"github.com/huahbo/FVTool/types"
	"github.com/huahbo/FVTool/utils"
)

type axisData struct {
	cellSize    []float64 // N+2, ghost widths at both ends
	cellCenters []float64 // N
	faceCenters []float64 // N+1
}

func (ad axisData) count() int { return len(ad.cellCenters) }

// MeshStructure is the immutable output of the mesh builders. All accessors
// return copies, so a MeshStructure can be shared freely between consumers.
type MeshStructure struct {
	dimension     int
	numberOfCells []int
	axes          []axisData
	corners       utils.Index // ascending, padded lattice indices
	edges         utils.Index // ascending, padded lattice indices
}

func (ms *MeshStructure) Dimension() int { return ms.dimension }

// NumberOfCells returns the interior cell count along each axis.
func (ms *MeshStructure) NumberOfCells() []int {
	return append([]int(nil), ms.numberOfCells...)
}

// PaddedShape returns the cell count along each axis including the two ghost
// layers.
func (ms *MeshStructure) PaddedShape() (shape []int) {
	shape = make([]int, ms.dimension)
	for a, n := range ms.numberOfCells {
		shape[a] = n + 2
	}
	return
}

// Lattice is the ghost-padded index space that Corners and Edges refer to.
func (ms *MeshStructure) Lattice() utils.Lattice {
	return utils.NewLattice(ms.PaddedShape()...)
}

// CellSize returns the N+2 cell widths along axis, ghost cells included.
func (ms *MeshStructure) CellSize(axis types.Axis) []float64 {
	return copyOf(ms.axis(axis).cellSize)
}

// CellCenters returns the N interior cell center coordinates along axis.
func (ms *MeshStructure) CellCenters(axis types.Axis) []float64 {
	return copyOf(ms.axis(axis).cellCenters)
}

// FaceCenters returns the N+1 face coordinates along axis, both domain
// boundary faces included.
func (ms *MeshStructure) FaceCenters(axis types.Axis) []float64 {
	return copyOf(ms.axis(axis).faceCenters)
}

// Length is the extent of the domain along axis.
func (ms *MeshStructure) Length(axis types.Axis) float64 {
	fc := ms.axis(axis).faceCenters
	return fc[len(fc)-1] - fc[0]
}

func (ms *MeshStructure) Corners() utils.Index { return ms.corners.Copy() }

func (ms *MeshStructure) Edges() utils.Index { return ms.edges.Copy() }

// CellVolumes returns the volume (length in 1D, area in 2D) of every interior
// cell, flattened with the first axis varying fastest.
func (ms *MeshStructure) CellVolumes() (vol []float64) {
	var (
		l   = utils.NewLattice(ms.numberOfCells...)
		pos []int
	)
	vol = make([]float64, l.Len())
	for ind := range vol {
		pos = l.Position(ind)
		v := 1.
		for a, p := range pos {
			v *= ms.axes[a].cellSize[p+1]
		}
		vol[ind] = v
	}
	return
}

func (ms *MeshStructure) String() string {
	return fmt.Sprintf("MeshStructure{dimension=%d, cells=%v, padded=%v, corners=%d, edges=%d}",
		ms.dimension, ms.numberOfCells, ms.PaddedShape(), len(ms.corners), len(ms.edges))
}

func (ms *MeshStructure) axis(axis types.Axis) axisData {
	if int(axis) >= ms.dimension {
		panic(fmt.Errorf("axis %s requested from a %dD mesh", axis, ms.dimension))
	}
	return ms.axes[axis]
}

func copyOf(s []float64) []float64 {
	return append([]float64(nil), s...)
}
