package mesh

import (
	"fmt"
	"math"

	"github.com/huahbo/FVTool/types"
	"github.com/huahbo/FVTool/utils"
)

// uniformAxis lays out n cells of width L/n starting at zero.
func uniformAxis(n int, L float64) (ad axisData) {
	var (
		d = L / float64(n)
	)
	ad.cellSize = utils.ConstArray(n+2, d)
	ad.cellCenters = make([]float64, n)
	ad.faceCenters = make([]float64, n+1)
	for k := 0; k < n; k++ {
		ad.cellCenters[k] = (float64(k) + 0.5) * d
	}
	for k := 0; k <= n; k++ {
		ad.faceCenters[k] = float64(k) * d
	}
	return
}

// nonUniformAxis takes the face locations as given. Ghost cells replicate the
// width of the adjacent boundary cell.
func nonUniformAxis(face []float64) (ad axisData) {
	var (
		n = len(face) - 1
	)
	ad.faceCenters = copyOf(face)
	ad.cellCenters = make([]float64, n)
	ad.cellSize = make([]float64, n+2)
	for k := 0; k < n; k++ {
		ad.cellCenters[k] = 0.5 * (face[k] + face[k+1])
	}
	for k := 1; k <= n; k++ {
		ad.cellSize[k] = face[k] - face[k-1]
	}
	ad.cellSize[0] = ad.cellSize[1]
	ad.cellSize[n+1] = ad.cellSize[n]
	return
}

// assemble is the dimension independent part of every builder: it takes the
// per-axis geometry in axis order and derives counts and boundary node sets.
func assemble(axes []axisData) (ms *MeshStructure) {
	ms = &MeshStructure{
		dimension:     len(axes),
		numberOfCells: make([]int, len(axes)),
		axes:          axes,
	}
	for a, ad := range axes {
		ms.numberOfCells[a] = ad.count()
	}
	ms.corners, ms.edges = boundaryIndices(ms.numberOfCells)
	if shared := ms.corners.Intersect(ms.edges); len(shared) != 0 {
		panic(fmt.Errorf("corner and edge sets share nodes %v", shared))
	}
	return
}

func checkUniform(dim int, counts []int, lengths []float64) (err error) {
	if err = types.CheckCounts(dim, counts); err != nil {
		return
	}
	if len(lengths) != dim {
		return &types.InvalidDimensionError{
			Axis:   -1,
			Param:  "lengths",
			Value:  len(lengths),
			Reason: "expected one length per axis",
		}
	}
	for a, L := range lengths {
		if !(L > 0) || math.IsInf(L, 1) {
			return &types.InvalidDimensionError{
				Axis:   a,
				Param:  "length",
				Value:  L,
				Reason: "domain length must be positive and finite",
			}
		}
	}
	return
}

func checkFaces(dim int, faces [][]float64) (err error) {
	if err = types.CheckDimension(dim); err != nil {
		return
	}
	if len(faces) != dim {
		return &types.InvalidDimensionError{
			Axis:   -1,
			Param:  "faces",
			Value:  len(faces),
			Reason: "expected one face location sequence per axis",
		}
	}
	for a, face := range faces {
		if len(face) < 2 {
			return &types.InvalidDimensionError{
				Axis:   a,
				Param:  "faces",
				Value:  len(face),
				Reason: "need at least two face locations for one cell",
			}
		}
		for k, f := range face {
			if math.IsInf(f, 0) {
				return &types.InvalidDimensionError{
					Axis:   a,
					Param:  "face",
					Value:  f,
					Reason: "face locations must be finite",
				}
			}
			// NaN fails this comparison too
			if k > 0 && !(f > face[k-1]) {
				return &types.NonMonotonicGridError{
					Axis:     a,
					Position: k,
					Prev:     face[k-1],
					Next:     f,
				}
			}
		}
	}
	return
}

// checkAxis rejects geometry that passed the input checks but degenerated in
// floating point: a cell width that underflows to zero or overflows, or a
// cell center that rounds onto one of its faces.
func checkAxis(a int, ad axisData) (err error) {
	for k, d := range ad.cellSize {
		if !(d > 0) || math.IsInf(d, 0) {
			return &types.InvalidDimensionError{
				Axis:   a,
				Param:  "cell size",
				Value:  d,
				Reason: fmt.Sprintf("cell %d width is not positive and finite in float64", k),
			}
		}
	}
	fc := ad.faceCenters
	for k, c := range ad.cellCenters {
		if !(fc[k] < c) {
			return &types.NonMonotonicGridError{Axis: a, Position: k + 1, Prev: fc[k], Next: c}
		}
		if !(c < fc[k+1]) {
			return &types.NonMonotonicGridError{Axis: a, Position: k + 1, Prev: c, Next: fc[k+1]}
		}
	}
	return
}
