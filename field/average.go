package field

import (
	"github.com/huahbo/FVTool/utils"
)

// Options tunes Average. The zero value is a serial arithmetic mean.
type Options struct {
	Mean Mean
	// ParallelDegree > 1 splits the lines along each axis across that many
	// goroutines. The result does not depend on it.
	ParallelDegree int
}

// ArithmeticMean interpolates cell values to the faces of every mesh axis.
//
// For an Interior field the two domain boundary faces take the value of the
// adjacent boundary cell and every interior face takes the mean of its two
// neighbours. For a GhostPadded field every face, boundary faces included,
// takes the mean of the two adjacent entries.
func ArithmeticMean(counts []int, phi CellField) (*FaceField, error) {
	return Average(counts, phi, Options{Mean: Arithmetic})
}

func GeometricMean(counts []int, phi CellField) (*FaceField, error) {
	return Average(counts, phi, Options{Mean: Geometric})
}

func HarmonicMean(counts []int, phi CellField) (*FaceField, error) {
	return Average(counts, phi, Options{Mean: Harmonic})
}

// InterpolateFaces is ArithmeticMean with the layout inferred from the field
// shape by DetectLayout.
func InterpolateFaces(counts []int, phi Array) (ff *FaceField, err error) {
	var layout Layout
	if layout, err = DetectLayout(counts, phi.Shape); err != nil {
		return
	}
	return ArithmeticMean(counts, CellField{layout, phi})
}

func Average(counts []int, phi CellField, opts Options) (ff *FaceField, err error) {
	if err = checkField(counts, phi); err != nil {
		return
	}
	ff = &FaceField{Components: make([]Array, len(counts))}
	for axis := range counts {
		ff.Components[axis] = averageAxis(counts, phi, axis, opts)
	}
	return
}

// averageAxis processes the field one line at a time, a line being every
// cell along axis at fixed transverse interior positions.
func averageAxis(counts []int, phi CellField, axis int, opts Options) (out Array) {
	var (
		N         = counts[axis]
		fShape    = faceShape(counts, axis)
		fLattice  = utils.NewLattice(fShape...)
		inLattice = phi.values.Lattice()
		lines     = utils.NewLattice(lineShape(counts, axis)...)
		ghost     = phi.layout == GhostPaddedLayout
		inLen     = N
		inStride  = utils.Prod(inLattice.Shape[:axis])
		outStride = utils.Prod(fShape[:axis])
	)
	if ghost {
		inLen = N + 2
	}
	out = Array{Shape: fShape, Data: make([]float64, fLattice.Len())}
	pm := utils.NewPartitionMap(opts.ParallelDegree, lines.Len())
	pm.ParallelFor(func(_, kMin, kMax int) {
		var (
			in    = make([]float64, inLen)
			faces = make([]float64, N+1)
		)
		for line := kMin; line < kMax; line++ {
			pos := lines.Position(line)
			outBase := fLattice.Index(pos...)
			if ghost {
				for a := range pos {
					if a != axis {
						pos[a]++
					}
				}
			}
			inBase := inLattice.Index(pos...)
			for k := range in {
				in[k] = phi.values.Data[inBase+k*inStride]
			}
			if ghost {
				opts.Mean.pairwise(faces, in[:N+1], in[1:])
			} else {
				faces[0], faces[N] = in[0], in[N-1]
				opts.Mean.pairwise(faces[1:N], in[:N-1], in[1:])
			}
			for k, val := range faces {
				out.Data[outBase+k*outStride] = val
			}
		}
	})
	return
}

// lineShape is counts with axis collapsed to a single position.
func lineShape(counts []int, axis int) (shape []int) {
	shape = append([]int(nil), counts...)
	shape[axis] = 1
	return
}
