package mesh

import (
	"github.com/huahbo/FVTool/utils"
)

// boundaryIndices derives the corner and edge node sets of the padded lattice
// for the given interior counts. A corner has every axis at 0 or N+1. An edge
// node has exactly one axis at an interior position and every other axis at
// 0 or N+1; there are none in 1D.
func boundaryIndices(counts []int) (corners, edges utils.Index) {
	var (
		dim     = len(counts)
		shape   = make([]int, dim)
		phrases = make([]interface{}, dim)
	)
	for a, n := range counts {
		shape[a] = n + 2
	}
	l := utils.NewLattice(shape...)
	// bit a of mask puts axis a at its far end
	extremes := func(mask int) {
		for a := range phrases {
			phrases[a] = 0
			if mask&(1<<a) != 0 {
				phrases[a] = "end"
			}
		}
	}
	for mask := 0; mask < 1<<dim; mask++ {
		extremes(mask)
		corners = corners.Concat(l.Range(phrases...))
	}
	corners = corners.Unique()
	edges = utils.Index{}
	if dim < 2 {
		return
	}
	// free axis walks last to first: for 3D that is the z, y, then x edges
	for free := dim - 1; free >= 0; free-- {
		for mask := 0; mask < 1<<dim; mask++ {
			if mask&(1<<free) != 0 {
				continue
			}
			extremes(mask)
			phrases[free] = "1:end"
			edges = edges.Concat(l.Range(phrases...))
		}
	}
	edges = edges.Unique()
	return
}
