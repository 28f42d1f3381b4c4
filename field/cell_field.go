package field

import (
	"github.com/huahbo/FVTool/types"
)

// Layout says whether a cell field carries the ghost layer.
type Layout uint8

const (
	InteriorLayout Layout = iota
	GhostPaddedLayout
)

func (l Layout) String() string {
	switch l {
	case InteriorLayout:
		return "interior"
	case GhostPaddedLayout:
		return "ghost-padded"
	}
	return "unknown"
}

// CellField is a cell-centered field tagged with its layout by the caller.
// Interior fields have shape counts; ghost-padded fields have shape counts+2
// on every axis, with the boundary condition already written into the ghost
// entries.
type CellField struct {
	layout Layout
	values Array
}

func Interior(phi Array) CellField { return CellField{InteriorLayout, phi} }

func GhostPadded(phi Array) CellField { return CellField{GhostPaddedLayout, phi} }

func (cf CellField) Layout() Layout { return cf.layout }

func (cf CellField) Values() Array { return cf.values }

// expectedShape is the shape a field of the given layout must have on a
// mesh with the given interior counts.
func expectedShape(counts []int, layout Layout) (shape []int) {
	shape = make([]int, len(counts))
	for a, n := range counts {
		shape[a] = n
		if layout == GhostPaddedLayout {
			shape[a] += 2
		}
	}
	return
}

func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func checkField(counts []int, cf CellField) (err error) {
	if err = types.CheckCounts(len(counts), counts); err != nil {
		return
	}
	var (
		want = expectedShape(counts, cf.layout)
		phi  = cf.values
	)
	if !sameShape(want, phi.Shape) {
		return &types.ShapeMismatchError{Want: want, Got: append([]int(nil), phi.Shape...)}
	}
	if len(phi.Data) != phi.Lattice().Len() {
		return &types.ShapeMismatchError{Want: want, Got: []int{len(phi.Data)}}
	}
	return
}

// DetectLayout infers the layout from the field shape. Only the exact
// interior shape or the exact ghost-padded shape is accepted.
func DetectLayout(counts, shape []int) (layout Layout, err error) {
	if err = types.CheckCounts(len(counts), counts); err != nil {
		return
	}
	var (
		interior = expectedShape(counts, InteriorLayout)
		padded   = expectedShape(counts, GhostPaddedLayout)
	)
	switch {
	case sameShape(shape, interior):
		layout = InteriorLayout
	case sameShape(shape, padded):
		layout = GhostPaddedLayout
	default:
		err = &types.ShapeMismatchError{
			Want:       interior,
			WantPadded: padded,
			Got:        append([]int(nil), shape...),
		}
	}
	return
}
