package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Lattice is a multi-axis index space linearized with the first axis
// varying fastest and the last axis slowest:
//
//	ind = i + ni*(j + nj*k)
type Lattice struct {
	Shape []int
}

func NewLattice(shape ...int) (l Lattice) {
	l.Shape = make([]int, len(shape))
	copy(l.Shape, shape)
	return
}

func (l Lattice) Dims() int { return len(l.Shape) }

func (l Lattice) Len() (n int) {
	n = 1
	for _, s := range l.Shape {
		n *= s
	}
	return
}

func (l Lattice) Index(pos ...int) int {
	return LinearIndex(pos, l.Shape)
}

func (l Lattice) Position(ind int) (pos []int) {
	if ind < 0 || ind >= l.Len() {
		panic(fmt.Errorf("linear index %d out of range for lattice shape %v", ind, l.Shape))
	}
	pos = make([]int, len(l.Shape))
	for a, s := range l.Shape {
		pos[a] = ind % s
		ind /= s
	}
	return
}

// LinearIndex maps per-axis positions to a single index, first axis fastest.
// Positions outside the shape are a programming error and panic.
func LinearIndex(pos, shape []int) (ind int) {
	if len(pos) != len(shape) {
		panic(fmt.Errorf("position %v has %d axes, shape %v has %d", pos, len(pos), shape, len(shape)))
	}
	stride := 1
	for a, p := range pos {
		if p < 0 || p >= shape[a] {
			panic(fmt.Errorf("position %v out of range for shape %v", pos, shape))
		}
		ind += p * stride
		stride *= shape[a]
	}
	return
}

// Gather returns the linear indices of the cartesian product of the per-axis
// position lists, enumerated in lattice order (first axis fastest).
func (l Lattice) Gather(sel ...Index) (I Index) {
	if len(sel) != len(l.Shape) {
		panic(fmt.Errorf("selection has %d axes, lattice has %d", len(sel), len(l.Shape)))
	}
	size := 1
	for _, s := range sel {
		size *= len(s)
	}
	I = NewIndex(size)
	if size == 0 {
		return
	}
	var (
		cursor = make([]int, len(sel))
		pos    = make([]int, len(sel))
	)
	for ind := 0; ind < size; ind++ {
		for a := range sel {
			pos[a] = sel[a][cursor[a]]
		}
		I[ind] = LinearIndex(pos, l.Shape)
		for a := range cursor {
			cursor[a]++
			if cursor[a] < len(sel[a]) {
				break
			}
			cursor[a] = 0
		}
	}
	return
}

// Range accepts one dimension phrase per axis (see ParseDim) and returns the
// linear indices of the selected block. A phrase that does not fit the
// lattice is a programming error and panics.
func (l Lattice) Range(dims ...interface{}) (I Index) {
	if len(dims) != len(l.Shape) {
		panic(fmt.Errorf("range has %d axes, lattice has %d", len(dims), len(l.Shape)))
	}
	sel := make([]Index, len(dims))
	for a, dimI := range dims {
		i1, i2, err := ParseDim(dimI, l.Shape[a])
		if err != nil {
			panic(err)
		}
		sel[a] = NewRange(i1, i2-1)
	}
	return l.Gather(sel...)
}

// ParseDim converts one axis phrase into the half open range [i1, i2) on an
// axis of extent max:
//
//	N, "N"  the single position N
//	"end"   the last position, max-1
//	":"     every position
//	"a:b"   positions a through b-1; a defaults to 0 and b to max
//
// "end" may also bound a range, so on a ghost-padded axis "1:end" selects the
// interior positions.
func ParseDim(dimI interface{}, max int) (i1, i2 int, err error) {
	switch dim := dimI.(type) {
	case int:
		i1, i2 = dim, dim+1
	case string:
		lo, hi, isRange := strings.Cut(dim, ":")
		if !isRange {
			if i1, err = parseBound(lo, max, -1); err != nil {
				return
			}
			i2 = i1 + 1
			break
		}
		if i1, err = parseBound(lo, max, 0); err != nil {
			return
		}
		if i2, err = parseBound(hi, max, max); err != nil {
			return
		}
	default:
		err = fmt.Errorf("dimension phrase %v has unsupported type %T", dimI, dimI)
		return
	}
	if i1 < 0 || i2 < i1 || i2 > max {
		err = fmt.Errorf("dimension phrase %v selects [%d, %d), outside an axis of extent %d", dimI, i1, i2, max)
	}
	return
}

// parseBound reads one side of a range phrase; an empty token yields def,
// and a negative def marks the token as required.
func parseBound(token string, max, def int) (i int, err error) {
	switch token = strings.TrimSpace(token); token {
	case "":
		if def < 0 {
			err = fmt.Errorf("empty dimension phrase")
		}
		i = def
	case "end":
		i = max - 1
	default:
		if i, err = strconv.Atoi(token); err != nil {
			err = fmt.Errorf("invalid dimension phrase %q: %w", token, err)
		}
	}
	return
}
