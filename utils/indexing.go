package utils

import (
	"sort"
)

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Copy() (r Index) {
	r = make(Index, len(I))
	copy(r, I)
	return
}

func (I Index) Concat(J Index) (r Index) {
	r = make(Index, 0, len(I)+len(J))
	r = append(r, I...)
	return append(r, J...)
}

// Unique returns the distinct values of I in ascending order.
func (I Index) Unique() (r Index) {
	if len(I) == 0 {
		return Index{}
	}
	s := I.Copy()
	sort.Ints(s)
	r = s[:1]
	for _, val := range s[1:] {
		if val != r[len(r)-1] {
			r = append(r, val)
		}
	}
	return
}

// Intersect returns the values present in both I and J, ascending.
func (I Index) Intersect(J Index) (r Index) {
	r = Index{}
	for _, val := range I.Unique() {
		if J.Contains(val) {
			r = append(r, val)
		}
	}
	return
}

func (I Index) Contains(val int) bool {
	for _, v := range I {
		if v == val {
			return true
		}
	}
	return false
}
