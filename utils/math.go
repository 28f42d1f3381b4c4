package utils

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// Prod returns the product of the entries of s, 1 for an empty slice.
func Prod(s []int) (p int) {
	p = 1
	for _, v := range s {
		p *= v
	}
	return
}
