package field

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huahbo/FVTool/mesh"
	"github.com/huahbo/FVTool/types"
)

func newArray(t *testing.T, shape []int, data []float64) Array {
	A, err := NewArray(shape, data)
	require.NoError(t, err)
	return A
}

func TestArithmeticMean1D(t *testing.T) {
	counts := []int{3}
	{ // Interior: boundary faces replicate, interior faces average
		ff, err := ArithmeticMean(counts, Interior(newArray(t, []int{3}, []float64{10, 20, 30})))
		require.NoError(t, err)
		assert.Equal(t, 1, ff.Dimension())
		assert.Equal(t, []int{4}, ff.XValue().Shape)
		assert.Equal(t, []float64{10, 15, 25, 30}, ff.XValue().Data)
	}
	{ // Ghost padded: every face is a plain average
		ff, err := ArithmeticMean(counts, GhostPadded(newArray(t, []int{5}, []float64{0, 10, 20, 30, 0})))
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 15, 25, 15}, ff.XValue().Data)
	}
	{ // Single cell
		ff, err := ArithmeticMean([]int{1}, Interior(newArray(t, []int{1}, []float64{7})))
		require.NoError(t, err)
		assert.Equal(t, []float64{7, 7}, ff.XValue().Data)
	}
	{ // Shape inference reaches the same answers
		ff, err := InterpolateFaces(counts, newArray(t, []int{3}, []float64{10, 20, 30}))
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 15, 25, 30}, ff.XValue().Data)
		ff, err = InterpolateFaces(counts, newArray(t, []int{5}, []float64{0, 10, 20, 30, 0}))
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 15, 25, 15}, ff.XValue().Data)
	}
}

func TestArithmeticMean2D(t *testing.T) {
	{ // Interior field v(i,j) = i + 10j on a 2x3 mesh
		ff, err := ArithmeticMean([]int{2, 3}, Interior(newArray(t, []int{2, 3},
			[]float64{0, 1, 10, 11, 20, 21})))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 3}, ff.XValue().Shape)
		assert.Equal(t, []float64{0, 0.5, 1, 10, 10.5, 11, 20, 20.5, 21}, ff.XValue().Data)
		assert.Equal(t, []int{2, 4}, ff.YValue().Shape)
		assert.Equal(t, []float64{0, 1, 5, 6, 15, 16, 20, 21}, ff.YValue().Data)
		assert.Equal(t, 20.5, ff.XValue().At(1, 2))
		assert.Panics(t, func() { ff.ZValue() })
	}
	{ // Ghost padded field g(i,j) = i + 10j on the 4x3 padding of a 2x1 mesh
		data := make([]float64, 12)
		for j := 0; j < 3; j++ {
			for i := 0; i < 4; i++ {
				data[i+4*j] = float64(i + 10*j)
			}
		}
		ff, err := ArithmeticMean([]int{2, 1}, GhostPadded(newArray(t, []int{4, 3}, data)))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1}, ff.XValue().Shape)
		assert.Equal(t, []float64{10.5, 11.5, 12.5}, ff.XValue().Data)
		assert.Equal(t, []int{2, 2}, ff.YValue().Shape)
		assert.Equal(t, []float64{6, 7, 16, 17}, ff.YValue().Data)
	}
}

func TestArithmeticMeanLinearField3D(t *testing.T) {
	// A field linear in the cell centers, ghosts included, is reproduced
	// exactly at the face centers of a uniform mesh.
	ms, err := mesh.Uniform3D(3, 4, 2, 3, 2, 1)
	require.NoError(t, err)
	var (
		counts = ms.NumberOfCells()
		padded = ms.Lattice()
		cs     = [3][]float64{ms.CellSize(types.X), ms.CellSize(types.Y), ms.CellSize(types.Z)}
		coef   = [3]float64{1, -2, 0.5}
		phi    = newArray(t, padded.Shape, nil)
	)
	for ind := range phi.Data {
		pos := padded.Position(ind)
		for a, p := range pos {
			phi.Data[ind] += coef[a] * (float64(p) - 0.5) * cs[a][p]
		}
	}
	ff, err := ArithmeticMean(counts, GhostPadded(phi))
	require.NoError(t, err)
	require.Equal(t, 3, ff.Dimension())
	for a := types.X; a <= types.Z; a++ {
		var (
			comp = ff.Component(a)
			fc   = [3][]float64{ms.CellCenters(types.X), ms.CellCenters(types.Y), ms.CellCenters(types.Z)}
		)
		fc[a] = ms.FaceCenters(a)
		l := comp.Lattice()
		for ind, val := range comp.Data {
			var want float64
			for b, p := range l.Position(ind) {
				want += coef[b] * fc[b][p]
			}
			assert.InDelta(t, want, val, 1.e-12)
		}
	}
}

func TestAverageParallelAndIdempotent(t *testing.T) {
	var (
		counts = []int{7, 5, 6}
		rng    = rand.New(rand.NewSource(3))
	)
	for _, layout := range []Layout{InteriorLayout, GhostPaddedLayout} {
		phi := newArray(t, expectedShape(counts, layout), nil)
		for i := range phi.Data {
			phi.Data[i] = rng.Float64()
		}
		cf := CellField{layout, phi}
		serial, err := ArithmeticMean(counts, cf)
		require.NoError(t, err)
		again, err := ArithmeticMean(counts, cf)
		require.NoError(t, err)
		assert.Equal(t, serial, again)
		for _, np := range []int{2, 4, 64} {
			par, err := Average(counts, cf, Options{ParallelDegree: np})
			require.NoError(t, err)
			assert.Equal(t, serial, par, "layout %s, parallel degree %d", layout, np)
		}
	}
}

func TestOtherMeans(t *testing.T) {
	counts := []int{3}
	{
		ff, err := GeometricMean(counts, Interior(newArray(t, []int{3}, []float64{4, 9, 1})))
		require.NoError(t, err)
		assert.Equal(t, []float64{4, 6, 3, 1}, ff.XValue().Data)
	}
	{
		ff, err := HarmonicMean(counts, GhostPadded(newArray(t, []int{5}, []float64{2, 2, 0, 3, -3})))
		require.NoError(t, err)
		assert.Equal(t, []float64{2, 0, 0, 0}, ff.XValue().Data)
	}
	{
		m, err := ParseMean("Harmonic")
		require.NoError(t, err)
		assert.Equal(t, Harmonic, m)
		assert.Equal(t, "geometric", Geometric.String())
		_, err = ParseMean("upwind")
		assert.Error(t, err)
	}
}

func TestAverageErrors(t *testing.T) {
	var (
		se *types.ShapeMismatchError
		de *types.InvalidDimensionError
	)
	{ // Neither interior nor padded
		_, err := InterpolateFaces([]int{3}, newArray(t, []int{4}, nil))
		require.True(t, errors.As(err, &se))
		assert.Equal(t, []int{3}, se.Want)
		assert.Equal(t, []int{5}, se.WantPadded)
		assert.Equal(t, []int{4}, se.Got)

		// padded on one axis only
		_, err = InterpolateFaces([]int{3, 2}, newArray(t, []int{5, 2}, nil))
		assert.True(t, errors.Is(err, types.ErrShapeMismatch))

		// wrong number of axes
		_, err = InterpolateFaces([]int{3, 2}, newArray(t, []int{3}, nil))
		assert.True(t, errors.Is(err, types.ErrShapeMismatch))
	}
	{ // Explicit layout must agree with the shape
		_, err := ArithmeticMean([]int{3}, Interior(newArray(t, []int{5}, nil)))
		require.True(t, errors.As(err, &se))
		assert.Nil(t, se.WantPadded)

		_, err = ArithmeticMean([]int{3}, GhostPadded(newArray(t, []int{3}, nil)))
		assert.True(t, errors.Is(err, types.ErrShapeMismatch))

		// data shorter than the declared shape
		_, err = ArithmeticMean([]int{3}, Interior(Array{Shape: []int{3}, Data: []float64{1}}))
		assert.True(t, errors.Is(err, types.ErrShapeMismatch))
	}
	{ // Bad counts
		_, err := ArithmeticMean([]int{0}, Interior(newArray(t, []int{1}, nil)))
		require.True(t, errors.As(err, &de))
		assert.Equal(t, 0, de.Axis)

		_, err = InterpolateFaces(nil, Array{})
		assert.True(t, errors.Is(err, types.ErrInvalidDimension))
	}
	{ // Arrays
		_, err := NewArray([]int{2, 2}, []float64{1, 2, 3})
		assert.Error(t, err)
		_, err = NewArray([]int{2, 0}, nil)
		assert.Error(t, err)
	}
}
