package mesh

// BuildUniform builds a dim-dimensional mesh of counts[a] equal cells
// spanning [0, lengths[a]] on every axis.
func BuildUniform(dim int, counts []int, lengths []float64) (ms *MeshStructure, err error) {
	if err = checkUniform(dim, counts, lengths); err != nil {
		return
	}
	axes := make([]axisData, dim)
	for a := range axes {
		axes[a] = uniformAxis(counts[a], lengths[a])
		if err = checkAxis(a, axes[a]); err != nil {
			return
		}
	}
	ms = assemble(axes)
	return
}

// BuildNonUniform builds a dim-dimensional mesh from one strictly increasing
// sequence of face locations per axis.
func BuildNonUniform(dim int, faces [][]float64) (ms *MeshStructure, err error) {
	if err = checkFaces(dim, faces); err != nil {
		return
	}
	axes := make([]axisData, dim)
	for a := range axes {
		axes[a] = nonUniformAxis(faces[a])
		if err = checkAxis(a, axes[a]); err != nil {
			return
		}
	}
	ms = assemble(axes)
	return
}

func Uniform1D(Nx int, Lx float64) (*MeshStructure, error) {
	return BuildUniform(1, []int{Nx}, []float64{Lx})
}

func Uniform2D(Nx, Ny int, Lx, Ly float64) (*MeshStructure, error) {
	return BuildUniform(2, []int{Nx, Ny}, []float64{Lx, Ly})
}

func Uniform3D(Nx, Ny, Nz int, Lx, Ly, Lz float64) (*MeshStructure, error) {
	return BuildUniform(3, []int{Nx, Ny, Nz}, []float64{Lx, Ly, Lz})
}

func NonUniform1D(x []float64) (*MeshStructure, error) {
	return BuildNonUniform(1, [][]float64{x})
}

func NonUniform2D(x, y []float64) (*MeshStructure, error) {
	return BuildNonUniform(2, [][]float64{x, y})
}

func NonUniform3D(x, y, z []float64) (*MeshStructure, error) {
	return BuildNonUniform(3, [][]float64{x, y, z})
}
