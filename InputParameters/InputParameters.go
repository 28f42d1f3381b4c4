package InputParameters

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"

	"github.com/huahbo/FVTool/mesh"
)

// Parameters obtained from a YAML or TOML mesh input file
type MeshParameters struct {
	Title          string      `yaml:"Title" toml:"Title"`
	Dimension      int         `yaml:"Dimension" toml:"Dimension"`
	CellCounts     []int       `yaml:"CellCounts" toml:"CellCounts"`
	Lengths        []float64   `yaml:"Lengths" toml:"Lengths"`
	FaceLocations  [][]float64 `yaml:"FaceLocations" toml:"FaceLocations"` // Non-uniform mesh when present
	ParallelDegree int         `yaml:"ParallelDegree" toml:"ParallelDegree"`
}

func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MeshParameters) ParseTOML(data []byte) (err error) {
	_, err = toml.Decode(string(data), mp)
	return
}

// ReadMeshParameters reads a parameter file, choosing TOML for a .toml
// extension and YAML otherwise.
func ReadMeshParameters(fileName string) (mp *MeshParameters, err error) {
	var data []byte
	if data, err = ioutil.ReadFile(fileName); err != nil {
		return
	}
	mp = &MeshParameters{}
	if strings.ToLower(filepath.Ext(fileName)) == ".toml" {
		err = mp.ParseTOML(data)
	} else {
		err = mp.Parse(data)
	}
	if err != nil {
		err = fmt.Errorf("unable to parse mesh parameters in %s: %w", fileName, err)
		mp = nil
	}
	return
}

func (mp *MeshParameters) NonUniform() bool { return len(mp.FaceLocations) != 0 }

// Build constructs the mesh described by the parameters. When Dimension is
// unset it is taken from the number of axes given.
func (mp *MeshParameters) Build() (*mesh.MeshStructure, error) {
	dim := mp.Dimension
	if mp.NonUniform() {
		if dim == 0 {
			dim = len(mp.FaceLocations)
		}
		return mesh.BuildNonUniform(dim, mp.FaceLocations)
	}
	if dim == 0 {
		dim = len(mp.CellCounts)
	}
	return mesh.BuildUniform(dim, mp.CellCounts, mp.Lengths)
}

func (mp *MeshParameters) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", mp.Title)
	fmt.Fprintf(w, "[%d]\t\t\t= Dimension\n", mp.Dimension)
	if mp.NonUniform() {
		for a, face := range mp.FaceLocations {
			fmt.Fprintf(w, "%v\t= FaceLocations[%d]\n", face, a)
		}
	} else {
		fmt.Fprintf(w, "%v\t\t= CellCounts\n", mp.CellCounts)
		fmt.Fprintf(w, "%v\t\t= Lengths\n", mp.Lengths)
	}
	fmt.Fprintf(w, "[%d]\t\t\t= Parallel Degree\n", mp.ParallelDegree)
}

func (mp *MeshParameters) String() string {
	var buf bytes.Buffer
	mp.Fprint(&buf)
	return buf.String()
}
