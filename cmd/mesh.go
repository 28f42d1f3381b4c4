/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/huahbo/FVTool/InputParameters"
	"github.com/huahbo/FVTool/mesh"
	"github.com/huahbo/FVTool/types"
	"github.com/huahbo/FVTool/utils"
)

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Build a structured mesh and report its geometry",
	Long: `
Builds a uniform mesh from cell counts and lengths, or a non-uniform mesh
from face locations, given on the command line or in a YAML/TOML input file,

fvtool mesh -n 2,3,4 -l 1,2,3
fvtool mesh -x 0,0.1,0.3,1 -y 0,1
fvtool mesh -I channel.yaml --dump`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			mp *InputParameters.MeshParameters
			ms *mesh.MeshStructure
		)
		if mp, err = meshParameters(cmd); err != nil {
			return
		}
		if viper.GetBool("verbose") {
			mp.Fprint(cmd.OutOrStdout())
		}
		if ms, err = mp.Build(); err != nil {
			return
		}
		log.WithFields(logrus.Fields{
			"dimension": ms.Dimension(),
			"cells":     ms.NumberOfCells(),
			"padded":    ms.PaddedShape(),
		}).Info("mesh built")
		log.Debug(utils.GetMemUsage())
		PrintMesh(cmd.OutOrStdout(), ms)
		if dump, _ := cmd.Flags().GetBool("dump"); dump {
			fmt.Fprintf(cmd.OutOrStdout(), "%# v\n", pretty.Formatter(NewMeshDump(ms)))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("inputFile", "I", "", "YAML or TOML mesh parameters file")
	MeshCmd.Flags().IntP("dimension", "d", 0, "mesh dimension, defaults to the number of counts or face lists given")
	MeshCmd.Flags().IntSliceP("counts", "n", nil, "interior cell count per axis")
	MeshCmd.Flags().Float64SliceP("lengths", "l", nil, "domain length per axis")
	MeshCmd.Flags().Float64SliceP("xFaces", "x", nil, "face locations along x (non-uniform mesh)")
	MeshCmd.Flags().Float64SliceP("yFaces", "y", nil, "face locations along y (non-uniform mesh)")
	MeshCmd.Flags().Float64SliceP("zFaces", "z", nil, "face locations along z (non-uniform mesh)")
	MeshCmd.Flags().Bool("dump", false, "pretty print every array of the mesh")
	MeshCmd.Flags().BoolP("verbose", "v", false, "print the mesh parameters before building")
	_ = viper.BindPFlag("verbose", MeshCmd.Flags().Lookup("verbose"))
}

func meshParameters(cmd *cobra.Command) (mp *InputParameters.MeshParameters, err error) {
	var (
		flags = cmd.Flags()
	)
	if fileName, _ := flags.GetString("inputFile"); len(fileName) != 0 {
		return InputParameters.ReadMeshParameters(fileName)
	}
	mp = &InputParameters.MeshParameters{Title: "command line"}
	mp.Dimension, _ = flags.GetInt("dimension")
	mp.CellCounts, _ = flags.GetIntSlice("counts")
	mp.Lengths, _ = flags.GetFloat64Slice("lengths")
	var (
		names = []string{"xFaces", "yFaces", "zFaces"}
		faces = make([][]float64, len(names))
		last  = -1
	)
	for a, name := range names {
		if faces[a], _ = flags.GetFloat64Slice(name); len(faces[a]) != 0 {
			last = a
		}
	}
	for a := 0; a <= last; a++ {
		if len(faces[a]) == 0 {
			err = fmt.Errorf("face locations along %s given without face locations along %s",
				types.Axis(last), types.Axis(a))
			return
		}
		mp.FaceLocations = append(mp.FaceLocations, faces[a])
	}
	if len(mp.CellCounts) == 0 && !mp.NonUniform() {
		err = fmt.Errorf("must supply cell counts (-n) and lengths (-l), face locations (-x, -y, -z) or an input file (-I)")
	}
	return
}

func PrintMesh(w io.Writer, ms *mesh.MeshStructure) {
	fmt.Fprintf(w, "%s\n", ms)
	for a := types.Axis(0); int(a) < ms.Dimension(); a++ {
		var (
			cs = ms.CellSize(a)
			fc = ms.FaceCenters(a)
		)
		fmt.Fprintf(w, "[%s]\tN = %d\tL = %8.5f\tfaces [%8.5f, %8.5f]\tcell size [%8.5f, %8.5f]\n",
			a, len(cs)-2, ms.Length(a), fc[0], fc[len(fc)-1], floats.Min(cs), floats.Max(cs))
	}
	fmt.Fprintf(w, "total volume = %8.5f\n", floats.Sum(ms.CellVolumes()))
}

// MeshDump holds copies of every array of a mesh for printing.
type MeshDump struct {
	Dimension     int
	NumberOfCells []int
	CellSize      [][]float64
	CellCenters   [][]float64
	FaceCenters   [][]float64
	Corners       utils.Index
	Edges         utils.Index
}

func NewMeshDump(ms *mesh.MeshStructure) (md MeshDump) {
	md = MeshDump{
		Dimension:     ms.Dimension(),
		NumberOfCells: ms.NumberOfCells(),
		Corners:       ms.Corners(),
		Edges:         ms.Edges(),
	}
	for a := types.Axis(0); int(a) < ms.Dimension(); a++ {
		md.CellSize = append(md.CellSize, ms.CellSize(a))
		md.CellCenters = append(md.CellCenters, ms.CellCenters(a))
		md.FaceCenters = append(md.FaceCenters, ms.FaceCenters(a))
	}
	return
}
