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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huahbo/FVTool/InputParameters"
	"github.com/huahbo/FVTool/field"
	"github.com/huahbo/FVTool/mesh"
	"github.com/huahbo/FVTool/types"
)

// FacesCmd represents the faces command
var FacesCmd = &cobra.Command{
	Use:   "faces",
	Short: "Interpolate cell centered values to the cell faces",
	Long: `
Interpolates a cell centered field to the faces of a structured mesh. Values
are given flattened with the first axis varying fastest. Without --ghost the
field must hold the interior cells only and boundary faces copy the boundary
cell; with --ghost it must include the ghost layer on every axis. The cell
counts come from -n or from the mesh described by an input file,

fvtool faces -n 3 -v 10,20,30
fvtool faces -n 3 -v 0,10,20,30,0 --ghost
fvtool faces -n 2,2 -v 1,2,3,4 --mean harmonic --axis y
fvtool faces -I channel.yaml -v ...`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			flags     = cmd.Flags()
			counts, _ = flags.GetIntSlice("counts")
			values, _ = flags.GetFloat64Slice("values")
			ghost, _  = flags.GetBool("ghost")
			opts      field.Options
			phi       field.Array
			cf        field.CellField
			ff        *field.FaceField
		)
		if opts.Mean, err = field.ParseMean(viper.GetString("mean")); err != nil {
			return
		}
		opts.ParallelDegree = viper.GetInt("parallel")
		if fileName, _ := flags.GetString("inputFile"); len(fileName) != 0 {
			var (
				mp *InputParameters.MeshParameters
				ms *mesh.MeshStructure
			)
			if mp, err = InputParameters.ReadMeshParameters(fileName); err != nil {
				return
			}
			if ms, err = mp.Build(); err != nil {
				return
			}
			if !flags.Changed("counts") {
				counts = ms.NumberOfCells()
			}
			if !flags.Changed("parallel") && mp.ParallelDegree > 0 {
				opts.ParallelDegree = mp.ParallelDegree
			}
		}
		if err = types.CheckCounts(len(counts), counts); err != nil {
			return
		}
		shape := make([]int, len(counts))
		for a, n := range counts {
			shape[a] = n
			if ghost {
				shape[a] += 2
			}
		}
		if phi, err = field.NewArray(shape, values); err != nil {
			return
		}
		if ghost {
			cf = field.GhostPadded(phi)
		} else {
			cf = field.Interior(phi)
		}
		log.WithFields(logrus.Fields{
			"layout":   cf.Layout(),
			"mean":     opts.Mean,
			"parallel": opts.ParallelDegree,
		}).Debug("interpolating faces")
		if ff, err = field.Average(counts, cf, opts); err != nil {
			return
		}
		axisName, _ := flags.GetString("axis")
		if len(axisName) == 0 {
			PrintFaces(cmd.OutOrStdout(), ff)
			return
		}
		var axis types.Axis
		if axis, err = types.ParseAxis(axisName); err != nil {
			return
		}
		if int(axis) >= ff.Dimension() {
			return &types.InvalidDimensionError{
				Axis:   -1,
				Param:  "axis",
				Value:  axis.String(),
				Reason: fmt.Sprintf("field has %d axes", ff.Dimension()),
			}
		}
		PrintFaceComponent(cmd.OutOrStdout(), ff, axis)
		return
	},
}

func init() {
	rootCmd.AddCommand(FacesCmd)
	FacesCmd.Flags().IntSliceP("counts", "n", nil, "interior cell count per axis")
	FacesCmd.Flags().Float64SliceP("values", "v", nil, "cell values, first axis fastest")
	FacesCmd.Flags().BoolP("ghost", "g", false, "values include the ghost cell layer")
	FacesCmd.Flags().StringP("mean", "m", "arithmetic", "face mean: arithmetic, geometric or harmonic")
	FacesCmd.Flags().IntP("parallel", "p", 1, "number of goroutines, defaults to ParallelDegree of the input file")
	FacesCmd.Flags().StringP("axis", "a", "", "print only the face component of this axis: x, y or z")
	FacesCmd.Flags().StringP("inputFile", "I", "", "YAML or TOML mesh parameters file supplying the cell counts")
	_ = viper.BindPFlag("mean", FacesCmd.Flags().Lookup("mean"))
	_ = viper.BindPFlag("parallel", FacesCmd.Flags().Lookup("parallel"))
}

func PrintFaces(w io.Writer, ff *field.FaceField) {
	for a := types.Axis(0); int(a) < ff.Dimension(); a++ {
		PrintFaceComponent(w, ff, a)
	}
}

func PrintFaceComponent(w io.Writer, ff *field.FaceField, a types.Axis) {
	comp := ff.Component(a)
	fmt.Fprintf(w, "%svalue %v = %v\n", a, comp.Shape, comp.Data)
}
