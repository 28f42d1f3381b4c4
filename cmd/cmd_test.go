package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huahbo/FVTool/types"
)

// run executes the root command with fresh flag values; slice flags would
// otherwise append to the values of the previous run.
func run(args ...string) (string, error) {
	var buf bytes.Buffer
	for _, fs := range []*pflag.FlagSet{MeshCmd.Flags(), FacesCmd.Flags(), rootCmd.PersistentFlags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				_ = sv.Replace(nil)
			} else {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
	}
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := execute()
	return buf.String(), err
}

func TestFacesCommand(t *testing.T) {
	out, err := run("faces", "-n", "3", "-v", "10,20,30")
	require.NoError(t, err)
	assert.Contains(t, out, "xvalue [4] = [10 15 25 30]")

	out, err = run("faces", "-n", "3", "-v", "0,10,20,30,0", "--ghost")
	require.NoError(t, err)
	assert.Contains(t, out, "xvalue [4] = [5 15 25 15]")

	out, err = run("faces", "-n", "2,1", "-v", "1,3", "-m", "geometric", "-p", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "xvalue [3 1] = [1 1.7320508075688772 3]")
	assert.Contains(t, out, "yvalue [2 2] = [1 3 1 3]")

	_, err = run("faces", "-n", "3", "-v", "1,2")
	assert.Error(t, err)
	_, err = run("faces", "-n", "3", "-v", "1,2,3", "-m", "upwind")
	assert.Error(t, err)
}

func TestFacesAxis(t *testing.T) {
	out, err := run("faces", "-n", "2,1", "-v", "1,3", "--axis", "Y")
	require.NoError(t, err)
	assert.Contains(t, out, "yvalue [2 2] = [1 3 1 3]")
	assert.NotContains(t, out, "xvalue")

	_, err = run("faces", "-n", "2,1", "-v", "1,3", "-a", "z")
	assert.True(t, errors.Is(err, types.ErrInvalidDimension))
	_, err = run("faces", "-n", "2,1", "-v", "1,3", "-a", "w")
	assert.Error(t, err)
}

func TestFacesInputFile(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	fileName := filepath.Join(t.TempDir(), "mesh.toml")
	require.NoError(t, os.WriteFile(fileName, []byte("CellCounts = [3]\nLengths = [1.0]\nParallelDegree = 3\n"), 0o644))

	out, err := run("faces", "-I", fileName, "-v", "10,20,30", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "xvalue [4] = [10 15 25 30]")
	assert.Contains(t, logs.String(), "parallel=3")

	// an explicit -p wins over the file
	logs.Reset()
	_, err = run("faces", "-I", fileName, "-v", "10,20,30", "-p", "2", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "parallel=2")

	// the counts follow the file unless -n is given
	_, err = run("faces", "-I", fileName, "-v", "1,2")
	assert.Error(t, err)
	out, err = run("faces", "-I", fileName, "-n", "2", "-v", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "xvalue [3] = [1 1.5 2]")
}

type stopRecorder struct{ stopped int }

func (s *stopRecorder) Stop() { s.stopped++ }

func TestProfilerStoppedOnError(t *testing.T) {
	rec := &stopRecorder{}
	profiler = rec
	_, err := run("faces", "-n", "3", "-v", "1,2")
	require.Error(t, err)
	assert.Equal(t, 1, rec.stopped)
	assert.Nil(t, profiler)

	_, err = run("faces", "-n", "1", "-v", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.stopped)
}

func TestMeshCommand(t *testing.T) {
	out, err := run("mesh", "-n", "2,3,4", "-l", "1,2,3")
	require.NoError(t, err)
	assert.Contains(t, out, "padded=[4 5 6], corners=8, edges=36")
	assert.Contains(t, out, "total volume =  6.00000")

	fileName := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte("FaceLocations:\n  - [0, 0.5, 2]\n"), 0o644))
	out, err = run("mesh", "-I", fileName, "--dump")
	require.NoError(t, err)
	assert.Contains(t, out, "dimension=1, cells=[2]")
	assert.Contains(t, out, "FaceCenters")

	out, err = run("mesh", "-x", "0,1,3", "-y", "0,2")
	require.NoError(t, err)
	assert.Contains(t, out, "cells=[2 1]")

	_, err = run("mesh", "-x", "0,1", "-z", "0,1")
	assert.Error(t, err)
	_, err = run("mesh", "-y", "0,1")
	assert.Error(t, err)

	_, err = run("mesh", "-n", "2", "-l", "0")
	assert.Error(t, err)
	_, err = run("mesh")
	assert.Error(t, err)
}
