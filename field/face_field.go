package field

import (
	"fmt"

	"github.com/huahbo/FVTool/types"
)

// FaceField holds one component per mesh axis. Component a has the shape of
// the interior counts with axis a extended to counts[a]+1, the face centers
// along that axis.
type FaceField struct {
	Components []Array
}

func (ff *FaceField) Dimension() int { return len(ff.Components) }

func (ff *FaceField) Component(axis types.Axis) Array {
	if int(axis) >= len(ff.Components) {
		panic(fmt.Errorf("axis %s requested from a %dD face field", axis, len(ff.Components)))
	}
	return ff.Components[axis]
}

func (ff *FaceField) XValue() Array { return ff.Component(types.X) }
func (ff *FaceField) YValue() Array { return ff.Component(types.Y) }
func (ff *FaceField) ZValue() Array { return ff.Component(types.Z) }

func faceShape(counts []int, axis int) (shape []int) {
	shape = append([]int(nil), counts...)
	shape[axis]++
	return
}
