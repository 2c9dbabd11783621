package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera struct {
	Position      mgl32.Vec3
	FocalPoint    mgl32.Vec3
	ViewUp        mgl32.Vec3
	Parallel      bool
	ClippingRange *[2]float32 // nil derives a range from the scene bounds
}

// FitCamera positions a camera from the scene extents: each coordinate
// is the bounding-box extent along that axis scaled by 2, looking at
// the origin with +Z up.
func FitCamera(s *Scene) Camera {
	position := mgl32.Vec3{20, 20, 20}
	if !s.Bounds.IsEmpty() {
		position = s.Bounds.Extents().Mul(2.0)
	}
	return Camera{
		Position:   position,
		FocalPoint: mgl32.Vec3{0, 0, 0},
		ViewUp:     mgl32.Vec3{0, 0, 1},
	}
}
