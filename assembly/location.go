package assembly

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rastvo/asmexport/mesh"
	"github.com/rastvo/asmexport/utils"
)

// Location is a rigid local transform: rotate, then translate.
type Location struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
}

func Identity() Location {
	return Location{Rotation: mgl32.QuatIdent()}
}

// NewLocation builds a location from a translation plus an axis-angle
// rotation, angle in degrees.
func NewLocation(translation, axis mgl32.Vec3, angleDeg float32) Location {
	rot := mgl32.QuatIdent()
	if axis.Len() > 0 && angleDeg != 0 {
		rot = mgl32.QuatRotate(utils.DegToRad(angleDeg), axis.Normalize())
	}
	return Location{Translation: translation, Rotation: rot}
}

// EulerLocation builds a location from a translation plus XYZ euler
// angles in degrees.
func EulerLocation(translation, eulerDeg mgl32.Vec3) Location {
	rad := mgl32.Vec3{
		utils.DegToRad(eulerDeg[0]),
		utils.DegToRad(eulerDeg[1]),
		utils.DegToRad(eulerDeg[2]),
	}
	return Location{Translation: translation, Rotation: utils.EulerToQuat(rad)}
}

// Compose returns the location equivalent to applying o first, then l.
func (l Location) Compose(o Location) Location {
	return Location{
		Translation: l.Rotation.Rotate(o.Translation).Add(l.Translation),
		Rotation:    l.Rotation.Mul(o.Rotation).Normalize(),
	}
}

func (l Location) Mat4() mgl32.Mat4 {
	return mgl32.Translate3D(l.Translation[0], l.Translation[1], l.Translation[2]).
		Mul4(l.Rotation.Mat4())
}

func (l Location) Apply(m *mesh.Mesh) *mesh.Mesh {
	return m.Transformed(l.Rotation, l.Translation)
}

// EulerDeg returns the rotation as XYZ euler angles in degrees.
func (l Location) EulerDeg() mgl32.Vec3 {
	e := utils.QuatToEuler(l.Rotation)
	return mgl32.Vec3{utils.RadToDeg(e[0]), utils.RadToDeg(e[1]), utils.RadToDeg(e[2])}
}
