package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// result in radians
func QuatToEuler(q mgl32.Quat) (e mgl32.Vec3) {
	sinr_cosp := float64(2 * (q.W*q.X() + q.Y()*q.Z()))
	cosr_cosp := float64(1 - 2*(q.X()*q.X()+q.Y()*q.Y()))

	e[0] = float32(math.Atan2(sinr_cosp, cosr_cosp))

	sinp := float64(2 * (q.W*q.Y() - q.Z()*q.X()))
	if math.Abs(sinp) >= 1 {
		e[1] = math.Pi / 2
		if sinp < 0 {
			e[1] *= -1
		}
	} else {
		e[1] = float32(math.Asin(sinp))
	}

	siny_cosp := float64(2 * (q.W*q.Z() + q.X()*q.Y()))
	cosy_cosp := float64(1 - 2*(q.Y()*q.Y()+q.Z()*q.Z()))
	e[2] = float32(math.Atan2(siny_cosp, cosy_cosp))

	return e
}

// input in radians
func EulerToQuat(v mgl32.Vec3) mgl32.Quat {
	sx, cx := math.Sincos(float64(v[0]) * 0.5)
	sy, cy := math.Sincos(float64(v[1]) * 0.5)
	sz, cz := math.Sincos(float64(v[2]) * 0.5)

	var q mgl32.Quat
	q.V[0] = float32(sx*cy*cz - cx*sy*sz)
	q.V[1] = float32(cx*sy*cz + sx*cy*sz)
	q.V[2] = float32(cx*cy*sz - sx*sy*cz)
	q.W = float32(cx*cy*cz + sx*sy*sz)

	return q.Normalize()
}

// QuatToAxisAngle returns a unit rotation axis and an angle in radians.
// Identity rotations map to the +Z axis with a zero angle.
func QuatToAxisAngle(q mgl32.Quat) (axis mgl32.Vec3, angle float32) {
	q = q.Normalize()
	if q.W < 0 {
		q = mgl32.Quat{W: -q.W, V: mgl32.Vec3{-q.V[0], -q.V[1], -q.V[2]}}
	}

	angle = float32(2 * math.Acos(float64(mgl32.Clamp(q.W, -1, 1))))
	s := float32(math.Sqrt(float64(1 - q.W*q.W)))
	if s < 1e-6 {
		return mgl32.Vec3{0, 0, 1}, 0
	}
	return q.V.Mul(1 / s), angle
}

func DegToRad(d float32) float32 {
	return d * math.Pi / 180.0
}

func RadToDeg(r float32) float32 {
	return r * 180.0 / math.Pi
}
