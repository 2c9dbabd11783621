package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var eulerTests = []mgl32.Vec3{
	{0, 0, 0},
	{math.Pi / 2, 0, 0},
	{0, math.Pi / 4, 0},
	{0, 0, -math.Pi / 3},
	{0.3, -0.7, 1.1},
}

func TestEulerQuatRoundTrip(t *testing.T) {
	for _, in := range eulerTests {
		out := QuatToEuler(EulerToQuat(in))
		for i := 0; i < 3; i++ {
			if math.Abs(float64(out[i]-in[i])) > 1e-5 {
				t.Errorf("QuatToEuler(EulerToQuat(%v))=%v; component %d differs", in, out, i)
			}
		}
	}
}

func TestQuatToAxisAngle(t *testing.T) {
	axis, angle := QuatToAxisAngle(mgl32.QuatRotate(1.2, mgl32.Vec3{0, 1, 0}))
	if math.Abs(float64(angle-1.2)) > 1e-5 {
		t.Errorf("angle=%v; expected 1.2", angle)
	}
	if axis.Sub(mgl32.Vec3{0, 1, 0}).Len() > 1e-5 {
		t.Errorf("axis=%v; expected +Y", axis)
	}

	axis, angle = QuatToAxisAngle(mgl32.QuatIdent())
	if angle != 0 {
		t.Errorf("identity angle=%v; expected 0", angle)
	}
	if axis != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("identity axis=%v; expected +Z placeholder", axis)
	}
}

func TestDegRadConversion(t *testing.T) {
	if d := RadToDeg(DegToRad(123)); math.Abs(float64(d-123)) > 1e-4 {
		t.Errorf("RadToDeg(DegToRad(123))=%v", d)
	}
}
