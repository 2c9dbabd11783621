package assembly_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/mesh"
	"github.com/rastvo/asmexport/utils"
)

func TestTraverseAccumulatesLocations(t *testing.T) {
	root := assembly.New("root")
	root.Loc = assembly.NewLocation(mgl32.Vec3{10, 0, 0}, mgl32.Vec3{}, 0)

	child := assembly.New("child")
	child.Loc = assembly.NewLocation(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{}, 0)
	child.Shape = mesh.Box(1, 1, 1)
	root.AddChild(child)

	var got mgl32.Vec3
	err := root.Traverse(func(node *assembly.Assembly, world assembly.Location) error {
		if node.Name == "child" {
			got = world.Translation
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != (mgl32.Vec3{10, 5, 0}) {
		t.Errorf("child world translation=%v; expected (10 5 0)", got)
	}
}

func TestTraverseRotatedParent(t *testing.T) {
	root := assembly.New("root")
	root.Loc = assembly.NewLocation(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 90)

	child := assembly.New("child")
	child.Loc = assembly.NewLocation(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 0)
	root.AddChild(child)

	var got mgl32.Vec3
	root.Traverse(func(node *assembly.Assembly, world assembly.Location) error {
		if node.Name == "child" {
			got = world.Translation
		}
		return nil
	})

	if got.Sub(mgl32.Vec3{0, 1, 0}).Len() > 1e-6 {
		t.Errorf("rotated child translation=%v; expected (0 1 0)", got)
	}
}

func TestCompoundBounds(t *testing.T) {
	root := assembly.New("pair")
	root.AddPart("a", mesh.Box(1, 1, 1), assembly.Identity(), nil)
	root.AddPart("b", mesh.Box(1, 1, 1),
		assembly.NewLocation(mgl32.Vec3{4, 0, 0}, mgl32.Vec3{}, 0), nil)

	compound, err := root.Compound(1e-3, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	ext := compound.Bounds().Extents()
	if ext.Sub(mgl32.Vec3{5, 1, 1}).Len() > 1e-6 {
		t.Errorf("compound extents=%v; expected (5 1 1)", ext)
	}
}

func TestEffectiveColor(t *testing.T) {
	a := assembly.New("part")
	if a.EffectiveColor() != assembly.DefaultColor {
		t.Errorf("unset color=%v; expected default %v", a.EffectiveColor(), assembly.DefaultColor)
	}

	red := utils.NewColorFloat(1, 0, 0, 1)
	a.Color = &red
	if a.EffectiveColor() != red {
		t.Errorf("color=%v; expected red", a.EffectiveColor())
	}
}

func TestEulerLocation(t *testing.T) {
	loc := assembly.EulerLocation(mgl32.Vec3{}, mgl32.Vec3{0, 0, 90})
	rotated := loc.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	if rotated.Sub(mgl32.Vec3{0, 1, 0}).Len() > 1e-5 {
		t.Errorf("rotated X axis=%v; expected +Y", rotated)
	}

	e := loc.EulerDeg()
	if math.Abs(float64(e[2]-90)) > 1e-3 {
		t.Errorf("euler=%v; expected 90 around Z", e)
	}
}
