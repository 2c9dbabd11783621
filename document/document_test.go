package document_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/document"
	"github.com/rastvo/asmexport/mesh"
)

func pairAssembly() *assembly.Assembly {
	root := assembly.New("pair")
	root.AddPart("a", mesh.Box(1, 1, 1), assembly.Identity(), nil)
	root.AddPart("b", mesh.Box(1, 1, 1),
		assembly.NewLocation(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 0), nil)
	return root
}

func TestFromAssemblyMirrorsTree(t *testing.T) {
	doc, err := document.FromAssembly(pairAssembly(), 1e-3, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Name != "pair" {
		t.Errorf("doc name=%q; expected assembly name", doc.Name)
	}
	if doc.Root.Mesh != nil {
		t.Error("grouping root must not carry a mesh")
	}
	if len(doc.Root.Children) != 2 {
		t.Fatalf("children=%d; expected 2", len(doc.Root.Children))
	}
	for _, child := range doc.Root.Children {
		if child.Mesh == nil {
			t.Errorf("leaf %q missing tessellation", child.Name)
		}
	}
}

func TestFromAssemblyGeneratedName(t *testing.T) {
	doc, err := document.FromAssembly(assembly.New(""), 1e-3, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Name == "" {
		t.Error("unnamed assembly must get a generated document name")
	}
}

func TestFromAssemblyFused(t *testing.T) {
	doc, err := document.FromAssemblyFused(pairAssembly(), false, 0, 1e-3, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Root.Children) != 0 {
		t.Errorf("fused document has %d children; expected flat root", len(doc.Root.Children))
	}
	if doc.Root.Mesh == nil {
		t.Fatal("fused root has no mesh")
	}

	// Two unit boxes at x=0 and x=1 share the x=0.5 face: welding fuses
	// the shared corners.
	if len(doc.Root.Mesh.Positions) >= 16 {
		t.Errorf("fused positions=%d; expected shared corners welded below 16", len(doc.Root.Mesh.Positions))
	}

	glued, err := document.FromAssemblyFused(pairAssembly(), true, 0, 1e-3, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(glued.Root.Mesh.Positions) != 64 {
		t.Errorf("glued positions=%d; expected plain concatenation of 64", len(glued.Root.Mesh.Positions))
	}
}

func TestWalkLocations(t *testing.T) {
	doc, err := document.FromAssembly(pairAssembly(), 1e-3, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	worlds := map[string]mgl32.Vec3{}
	doc.Walk(func(l *document.Label, world assembly.Location) error {
		worlds[l.Name] = world.Translation
		return nil
	})

	if worlds["b"] != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("label b world=%v; expected (1 0 0)", worlds["b"])
	}
}
