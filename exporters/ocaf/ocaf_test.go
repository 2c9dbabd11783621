package ocaf

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/mesh"
)

func demoAssembly() *assembly.Assembly {
	root := assembly.New("demo")
	root.AddPart("box", mesh.Box(1, 1, 1),
		assembly.NewLocation(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 0), nil)
	return root
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.xml")
	if err := Export(demoAssembly(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	if doc.Format != "XmlOcaf" {
		t.Errorf("format=%q; expected XmlOcaf", doc.Format)
	}
	if doc.Extension != "xml" {
		t.Errorf("extension=%q; expected registered from path", doc.Extension)
	}
	if doc.Name != "demo" {
		t.Errorf("name=%q; expected file stem", doc.Name)
	}
	if len(doc.Root.Children) != 1 {
		t.Fatalf("children=%d; expected 1", len(doc.Root.Children))
	}

	leaf := doc.Root.Children[0]
	if leaf.Mesh == nil {
		t.Fatal("leaf label lost its mesh")
	}
	if leaf.Mesh.VerticesNum == 0 || leaf.Mesh.TrianglesNum != 12 {
		t.Errorf("mesh counts vertices=%d triangles=%d", leaf.Mesh.VerticesNum, leaf.Mesh.TrianglesNum)
	}
	if leaf.Translation != "1 0 0" {
		t.Errorf("translation=%q; expected \"1 0 0\"", leaf.Translation)
	}
}

func TestExportCustomExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.xcaf")
	if err := Export(demoAssembly(), path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Extension != "xcaf" {
		t.Errorf("extension=%q; expected xcaf", doc.Extension)
	}
}

func TestExportMissingFolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "demo.xml")
	if err := Export(demoAssembly(), path); err == nil {
		t.Error("expected error for non-existent destination folder")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed export left a partial file behind")
	}
}
