package vtkjs

import (
	"archive/zip"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/mesh"
	"github.com/rastvo/asmexport/utils"
)

func TestExportArchive(t *testing.T) {
	red := utils.NewColorFloat(1, 0, 0, 1)

	root := assembly.New("demo")
	root.AddPart("box", mesh.Box(1, 1, 1), assembly.Identity(), &red)

	path := filepath.Join(t.TempDir(), "demo.vtkjs")
	if err := Export(root, path, 0, 0); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.OpenReader(path + ".zip")
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()

	var index *zip.File
	datasets := 0
	arrays := 0
	for _, f := range zr.File {
		switch {
		case f.Name == "index.json":
			index = f
		case strings.HasSuffix(f.Name, "/index.json"):
			datasets++
		case strings.Contains(f.Name, "/data/"):
			arrays++
		}
	}

	if index == nil {
		t.Fatal("archive missing scene index.json")
	}
	if datasets != 2 {
		t.Errorf("dataset dirs=%d; expected one per actor", datasets)
	}
	if arrays == 0 {
		t.Error("archive contains no array files")
	}

	rc, err := index.Open()
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatal(err)
	}

	var scn sceneIndex
	if err := json.Unmarshal(data, &scn); err != nil {
		t.Fatal(err)
	}
	if len(scn.Scene) != 2 {
		t.Fatalf("scene items=%d; expected 2", len(scn.Scene))
	}

	face := scn.Scene[0]
	if face.Type != "httpDataSetReader" {
		t.Errorf("item type=%q", face.Type)
	}
	if face.Property.DiffuseColor != [3]float32{1, 0, 0} {
		t.Errorf("face diffuse=%v; expected red", face.Property.DiffuseColor)
	}
	if face.Actor.Scale != [3]float32{1, 1, 1} {
		t.Errorf("actor scale=%v", face.Actor.Scale)
	}
}

func TestExportMissingFolder(t *testing.T) {
	root := assembly.New("demo")
	root.AddPart("box", mesh.Box(1, 1, 1), assembly.Identity(), nil)

	path := filepath.Join(t.TempDir(), "missing", "demo.vtkjs")
	if err := Export(root, path, 0, 0); err == nil {
		t.Error("expected error for non-existent destination folder")
	}
}
