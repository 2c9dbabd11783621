// Package vtkjs writes the render scene in the vtk.js standalone scene
// layout: an index.json describing actors plus one polydata directory
// per actor whose arrays live in little-endian files named by content
// hash. The whole directory is packaged into a single zip archive;
// ".zip" is appended to the destination path.
package vtkjs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/rastvo/asmexport/assembly"
	"github.com/rastvo/asmexport/config"
	"github.com/rastvo/asmexport/scene"
)

// Export tessellates the assembly and writes path+".zip".
func Export(assy *assembly.Assembly, path string, tolerance, angularTolerance float32) error {
	if tolerance <= 0 {
		tolerance = config.LinearTolerance()
	}
	if angularTolerance <= 0 {
		angularTolerance = config.AngularTolerance()
	}

	s, err := scene.FromAssembly(assy, tolerance, angularTolerance)
	if err != nil {
		return err
	}

	// Fail on a bad destination before rendering the scene tree out.
	archive, err := os.Create(path + ".zip")
	if err != nil {
		return errors.Wrapf(err, "Failed to create archive %q", path+".zip")
	}

	tmpdir, err := os.MkdirTemp("", "vtkjsexport.*")
	if err != nil {
		archive.Close()
		return errors.Wrapf(err, "Failed to create staging dir")
	}
	defer os.RemoveAll(tmpdir)

	if err := writeSceneDir(s, tmpdir); err != nil {
		archive.Close()
		return err
	}

	if err := zipDir(archive, tmpdir); err != nil {
		archive.Close()
		return err
	}
	return archive.Close()
}

func writeSceneDir(s *scene.Scene, dir string) error {
	camera := scene.FitCamera(s)

	index := sceneIndex{
		Version:    []int{2, 0},
		Background: s.Background.RGB(),
		Camera: cameraJSON{
			Position:   camera.Position,
			FocalPoint: camera.FocalPoint,
			ViewUp:     camera.ViewUp,
		},
		CenterOfRotation: s.Bounds.Center(),
	}

	for iActor, actor := range s.Actors {
		url := itemName(iActor, actor)
		if err := writeDataSet(actor, filepath.Join(dir, url)); err != nil {
			return err
		}

		representation := 2 // surface
		if actor.Kind == scene.EdgeActor {
			representation = 1 // wireframe
		}

		index.Scene = append(index.Scene, sceneItem{
			Name:              url,
			Type:              "httpDataSetReader",
			HTTPDataSetReader: readerJSON{URL: url},
			Actor: actorJSON{
				Origin:   [3]float32{},
				Scale:    [3]float32{1, 1, 1},
				Position: actor.Position,
			},
			ActorRotation: [4]float32{
				actor.Rotation.V[0], actor.Rotation.V[1], actor.Rotation.V[2], actor.Rotation.W},
			Mapper: mapperJSON{ColorMode: 0, ScalarMode: 0},
			Property: propertyJSON{
				Representation: representation,
				DiffuseColor:   actor.Color.RGB(),
				Opacity:        actor.Color.Opacity(),
				LineWidth:      actor.LineWidth,
				PointSize:      2,
			},
		})
	}

	data, err := json.MarshalIndent(&index, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "Failed to marshal scene index")
	}
	return os.WriteFile(filepath.Join(dir, "index.json"), data, 0666)
}
