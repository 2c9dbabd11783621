package vtkjs

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

type sceneIndex struct {
	Version          []int       `json:"version"`
	Background       [3]float32  `json:"background"`
	Camera           cameraJSON  `json:"camera"`
	CenterOfRotation mgl32.Vec3  `json:"centerOfRotation"`
	Scene            []sceneItem `json:"scene"`
}

type cameraJSON struct {
	Position   mgl32.Vec3 `json:"position"`
	FocalPoint mgl32.Vec3 `json:"focalPoint"`
	ViewUp     mgl32.Vec3 `json:"viewUp"`
}

type sceneItem struct {
	Name              string       `json:"name"`
	Type              string       `json:"type"`
	HTTPDataSetReader readerJSON   `json:"httpDataSetReader"`
	Actor             actorJSON    `json:"actor"`
	ActorRotation     [4]float32   `json:"actorRotation"`
	Mapper            mapperJSON   `json:"mapper"`
	Property          propertyJSON `json:"property"`
}

type readerJSON struct {
	URL string `json:"url"`
}

type actorJSON struct {
	Origin   [3]float32 `json:"origin"`
	Scale    [3]float32 `json:"scale"`
	Position mgl32.Vec3 `json:"position"`
}

type mapperJSON struct {
	ColorByArrayName string `json:"colorByArrayName"`
	ColorMode        int    `json:"colorMode"`
	ScalarMode       int    `json:"scalarMode"`
}

type propertyJSON struct {
	Representation int        `json:"representation"`
	DiffuseColor   [3]float32 `json:"diffuseColor"`
	Opacity        float32    `json:"opacity"`
	LineWidth      float32    `json:"lineWidth"`
	PointSize      float32    `json:"pointSize"`
}

type polyData struct {
	VTKClass  string        `json:"vtkClass"`
	Points    arrayJSON     `json:"points"`
	Polys     *arrayJSON    `json:"polys,omitempty"`
	Lines     *arrayJSON    `json:"lines,omitempty"`
	PointData *dataSetAttrs `json:"pointData,omitempty"`
}

type arrayJSON struct {
	VTKClass           string   `json:"vtkClass"`
	Name               string   `json:"name"`
	DataType           string   `json:"dataType"`
	NumberOfComponents int      `json:"numberOfComponents"`
	Size               int      `json:"size"`
	Ref                *refJSON `json:"ref"`
}

type refJSON struct {
	Encode   string `json:"encode"`
	BasePath string `json:"basepath"`
	ID       string `json:"id"`
}

type dataSetAttrs struct {
	VTKClass string      `json:"vtkClass"`
	Arrays   []attrArray `json:"arrays"`
}

type attrArray struct {
	Data arrayJSON `json:"data"`
}

// zipDir archives the staging directory contents into w, paths relative
// to dir.
func zipDir(w io.Writer, dir string) error {
	zw := zip.NewWriter(w)

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		fw, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return errors.Wrapf(err, "Can't create zip entry for %q", rel)
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(fw, f)
		f.Close()
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "Failed to archive %q", dir)
	}

	return zw.Close()
}
